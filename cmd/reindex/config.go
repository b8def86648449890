package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/news-press/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-press/pkg/config/env"
)

const defaultBatchSize = 500

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ReindexConfig struct {
	factory.StorageConfig
	BatchSize int
}

func (as *AppConfig) Load() (*ReindexConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/reindex/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}
	if storageCfg.Es == nil {
		return nil, fmt.Errorf("ES_ADDRESSES environment variable is not set")
	}

	batchSize := defaultBatchSize
	if v := os.Getenv("BATCH_SIZE"); v != "" {
		batchSize, err = strconv.Atoi(v)
		if err != nil || batchSize <= 0 {
			return nil, fmt.Errorf("invalid BATCH_SIZE %q", v)
		}
	}

	return &ReindexConfig{
		StorageConfig: *storageCfg,
		BatchSize:     batchSize,
	}, nil
}
