package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/config"
	"github.com/DjordjeVuckovic/news-press/internal/events"
	"github.com/DjordjeVuckovic/news-press/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-press/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsApiConfig struct {
	StorageConfig factory.StorageConfig
	EventsConfig  events.Config
	Content       config.Content
}

func (as *AppConfig) Load() (*NewsApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	content, err := config.LoadContent(os.Getenv("CONTENT_CONFIG_PATH"))
	if err != nil {
		slog.Error("Failed to load content configuration", "error", err)
		return nil, err
	}

	return &NewsApiConfig{
		StorageConfig: *storageCfg,
		EventsConfig:  events.LoadEnv(),
		Content:       *content,
	}, nil
}

// setupLogger installs the default slog logger from LOG_LEVEL and LOG_FORMAT.
func setupLogger() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
