package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-press/pkg/utils"
)

const DefaultShutdownTimeout = 10 * time.Second

type Config struct {
	Port            string
	UseHttp2        bool
	CorsOrigins     []string
	ShutdownTimeout time.Duration
}

// LoadConfig reads the server settings from the environment. The .env file,
// if any, is expected to be loaded by the caller.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	if corsOriginsEnv := os.Getenv("CORS_ORIGINS"); corsOriginsEnv != "" {
		origins = utils.SplitTrim([]string{corsOriginsEnv}, ",")
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	shutdownTimeout := DefaultShutdownTimeout
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v)
		}
		shutdownTimeout = d
	}

	return &Config{
		Port:            port,
		UseHttp2:        useHttp2,
		CorsOrigins:     origins,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
