package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env files into the process environment. ENV_PATH, when
// set, replaces the default paths. Outside local mode a missing file is not an
// error, since deployments inject variables directly. Variables already set in
// the environment win over file values.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}
	if len(paths) == 0 {
		return nil
	}

	if err := godotenv.Load(paths...); err != nil {
		if IsLocal(env) {
			return fmt.Errorf("failed to load %v: %w", paths, err)
		}
		slog.Debug("Skipping .env ...", "env", env, "error", err)
	}

	return nil
}

// IsLocal reports whether env names a developer machine. An unset ENV counts as local.
func IsLocal(env string) bool {
	return env == "" || env == "local"
}
