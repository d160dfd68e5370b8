// Package cli provides the domainmodel command tree and the startup helpers
// it shares: .env loading, configuration and logging.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"domainmodel/internal/config"
	"domainmodel/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the logger described by cfg and makes it the slog
// default. Logs go to stderr so command output stays clean.
func SetupLogger(cfg *config.Config, debug bool) *log.Logger {
	lc := cfg.LoggerConfig()
	if debug {
		lc.Level = slog.LevelDebug
	}
	lc.Component = log.ComponentCLI
	lc.Output = os.Stderr
	logger := log.New(lc)
	log.SetDefault(logger)
	return logger
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
