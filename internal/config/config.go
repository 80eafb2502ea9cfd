// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration values for the application.
// Every value has a default, so a bare `bitetracker` invocation works without
// any environment setup.
type Config struct {
	// DBPath is the path of the SQLite database file. The parent directory
	// is created on first run if it does not exist.
	DBPath string `env:"BITETRACKER_DB_PATH" env-default:"data/bitetracker.db"`

	// LogFile is where structured JSON logs are written. Logs go to a file
	// rather than stdout so they never interleave with the menu.
	LogFile string `env:"BITETRACKER_LOG_FILE" env-default:"data/bitetracker.log"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"BITETRACKER_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return Config{}, fmt.Errorf("config.Load: invalid log level %q", cfg.LogLevel)
	}

	return cfg, nil
}
