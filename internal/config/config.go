// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite database file. Parent directories are created
	// on startup if missing.
	DBPath string `env:"DB_PATH" envDefault:"./data/cheesery.db"`

	// GinMode selects the gin runtime mode (debug, release, test).
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
