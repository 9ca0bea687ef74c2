// Package config loads tool configuration from the environment
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the tool's environment-driven settings
type Config struct {
	// InstallDir overrides game install detection when set
	InstallDir string `env:"NGPLUS_INSTALL_DIR"`

	// ModName is the archive base name
	ModName string `env:"NGPLUS_MOD_NAME" envDefault:"Custom New Game Plus"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"NGPLUS_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and parses the environment.
// A missing .env file is not an error; explicit environment wins.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel maps the configured level onto slog's levels, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
