// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	DBPath     string `env:"DB_PATH" envDefault:"./data/moneyquest.db"`
	StaticPath string `env:"STATIC_PATH" envDefault:"../frontend/static"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// MonthlyBudget is the expense tracker's spending limit.
	MonthlyBudget  float64 `env:"MONTHLY_BUDGET" envDefault:"10000"`
	CurrencySymbol string  `env:"CURRENCY_SYMBOL" envDefault:"₹"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file from the working directory (or envPath
// when given) and parses the environment into a Config.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Missing .env is fine
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MonthlyBudget < 0 {
		return nil, fmt.Errorf("MONTHLY_BUDGET must not be negative, got %v", cfg.MonthlyBudget)
	}
	return &cfg, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
