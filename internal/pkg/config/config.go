package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds environment-sourced defaults. Command-line flags take
// precedence over these values.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"warn"`
	JournalctlBin string `env:"LOGAROUND_JOURNALCTL_BIN" envDefault:"journalctl"`
	DateBin       string `env:"LOGAROUND_DATE_BIN" envDefault:"date"`
	DefaultLines  int    `env:"LOGAROUND_DEFAULT_LINES" envDefault:"500"`
	MaxRows       int    `env:"LOGAROUND_MAX_ROWS" envDefault:"100"`
	NoColor       bool   `env:"LOGAROUND_NO_COLOR" envDefault:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
