package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Color modes accepted by PROFGETTER_COLOR.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the configuration settings for the application.
type Config struct {
	APIEndpoint string        `env:"PROFGETTER_API_ENDPOINT" envDefault:"https://api.wynncraft.com"` // Stats API base URL
	Timeout     time.Duration `env:"PROFGETTER_TIMEOUT"      envDefault:"10s"`                       // Per-request timeout
	LogLevel    string        `env:"PROFGETTER_LOG_LEVEL"    envDefault:"info"`                      // logrus level name
	Addr        string        `env:"PROFGETTER_ADDR"         envDefault:":8080"`                     // Listen address for serve
	Color       string        `env:"PROFGETTER_COLOR"        envDefault:"auto"`                      // auto, always or never
	Suggestions []string      `env:"PROFGETTER_SUGGESTIONS"  envDefault:"examplePlayer1,examplePlayer2" envSeparator:","`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env.Parse cannot.
func (c *Config) Validate() error {
	if c.APIEndpoint == "" {
		return fmt.Errorf("config: PROFGETTER_API_ENDPOINT must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: PROFGETTER_TIMEOUT must be positive, got %s", c.Timeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: PROFGETTER_LOG_LEVEL: %w", err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: PROFGETTER_COLOR must be one of auto, always, never, got %q", c.Color)
	}
	return nil
}

// Level returns the parsed log level. Validate must have succeeded.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
