package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env type for environment
type Env string

const (
	// Dev is the development environment
	Dev Env = "dev"
	// Prod is the production environment
	Prod Env = "prod"
)

// Config is the configuration for the application
type Config struct {
	Env     Env           `yaml:"env" env:"ENV" env-default:"dev"`
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}

// ClientConfig is the configuration for the command client
type ClientConfig struct {
	To      string        `yaml:"to" env:"BLIP_TO"`
	Timeout time.Duration `yaml:"timeout" env:"BLIP_TIMEOUT" env-default:"10s"`
}

// LoggingConfig is the configuration for the logging
type LoggingConfig struct {
	Level string `yaml:"level" env:"BLIP_LOG_LEVEL" env-default:"info"`
}

// NewConfig creates a new instance of Config. An empty path reads the
// environment only.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read env variables: %w", err)
		}

		return cfg, nil
	}

	// Load configuration from yaml file, env variables take precedence
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return cfg, nil
}
