// Package config holds the explicit configuration for a pipeline
// invocation. The core depends on no process-wide mutable state: the
// loaded struct is passed into the pipeline entry point.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// PipelineConfig carries the statistics-engine tunables. The
// concentration percentile and the stop-word list are fixed contracts
// and deliberately not configurable.
type PipelineConfig struct {
	PriceBands  int `yaml:"price_bands" envconfig:"PRICE_BANDS" validate:"min=1,max=50"`
	TopFeatures int `yaml:"top_features" envconfig:"TOP_FEATURES" validate:"min=1,max=100"`
}

// Load builds the configuration from environment variables and an
// optional YAML file. Environment values take precedence over the file;
// unset values fall back to the struct defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = *fileCfg
		}
	}

	if err := envconfig.Process("MARKETPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration with every field at its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills zero values left by a partial YAML file, since
// envconfig defaults only apply to fields the environment did not set.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Pipeline.PriceBands == 0 {
		cfg.Pipeline.PriceBands = 5
	}
	if cfg.Pipeline.TopFeatures == 0 {
		cfg.Pipeline.TopFeatures = 15
	}
}
