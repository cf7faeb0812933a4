package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	data, err := os.ReadFile("config.yml")
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = *cfg
	return nil
}

// Parse decodes and validates a raw YAML configuration document,
// applying defaults for optional sections.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Ingest); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg.Resample); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg.Archive); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Ingest.SourceDir == "" {
		cfg.Ingest.SourceDir = "."
	}
	if cfg.Archive.OutputDir == "" {
		cfg.Archive.OutputDir = "."
	}
	if cfg.Resample.StepMinutes == 0 {
		cfg.Resample.StepMinutes = 2
	}
	if cfg.Daemon.Schedule == "" {
		cfg.Daemon.Schedule = "10 0 * * *"
	}
}
