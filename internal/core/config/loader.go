package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.MaxAttempts == 0 {
		cfg.Database.MaxAttempts = 3
	}
	if cfg.Database.BaseDelay == 0 {
		cfg.Database.BaseDelay = 2 * time.Second
	}
	if cfg.Database.ProbeTimeout == 0 {
		cfg.Database.ProbeTimeout = 3 * time.Second
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = 15 * time.Minute
	}
	if cfg.Report.MigrationsDir == "" {
		cfg.Report.MigrationsDir = "migrations"
	}
}
