package config

import (
	redisclient "github.com/radcomm/riskcalc/internal/infra/redis"
	"github.com/radcomm/riskcalc/internal/infra/storage/sqldb"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server   ServerConfig       `yaml:"server"`
	Database sqldb.Config       `yaml:"database"`
	Redis    redisclient.Config `yaml:"redis"`
	Logging  LoggingConfig      `yaml:"logging"`
	Report   ReportConfig       `yaml:"report"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// ReportConfig holds report-generation settings.
type ReportConfig struct {
	DefaultProductLine string `yaml:"default_product_line"`
	MigrationsDir      string `yaml:"migrations_dir"`
	RunMigrations      bool   `yaml:"run_migrations"`
}
