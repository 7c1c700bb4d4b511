// Package sqldb is the resilient data-access layer. It owns the connection
// handle to the backing store, probes its health, classifies failures, and
// retries transient ones with backoff. All repositories in this package go
// through the Executor; nothing else touches the handle.
package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx via database/sql
	_ "github.com/lib/pq"              // pq driver, selectable via config
)

// Config holds database connection and retry configuration.
type Config struct {
	// Driver selects the database/sql driver: "pgx" (default) or "postgres".
	Driver       string        `yaml:"driver"`
	URL          string        `yaml:"url"`
	MaxConns     int           `yaml:"max_conns"`
	MinConns     int           `yaml:"min_conns"`
	MaxAttempts  int           `yaml:"max_attempts"`
	BaseDelay    time.Duration `yaml:"base_delay"`
	ProbeTimeout time.Duration `yaml:"probe_timeout"`
}

// DriverName resolves the configured driver, defaulting to pgx.
func (c Config) DriverName() string {
	switch c.Driver {
	case "postgres", "pq":
		return "postgres"
	default:
		return "pgx"
	}
}

// Open establishes one database session and verifies it with a ping.
// The returned handle is replaced wholesale by the Executor on reconnection.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.DriverName(), cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	} else {
		db.SetMaxOpenConns(10)
	}
	if cfg.MinConns > 0 {
		db.SetMaxIdleConns(cfg.MinConns)
	} else {
		db.SetMaxIdleConns(2)
	}
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
