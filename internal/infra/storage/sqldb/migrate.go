package sqldb

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migrate applies pending goose migrations from dir. It dials its own
// short-lived session: migrations run once at startup, before the
// resilient executor takes ownership of the handle.
func Migrate(ctx context.Context, cfg Config, dir string) error {
	db, err := Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect for migration: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("failed to migrate db: %w", err)
	}
	return nil
}
