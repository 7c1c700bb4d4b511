package cli

import (
	"fmt"
	"log/slog"

	"github.com/radcomm/riskcalc/internal/core/config"
	redisclient "github.com/radcomm/riskcalc/internal/infra/redis"
	"github.com/radcomm/riskcalc/internal/infra/storage/sqldb"
	"github.com/radcomm/riskcalc/internal/report"
	"github.com/radcomm/riskcalc/internal/risk"
)

// app bundles the wired service stack for the commands.
type app struct {
	cfg   *config.AppConfig
	exec  *sqldb.Executor
	cache *redisclient.Cache
	svc   *report.Service
}

// buildApp loads configuration and wires the executor, repositories,
// optional cache, and report service.
func buildApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is not configured")
	}

	exec := sqldb.NewExecutorFromConfig(cfg.Database, slog.Default())

	var cache *redisclient.Cache
	if cfg.Redis.URL != "" {
		cache, err = redisclient.NewCache(cfg.Redis)
		if err != nil {
			// Cache is an optimization; reports run without it.
			slog.Warn("Redis unavailable, caching disabled", "error", err)
			cache = nil
		}
	}

	svc := report.NewService(
		sqldb.NewReferenceRepo(exec),
		sqldb.NewComplaintRepo(exec),
		risk.DefaultFrequencyTable(),
		cache,
		slog.Default(),
	)

	return &app{cfg: cfg, exec: exec, cache: cache, svc: svc}, nil
}

func (a *app) close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	_ = a.exec.Close()
}
