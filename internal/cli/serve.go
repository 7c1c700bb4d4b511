package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/radcomm/riskcalc/internal/health"
	"github.com/radcomm/riskcalc/internal/infra/storage/sqldb"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the report service with its health and metrics endpoints",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	app, err := buildApp()
	if err != nil {
		slog.Error("Failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer app.close()

	if app.cfg.Report.RunMigrations {
		if err := sqldb.Migrate(context.Background(), app.cfg.Database, app.cfg.Report.MigrationsDir); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	monitor := health.NewMonitor(app.exec, pinger(app))
	server := health.NewServer(monitor, app.svc, app.cfg.Server.Port)

	go func() {
		slog.Info("HTTP server listening", "port", app.cfg.Server.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	// Wait for Signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Received signal, shutting down...", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("riskcalc stopped gracefully")
}

// pinger returns the cache as a health.Pinger, or nil when caching is off.
// A plain app.cache would wrap the nil pointer in a non-nil interface.
func pinger(a *app) health.Pinger {
	if a.cache == nil {
		return nil
	}
	return a.cache
}
