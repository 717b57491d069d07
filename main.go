package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	"github.com/ddevcap/watchsync/api"
	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/config"
	"github.com/ddevcap/watchsync/ent/migrate"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/storage"
	"github.com/ddevcap/watchsync/syncer"

	"github.com/ddevcap/watchsync/ent"
	_ "github.com/lib/pq"

	// Server families register themselves on import.
	_ "github.com/ddevcap/watchsync/backend/jellyfin"
	_ "github.com/ddevcap/watchsync/backend/plex"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := ent.Open(dialect.Postgres, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	if err := client.Schema.Create(
		context.Background(),
		migrate.WithGlobalUniqueID(true),
	); err != nil {
		slog.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	api.SeedServers(context.Background(), client, cfg)

	httpClient := backend.NewHTTPClient()
	reg := syncer.NewRegistry(client, httpClient, cfg)
	store := storage.NewEntStore(client)

	// Background health checker so sync cycles skip offline servers.
	checker := backend.NewAvailabilityChecker(reg.ServerLister(), httpClient, cfg.HealthCheckInterval)
	checker.Start(context.Background())

	opts := mapper.Options{DryRun: cfg.DryRun, IgnoreDate: cfg.IgnoreDate, Trace: cfg.Trace}
	runner := syncer.NewRunner(client, reg, store, checker, cfg.SyncInterval, opts)
	runner.Start(context.Background())

	h := api.NewRouter(client, cfg, reg, checker, store, opts)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	// Start server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("watchsync listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt or SIGTERM (e.g. from container orchestration).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down...")

	runner.Stop()
	checker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server stopped")
}
