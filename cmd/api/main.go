package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"calendar-status-sync/config"
	_ "calendar-status-sync/docs" // Swagger docs
	"calendar-status-sync/internal/app"
	"calendar-status-sync/internal/httpserver"
	reconcileHTTP "calendar-status-sync/internal/reconcile/delivery/http"
	"calendar-status-sync/internal/scheduler"
	settingsHTTP "calendar-status-sync/internal/settings/delivery/http"
	"calendar-status-sync/pkg/log"
)

// @title       Calendar Status Sync API
// @description Mirrors calendar events into chat status, presence and meeting reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Status Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Use cases
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		os.Exit(1)
	}
	defer a.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AdminAPIKey:      cfg.Admin.APIKey,
		Ready:            a.Ready,
		ReconcileHandler: reconcileHTTP.New(logger, a.Reconcile),
		SettingsHandler:  settingsHTTP.New(logger, a.Settings),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run server and reconciliation ticker until a signal arrives
	sched := scheduler.New(logger, a.Reconcile, cfg.Reconcile.Interval, cfg.Reconcile.Timeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return sched.Run(gctx) })

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
