package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-status-sync/config"
	"calendar-status-sync/internal/calendar"
	"calendar-status-sync/internal/settings"
	"calendar-status-sync/pkg/log"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Reconcile:     config.ReconcileConfig{Interval: time.Minute, Concurrency: 2},
		Calendar:      config.CalendarConfig{Provider: "ical", ICal: config.ICalConfig{Timeout: time.Second}},
		Slack:         config.SlackConfig{BotToken: "xoxb", RateLimitPerMin: 60},
		RoomDirectory: config.RoomDirectoryConfig{URL: "http://rooms.invalid", TTL: time.Minute, Size: 10},
		Storage:       config.StorageConfig{Driver: "memory"},
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("memory store wiring", func(t *testing.T) {
		a, err := New(ctx, memoryConfig(), log.NewNop())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer a.Close()

		if err := a.Ready(ctx); err != nil {
			t.Errorf("Ready: %v", err)
		}

		res, err := a.Reconcile.ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("ReconcileAll: %v", err)
		}
		if len(res.Outcomes) != 0 {
			t.Errorf("expected no outcomes for an empty store, got %d", len(res.Outcomes))
		}

		if _, err := a.Settings.Get(ctx, "ada@example.com"); !errors.Is(err, settings.ErrUserNotFound) {
			t.Errorf("Get err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("unknown calendar provider", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Calendar.Provider = "exchange"
		if _, err := New(ctx, cfg, log.NewNop()); !errors.Is(err, calendar.ErrUnknownProvider) {
			t.Errorf("err = %v, want ErrUnknownProvider", err)
		}
	})

	t.Run("missing google credentials", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Calendar.Provider = "google"
		cfg.Calendar.Google.CredentialsFile = "/nonexistent/credentials.json"
		if _, err := New(ctx, cfg, log.NewNop()); err == nil {
			t.Error("expected an error for a missing credentials file")
		}
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Storage.Driver = "sqlite"
		if _, err := New(ctx, cfg, log.NewNop()); err == nil {
			t.Error("expected an error for an unknown storage driver")
		}
	})
}
