// Package app builds the reconciliation and settings use cases from config.
package app

import (
	"context"
	"fmt"

	"calendar-status-sync/config"
	"calendar-status-sync/internal/calendar"
	"calendar-status-sync/internal/chat"
	"calendar-status-sync/internal/engine"
	"calendar-status-sync/internal/reconcile"
	reconcileUC "calendar-status-sync/internal/reconcile/usecase"
	"calendar-status-sync/internal/roomdir"
	"calendar-status-sync/internal/settings"
	"calendar-status-sync/internal/settings/repository"
	"calendar-status-sync/internal/settings/repository/memory"
	"calendar-status-sync/internal/settings/repository/postgre"
	settingsUC "calendar-status-sync/internal/settings/usecase"
	"calendar-status-sync/pkg/gcalendar"
	"calendar-status-sync/pkg/icalfeed"
	"calendar-status-sync/pkg/log"
	"calendar-status-sync/pkg/msgraph"
	"calendar-status-sync/pkg/roomfeed"
	"calendar-status-sync/pkg/slack"
)

// App holds the wired use cases and the resources that need closing.
type App struct {
	Reconcile reconcile.UseCase
	Settings  settings.UseCase

	// Ready probes the settings store.
	Ready func(ctx context.Context) error

	close func()
}

// Close releases the storage resources.
func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

// New wires every dependency described by cfg.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{Ready: func(context.Context) error { return nil }}

	repo, err := a.newRepository(ctx, cfg.Storage, l)
	if err != nil {
		return nil, err
	}

	calendarProvider, err := newCalendarProvider(cfg.Calendar)
	if err != nil {
		a.Close()
		return nil, err
	}

	slackClient := slack.NewClient(cfg.Slack.RateLimitPerMin)
	if cfg.Slack.APIURL != "" {
		slackClient.SetAPIURL(cfg.Slack.APIURL)
	}
	if cfg.Slack.BotToken == "" {
		l.Warn(ctx, "app.New: slack.bot_token is empty, reminders and chat user lookup will fail")
	}

	var rooms engine.RoomDirectory
	if rd := cfg.RoomDirectory; rd.URL != "" {
		rooms = roomdir.New(l, roomfeed.NewClient(rd.URL, rd.APIKey, rd.Timeout), rd.TTL, rd.Size)
		l.Infof(ctx, "app.New: room directory enabled (%s)", rd.URL)
	}

	a.Reconcile = reconcileUC.New(
		l,
		calendarProvider,
		chat.NewSlackProvider(slackClient),
		repo,
		rooms,
		cfg.Slack.BotToken,
		cfg.Reconcile.Concurrency,
	)
	a.Settings = settingsUC.New(l, repo)

	l.Infof(ctx, "app.New: calendar provider %s, storage %s", cfg.Calendar.Provider, cfg.Storage.Driver)
	return a, nil
}

func (a *App) newRepository(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case "memory":
		l.Warn(ctx, "app.New: using in-memory settings, nothing survives a restart")
		return memory.New(), nil
	case "postgres":
		pool, err := postgre.Connect(ctx, cfg.DSN, l)
		if err != nil {
			return nil, fmt.Errorf("connect settings store: %w", err)
		}
		a.Ready = pool.Ping
		a.close = pool.Close
		return postgre.New(pool, l), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newCalendarProvider(cfg config.CalendarConfig) (calendar.Provider, error) {
	var clients calendar.Clients
	switch cfg.Provider {
	case calendar.ProviderGraph:
		clients.Graph = msgraph.NewClient(msgraph.OAuthConfig(cfg.Graph.ClientID, cfg.Graph.ClientSecret, cfg.Graph.Tenant))
	case calendar.ProviderGoogle:
		oauthConfig, err := gcalendar.OAuthConfigFromFile(cfg.Google.CredentialsFile)
		if err != nil {
			return nil, err
		}
		clients.Google = gcalendar.NewClient(oauthConfig)
	case calendar.ProviderICal:
		clients.ICal = icalfeed.NewClient(cfg.ICal.Timeout)
	}
	return calendar.NewProvider(cfg.Provider, clients)
}
