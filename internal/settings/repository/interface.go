package repository

import (
	"context"

	"calendar-status-sync/internal/model"
)

// Repository is the persistence of per-user settings, keyed by email.
type Repository interface {
	GetAll(ctx context.Context) ([]model.UserSettings, error)
	GetMany(ctx context.Context, emails []string) ([]model.UserSettings, error)
	Get(ctx context.Context, email string) (model.UserSettings, error)
	Upsert(ctx context.Context, settings model.UserSettings) error
	SetCurrentEvent(ctx context.Context, email string, event *model.CalendarEvent) error
	SetLastReminderEventID(ctx context.Context, email, eventID string) error
	ClearCalendarToken(ctx context.Context, email string) error
}
