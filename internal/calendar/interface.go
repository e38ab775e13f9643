package calendar

import (
	"context"

	"calendar-status-sync/internal/model"
)

// Provider fetches the events of one user that overlap [now, now+windowMinutes].
// An unrecoverable credential failure is reported as ErrAuthExpired.
type Provider interface {
	GetEvents(ctx context.Context, userID, token string, windowMinutes int) ([]model.CalendarEvent, error)
}
