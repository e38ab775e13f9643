package settings

import (
	"context"

	"calendar-status-sync/internal/model"
)

// UseCase defines administration of per-user settings.
type UseCase interface {
	// Get returns the stored settings for email.
	Get(ctx context.Context, email string) (model.UserSettings, error)

	// Update applies the non-nil fields of input, creating the user when missing.
	Update(ctx context.Context, email string, input UpdateInput) (model.UserSettings, error)
}
