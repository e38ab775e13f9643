package reconcile

import (
	"context"

	"calendar-status-sync/internal/model"
)

// UseCase defines the reconciliation of calendar state into chat state.
type UseCase interface {
	// ReconcileUser runs one reconciliation pass for a single user.
	ReconcileUser(ctx context.Context, settings model.UserSettings) (Outcome, error)

	// ReconcileAll reconciles every stored user with bounded concurrency.
	ReconcileAll(ctx context.Context) (BatchResult, error)

	// ReconcileUsers reconciles only the given emails.
	ReconcileUsers(ctx context.Context, emails []string) (BatchResult, error)
}
