package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/reconcile"
	pkgLog "calendar-status-sync/pkg/log"
)

// ReconcileAll reconciles every stored user.
func (uc *implUseCase) ReconcileAll(ctx context.Context) (reconcile.BatchResult, error) {
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return reconcile.BatchResult{}, fmt.Errorf("load settings: %w", err)
	}
	return uc.runBatch(ctx, users, nil), nil
}

// ReconcileUsers reconciles the given emails. Emails without stored settings
// are reported as skipped.
func (uc *implUseCase) ReconcileUsers(ctx context.Context, emails []string) (reconcile.BatchResult, error) {
	if len(emails) == 0 {
		return reconcile.BatchResult{}, reconcile.ErrNoUsers
	}

	users, err := uc.repo.GetMany(ctx, emails)
	if err != nil {
		return reconcile.BatchResult{}, fmt.Errorf("load settings: %w", err)
	}

	found := make(map[string]bool, len(users))
	for _, u := range users {
		found[strings.ToLower(u.Email)] = true
	}
	var missing []reconcile.Outcome
	for _, email := range emails {
		if !found[strings.ToLower(strings.TrimSpace(email))] {
			missing = append(missing, reconcile.Outcome{
				Email:  email,
				Status: reconcile.StatusSkipped,
				Reason: reconcile.ReasonSettingsNotFound,
			})
		}
	}

	return uc.runBatch(ctx, users, missing), nil
}

// runBatch fans out over users with at most uc.concurrency reconciliations in
// flight. Each user's outcome is recorded at its own index.
func (uc *implUseCase) runBatch(ctx context.Context, users []model.UserSettings, extra []reconcile.Outcome) reconcile.BatchResult {
	runID := uuid.NewString()
	ctx = pkgLog.WithTraceID(ctx, runID)

	result := reconcile.BatchResult{RunID: runID, StartedAt: uc.now()}
	uc.l.Infof(ctx, "runBatch: reconciling %d users concurrency=%d", len(users), uc.concurrency)

	outcomes := make([]reconcile.Outcome, len(users))
	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, u := range users {
		g.Go(func() error {
			outcomes[i] = uc.reconcileIsolated(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	uc.handleAuthExpired(ctx, users, outcomes)

	result.Outcomes = append(outcomes, extra...)
	result.Tally()
	result.Duration = uc.now().Sub(result.StartedAt)

	uc.l.Infof(ctx, "runBatch: done in %s ok=%d skipped=%d auth_expired=%d failed=%d",
		result.Duration, result.OK, result.Skipped, result.AuthExpired, result.Failed)
	return result
}

// reconcileIsolated keeps a panic in one user's reconciliation from taking
// down the batch.
func (uc *implUseCase) reconcileIsolated(ctx context.Context, s model.UserSettings) (out reconcile.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "reconcileIsolated: panic for %s: %v", s.Email, r)
			out = reconcile.Outcome{
				Email:  s.Email,
				Status: reconcile.StatusFailed,
				Error:  fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	out, err := uc.ReconcileUser(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "reconcileIsolated: %s: %v", s.Email, err)
	}
	return out
}
