// Package scheduler drives periodic reconciliation passes.
package scheduler

import (
	"context"
	"time"

	"calendar-status-sync/internal/reconcile"
	"calendar-status-sync/pkg/log"
)

// Runner is the part of reconcile.UseCase the scheduler needs.
type Runner interface {
	ReconcileAll(ctx context.Context) (reconcile.BatchResult, error)
}

// Scheduler runs a batch on start and then once per interval. Passes never
// overlap: ticks that fire while a pass is running are dropped.
type Scheduler struct {
	l        log.Logger
	runner   Runner
	interval time.Duration
	timeout  time.Duration
}

// New returns a Scheduler. A zero timeout bounds each pass by the interval.
func New(l log.Logger, runner Runner, interval, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = interval
	}
	return &Scheduler{
		l:        l,
		runner:   runner,
		interval: interval,
		timeout:  timeout,
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.l.Infof(ctx, "scheduler.Run: reconciling every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "scheduler.Run: stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.runner.ReconcileAll(runCtx); err != nil {
		s.l.Errorf(ctx, "scheduler.tick: %v", err)
	}
}
