package postgre

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/settings/repository"
	"calendar-status-sync/pkg/log"
)

func TestRowConversion(t *testing.T) {
	s := model.UserSettings{
		Email:         " Ada@Example.com ",
		DefaultStatus: &model.ChatStatus{Text: "Working", Emoji: ":computer:"},
		CurrentEvent: &model.CalendarEvent{
			ID:        "e1",
			StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			ShowAs:    model.ShowAsOutOfOffice,
		},
	}

	row, err := toRow(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", row.Email)
	}
	if string(row.StatusMappings) != "[]" {
		t.Errorf("nil mappings must be stored as an empty array, got %s", row.StatusMappings)
	}

	back, err := row.toModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.CurrentEvent == nil || back.CurrentEvent.ShowAs != model.ShowAsOutOfOffice {
		t.Errorf("current event lost its ShowAs: %+v", back.CurrentEvent)
	}

	empty, _ := toRow(model.UserSettings{Email: "x@example.com"})
	if empty.DefaultStatus != nil || empty.CurrentEvent != nil {
		t.Errorf("nil pointers must be stored as NULL")
	}
}

// TestRepositoryIntegration runs against a live database when SETTINGS_TEST_DSN is set.
func TestRepositoryIntegration(t *testing.T) {
	dsn := os.Getenv("SETTINGS_TEST_DSN")
	if dsn == "" {
		t.Skip("SETTINGS_TEST_DSN not set")
	}
	ctx := context.Background()

	pool, err := Connect(ctx, dsn, log.NewNop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()
	if _, err := pool.Exec(ctx, `DELETE FROM user_settings WHERE email LIKE '%@integration.test'`); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	repo := New(pool, log.NewNop())
	email := "ada@integration.test"

	if err := repo.Upsert(ctx, model.UserSettings{Email: email, CalendarToken: "cal"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.SetCurrentEvent(ctx, email, &model.CalendarEvent{ID: "e1"}); err != nil {
		t.Fatalf("set current event: %v", err)
	}
	if err := repo.SetLastReminderEventID(ctx, email, "e1"); err != nil {
		t.Fatalf("set dedup token: %v", err)
	}
	if err := repo.ClearCalendarToken(ctx, email); err != nil {
		t.Fatalf("clear token: %v", err)
	}

	got, err := repo.Get(ctx, email)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentEvent == nil || got.LastReminderEventID != "e1" || got.CalendarToken != "" {
		t.Errorf("unexpected settings %+v", got)
	}

	if _, err := repo.Get(ctx, "ghost@integration.test"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := repo.SetLastReminderEventID(ctx, "ghost@integration.test", "x"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on update, got %v", err)
	}
}
