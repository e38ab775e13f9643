package usecase_test

import (
	"context"
	"errors"
	"sync"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/settings/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockCalendar returns events per window size; errs is keyed by user id.
type mockCalendar struct {
	mu      sync.Mutex
	events  map[int][]model.CalendarEvent
	errs    map[string]error
	windows []int
}

func (m *mockCalendar) GetEvents(ctx context.Context, userID, token string, windowMinutes int) ([]model.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = append(m.windows, windowMinutes)
	if err := m.errs[userID]; err != nil {
		return nil, err
	}
	return m.events[windowMinutes], nil
}

type mockChat struct {
	mu          sync.Mutex
	users       map[string]*model.ChatUser
	statusErr   error
	presenceErr error
	sendErr     error
	panicFor    string

	statuses  []model.ChatStatus
	presences []model.Presence
	messages  []model.ChatMessage
	lookups   int
}

func (m *mockChat) SetStatus(ctx context.Context, userID, token string, status model.ChatStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *mockChat) SetPresence(ctx context.Context, userID, token string, presence model.Presence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.presenceErr != nil {
		return m.presenceErr
	}
	m.presences = append(m.presences, presence)
	return nil
}

func (m *mockChat) SendMessage(ctx context.Context, botToken string, msg model.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockChat) ResolveUserByEmail(ctx context.Context, botToken, email string) (*model.ChatUser, error) {
	m.mu.Lock()
	m.lookups++
	m.mu.Unlock()
	if email == m.panicFor {
		panic("boom")
	}
	return m.users[email], nil
}

func (m *mockChat) sideEffects() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.statuses) + len(m.presences) + len(m.messages)
}

// spyRepo counts writes on top of a real repository.
type spyRepo struct {
	repository.Repository
	mu        sync.Mutex
	writes    int
	cleared   []string
	failWrite bool
}

func (r *spyRepo) record() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.failWrite {
		return errors.New("db down")
	}
	return nil
}

func (r *spyRepo) SetCurrentEvent(ctx context.Context, email string, event *model.CalendarEvent) error {
	if err := r.record(); err != nil {
		return err
	}
	return r.Repository.SetCurrentEvent(ctx, email, event)
}

func (r *spyRepo) SetLastReminderEventID(ctx context.Context, email, eventID string) error {
	if err := r.record(); err != nil {
		return err
	}
	return r.Repository.SetLastReminderEventID(ctx, email, eventID)
}

func (r *spyRepo) ClearCalendarToken(ctx context.Context, email string) error {
	r.mu.Lock()
	r.cleared = append(r.cleared, email)
	r.mu.Unlock()
	return r.Repository.ClearCalendarToken(ctx, email)
}
