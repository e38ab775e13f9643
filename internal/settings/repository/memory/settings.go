package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/settings/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	users map[string]model.UserSettings
}

// New returns an in-process settings repository seeded with users.
func New(users ...model.UserSettings) repository.Repository {
	r := &implRepository{users: make(map[string]model.UserSettings, len(users))}
	for _, u := range users {
		r.users[normalize(u.Email)] = clone(u)
	}
	return r
}

func (r *implRepository) GetAll(ctx context.Context) ([]model.UserSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.UserSettings, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, clone(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *implRepository) GetMany(ctx context.Context, emails []string) ([]model.UserSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.UserSettings, 0, len(emails))
	for _, email := range emails {
		if u, ok := r.users[normalize(email)]; ok {
			out = append(out, clone(u))
		}
	}
	return out, nil
}

func (r *implRepository) Get(ctx context.Context, email string) (model.UserSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[normalize(email)]
	if !ok {
		return model.UserSettings{}, repository.ErrNotFound
	}
	return clone(u), nil
}

func (r *implRepository) Upsert(ctx context.Context, settings model.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[normalize(settings.Email)] = clone(settings)
	return nil
}

func (r *implRepository) SetCurrentEvent(ctx context.Context, email string, event *model.CalendarEvent) error {
	return r.update(email, func(u *model.UserSettings) {
		if event == nil {
			u.CurrentEvent = nil
			return
		}
		ev := *event
		u.CurrentEvent = &ev
	})
}

func (r *implRepository) SetLastReminderEventID(ctx context.Context, email, eventID string) error {
	return r.update(email, func(u *model.UserSettings) { u.LastReminderEventID = eventID })
}

func (r *implRepository) ClearCalendarToken(ctx context.Context, email string) error {
	return r.update(email, func(u *model.UserSettings) { u.CalendarToken = "" })
}

func (r *implRepository) update(email string, fn func(u *model.UserSettings)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(email)
	u, ok := r.users[key]
	if !ok {
		return repository.ErrNotFound
	}
	fn(&u)
	r.users[key] = u
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// clone copies the pointer and slice fields so callers never share state with the store.
func clone(u model.UserSettings) model.UserSettings {
	if u.DefaultStatus != nil {
		ds := *u.DefaultStatus
		u.DefaultStatus = &ds
	}
	if u.CurrentEvent != nil {
		ev := *u.CurrentEvent
		u.CurrentEvent = &ev
	}
	if u.StatusMappings != nil {
		u.StatusMappings = append([]model.StatusMapping(nil), u.StatusMappings...)
	}
	return u
}
