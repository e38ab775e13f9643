package engine_test

import (
	"testing"
	"time"

	"calendar-status-sync/internal/engine"
	"calendar-status-sync/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestResolveStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	resolver := engine.NewStatusResolver(fixedClock(now))

	t.Run("No event without default", func(t *testing.T) {
		got := resolver.ResolveStatus(model.UserSettings{}, nil, "UTC")
		if got != (model.ChatStatus{}) {
			t.Errorf("expected empty status, got %+v", got)
		}
	})

	t.Run("No event with default", func(t *testing.T) {
		settings := model.UserSettings{DefaultStatus: &model.ChatStatus{Text: "Working", Emoji: ":computer:"}}
		got := resolver.ResolveStatus(settings, nil, "UTC")
		if got.Text != "Working" || got.Emoji != ":computer:" || !got.Expiration.IsZero() {
			t.Errorf("unexpected status %+v", got)
		}
	})

	t.Run("Busy and tentative default", func(t *testing.T) {
		for _, showAs := range []model.ShowAs{model.ShowAsBusy, model.ShowAsTentative} {
			ev := event("1", showAs, now)
			got := resolver.ResolveStatus(model.UserSettings{}, &ev, "UTC")
			want := model.ChatStatus{Text: "Away", Emoji: ":spiral_calendar_pad:", Expiration: ev.EndTime}
			if got != want {
				t.Errorf("%s: got %+v, want %+v", showAs, got, want)
			}
		}
	})

	t.Run("Free event uses default status", func(t *testing.T) {
		ev := event("1", model.ShowAsFree, now)
		settings := model.UserSettings{DefaultStatus: &model.ChatStatus{Text: "Around"}}
		if got := resolver.ResolveStatus(settings, &ev, "UTC"); got.Text != "Around" {
			t.Errorf("expected default status, got %+v", got)
		}
	})

	t.Run("OOO ending tomorrow uses date", func(t *testing.T) {
		ev := model.CalendarEvent{
			ID:        "ooo",
			Name:      "Vacation",
			StartTime: now.Add(-time.Hour),
			EndTime:   time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC),
			ShowAs:    model.ShowAsOutOfOffice,
		}
		got := resolver.ResolveStatus(model.UserSettings{}, &ev, "UTC")
		if got.Text != "OOO until Thursday, May 2" || got.Emoji != ":ooo:" {
			t.Errorf("unexpected status %+v", got)
		}
		if !got.Expiration.Equal(ev.EndTime) {
			t.Errorf("expected expiration %v, got %v", ev.EndTime, got.Expiration)
		}
	})

	t.Run("OOO ending later today uses time of day", func(t *testing.T) {
		ev := model.CalendarEvent{
			ID:      "ooo",
			EndTime: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
			ShowAs:  model.ShowAsOutOfOffice,
		}
		got := resolver.ResolveStatus(model.UserSettings{}, &ev, "")
		if got.Text != "OOO until 3:30:00 PM" {
			t.Errorf("unexpected status text %q", got.Text)
		}
	})

	t.Run("First matching mapping wins case-insensitively", func(t *testing.T) {
		settings := model.UserSettings{
			StatusMappings: []model.StatusMapping{
				{CalendarText: "lunch", ChatStatus: model.ChatStatus{Text: "Eating", Emoji: ":pizza:"}},
				{CalendarText: "team", ChatStatus: model.ChatStatus{Text: "Team", Emoji: ":busts_in_silhouette:", DND: true}},
				{CalendarText: "TEAM LUNCH", ChatStatus: model.ChatStatus{Text: "Later"}},
			},
		}
		ev := event("1", model.ShowAsBusy, now)
		ev.Name = "Team Lunch"
		got := resolver.ResolveStatus(settings, &ev, "UTC")
		if got.Text != "Eating" || got.Emoji != ":pizza:" {
			t.Errorf("expected first mapping, got %+v", got)
		}
		if !got.Expiration.Equal(ev.EndTime) {
			t.Errorf("expected injected expiration, got %v", got.Expiration)
		}
	})

	t.Run("Mapping without match falls back to default", func(t *testing.T) {
		settings := model.UserSettings{
			StatusMappings: []model.StatusMapping{{CalendarText: "focus", ChatStatus: model.ChatStatus{Text: "Focus"}}},
		}
		ev := event("1", model.ShowAsBusy, now)
		if got := resolver.ResolveStatus(settings, &ev, "UTC"); got.Text != "Away" {
			t.Errorf("expected Away, got %+v", got)
		}
	})

	t.Run("Empty mapping text matches every event", func(t *testing.T) {
		settings := model.UserSettings{
			StatusMappings: []model.StatusMapping{{CalendarText: "", ChatStatus: model.ChatStatus{Text: "In a meeting"}}},
		}
		ev := event("1", model.ShowAsBusy, now)
		ev.Name = "Anything"
		if got := resolver.ResolveStatus(settings, &ev, "UTC"); got.Text != "In a meeting" {
			t.Errorf("expected empty mapping to match, got %+v", got)
		}
	})

	t.Run("Stored mapping is not modified", func(t *testing.T) {
		settings := model.UserSettings{
			StatusMappings: []model.StatusMapping{{CalendarText: "focus", ChatStatus: model.ChatStatus{Text: "Focus", DND: true}}},
		}
		first := event("1", model.ShowAsBusy, now)
		first.Name = "Focus time"
		second := first
		second.ID = "2"
		second.EndTime = first.EndTime.Add(time.Hour)

		a := resolver.ResolveStatus(settings, &first, "UTC")
		b := resolver.ResolveStatus(settings, &second, "UTC")

		if !settings.StatusMappings[0].ChatStatus.Expiration.IsZero() {
			t.Errorf("mapping template was mutated: %+v", settings.StatusMappings[0].ChatStatus)
		}
		if a.Expiration.Equal(b.Expiration) {
			t.Errorf("expected distinct expirations per resolution")
		}
		if !b.DND {
			t.Errorf("expected DND carried from mapping")
		}
	})
}

func TestResolvePresence(t *testing.T) {
	tests := []struct {
		name   string
		showAs *model.ShowAs
		want   model.Presence
	}{
		{name: "No event", showAs: nil, want: model.PresenceAuto},
		{name: "Free", showAs: ptr(model.ShowAsFree), want: model.PresenceAuto},
		{name: "Tentative", showAs: ptr(model.ShowAsTentative), want: model.PresenceAuto},
		{name: "Busy", showAs: ptr(model.ShowAsBusy), want: model.PresenceAway},
		{name: "Out of office", showAs: ptr(model.ShowAsOutOfOffice), want: model.PresenceAway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ev *model.CalendarEvent
			if tt.showAs != nil {
				e := event("1", *tt.showAs, baseTime)
				ev = &e
			}
			if got := engine.ResolvePresence(ev); got != tt.want {
				t.Errorf("ResolvePresence() = %s, want %s", got, tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
