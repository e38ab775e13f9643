package engine_test

import (
	"testing"
	"time"

	"calendar-status-sync/internal/engine"
	"calendar-status-sync/internal/model"
)

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func event(id string, showAs model.ShowAs, start time.Time) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        id,
		Name:      "Event " + id,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		ShowAs:    showAs,
	}
}

func TestSelectHighestPriority(t *testing.T) {
	t.Run("Empty list", func(t *testing.T) {
		if got := engine.SelectHighestPriority(nil); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
		if got := engine.SelectHighestPriority([]model.CalendarEvent{}); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("Same ShowAs prefers later start", func(t *testing.T) {
		events := []model.CalendarEvent{
			event("busy", model.ShowAsBusy, baseTime),
			event("earlier-busy", model.ShowAsBusy, baseTime.Add(-time.Minute)),
		}
		got := engine.SelectHighestPriority(events)
		if got == nil || got.ID != "busy" {
			t.Fatalf("expected busy, got %+v", got)
		}

		reversed := []model.CalendarEvent{events[1], events[0]}
		if got := engine.SelectHighestPriority(reversed); got.ID != "busy" {
			t.Errorf("selection must not depend on input order, got %s", got.ID)
		}
	})

	t.Run("Higher ShowAs wins regardless of start time", func(t *testing.T) {
		events := []model.CalendarEvent{
			event("ooo", model.ShowAsOutOfOffice, baseTime.Add(-48*time.Hour)),
			event("busy", model.ShowAsBusy, baseTime),
		}
		if got := engine.SelectHighestPriority(events); got.ID != "ooo" {
			t.Errorf("expected ooo, got %s", got.ID)
		}
	})

	t.Run("Maximal ShowAs then latest start", func(t *testing.T) {
		events := []model.CalendarEvent{
			event("free", model.ShowAsFree, baseTime.Add(time.Hour)),
			event("tentative-late", model.ShowAsTentative, baseTime.Add(10*time.Minute)),
			event("tentative-early", model.ShowAsTentative, baseTime),
		}
		if got := engine.SelectHighestPriority(events); got.ID != "tentative-late" {
			t.Errorf("expected tentative-late, got %s", got.ID)
		}
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		events := []model.CalendarEvent{
			event("a", model.ShowAsFree, baseTime),
			event("b", model.ShowAsBusy, baseTime),
		}
		engine.SelectHighestPriority(events)
		if events[0].ID != "a" || events[1].ID != "b" {
			t.Errorf("input order changed: %s, %s", events[0].ID, events[1].ID)
		}
	})
}

func TestHasChanged(t *testing.T) {
	e1 := event("1", model.ShowAsBusy, baseTime)
	e1Renamed := e1
	e1Renamed.Name = "Renamed"
	e2 := event("2", model.ShowAsBusy, baseTime)

	tests := []struct {
		name     string
		previous *model.CalendarEvent
		selected *model.CalendarEvent
		want     bool
	}{
		{name: "Nothing before or now", previous: nil, selected: nil, want: false},
		{name: "New event", previous: nil, selected: &e1, want: true},
		{name: "Event ended", previous: &e1, selected: nil, want: true},
		{name: "Same id", previous: &e1, selected: &e1, want: false},
		{name: "Same id different fields", previous: &e1, selected: &e1Renamed, want: false},
		{name: "Different id", previous: &e1, selected: &e2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.HasChanged(tt.previous, tt.selected); got != tt.want {
				t.Errorf("HasChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}
