package engine

import (
	"sort"

	"calendar-status-sync/internal/model"
)

// SelectHighestPriority returns the most relevant event: highest ShowAs first,
// then the most recently started. It returns nil for an empty slice and does
// not reorder events.
func SelectHighestPriority(events []model.CalendarEvent) *model.CalendarEvent {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]model.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ShowAs != sorted[j].ShowAs {
			return sorted[i].ShowAs > sorted[j].ShowAs
		}
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})

	selected := sorted[0]
	return &selected
}

// HasChanged reports whether selected differs from the previously recorded
// event. Events are compared by ID only.
func HasChanged(previous, selected *model.CalendarEvent) bool {
	if previous == nil || selected == nil {
		return previous != selected
	}
	return previous.ID != selected.ID
}
