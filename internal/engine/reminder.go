package engine

import (
	"context"

	"calendar-status-sync/internal/model"
)

// DefaultWindowMinutes is the lookahead used for status resolution.
const DefaultWindowMinutes = 1

// Reminder is a meeting reminder that should be sent to the user.
type Reminder struct {
	Event   model.CalendarEvent
	Message string
}

// ReminderWindow returns the reminder lookahead for settings and whether it
// needs a fetch of its own. Overrides of 1 minute or less reuse the status window.
func ReminderWindow(settings model.UserSettings) (minutes int, separateFetch bool) {
	if override := settings.MeetingReminderTimingOverrideMinutes; override > DefaultWindowMinutes {
		return override, true
	}
	return DefaultWindowMinutes, false
}

// ReminderEngine decides whether a one-time meeting reminder should fire.
type ReminderEngine struct {
	links LinkExtractor
}

// NewReminderEngine returns an engine composing messages with links.
func NewReminderEngine(links LinkExtractor) ReminderEngine {
	return ReminderEngine{links: links}
}

// DecideReminder returns the reminder to send, or nil. overrideEvents are only
// consulted when ReminderWindow reports a separate fetch.
func (e ReminderEngine) DecideReminder(ctx context.Context, settings model.UserSettings, primaryEvents, overrideEvents []model.CalendarEvent) *Reminder {
	if settings.Snoozed {
		return nil
	}

	events := primaryEvents
	if _, separate := ReminderWindow(settings); separate {
		events = overrideEvents
	}

	candidate := SelectHighestPriority(events)
	if candidate == nil || candidate.ID == settings.LastReminderEventID {
		return nil
	}

	message := e.links.UpcomingEventMessage(ctx, candidate, settings)
	if message == "" {
		return nil
	}
	return &Reminder{Event: *candidate, Message: message}
}
