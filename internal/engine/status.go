package engine

import (
	"strings"
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/pkg/datemath"
)

// Status texts and emoji used when no mapping applies.
const (
	AwayStatusText  = "Away"
	AwayStatusEmoji = ":spiral_calendar_pad:"
	OOOStatusPrefix = "OOO until "
	OOOStatusEmoji  = ":ooo:"
)

// StatusResolver maps the selected event and user settings to a chat status.
type StatusResolver struct {
	now func() time.Time
}

// NewStatusResolver returns a resolver using now as its clock. A nil now means time.Now.
func NewStatusResolver(now func() time.Time) StatusResolver {
	if now == nil {
		now = time.Now
	}
	return StatusResolver{now: now}
}

// ResolveStatus returns the chat status for selected. Mappings in settings are
// treated as templates: the returned value is always a fresh copy.
func (r StatusResolver) ResolveStatus(settings model.UserSettings, selected *model.CalendarEvent, userTimeZone string) model.ChatStatus {
	if userTimeZone == "" {
		userTimeZone = "UTC"
	}
	if selected == nil {
		return freeStatus(settings)
	}

	expiration := selected.EndTime
	for _, m := range settings.StatusMappings {
		if strings.Contains(strings.ToLower(selected.Name), strings.ToLower(m.CalendarText)) {
			status := m.ChatStatus
			status.Expiration = expiration
			return status
		}
	}

	return r.defaultStatus(settings, selected, expiration, userTimeZone)
}

func (r StatusResolver) defaultStatus(settings model.UserSettings, selected *model.CalendarEvent, expiration time.Time, tz string) model.ChatStatus {
	switch selected.ShowAs {
	case model.ShowAsFree:
		return freeStatus(settings)
	case model.ShowAsTentative, model.ShowAsBusy:
	case model.ShowAsOutOfOffice:
		return model.ChatStatus{
			Text:       OOOStatusPrefix + datemath.UntilString(selected.EndTime, r.now(), tz),
			Emoji:      OOOStatusEmoji,
			Expiration: expiration,
		}
	}
	return model.ChatStatus{Text: AwayStatusText, Emoji: AwayStatusEmoji, Expiration: expiration}
}

func freeStatus(settings model.UserSettings) model.ChatStatus {
	if settings.DefaultStatus != nil {
		status := *settings.DefaultStatus
		status.Expiration = time.Time{}
		return status
	}
	return model.ChatStatus{}
}

// ResolvePresence returns away for events above Tentative, auto otherwise.
func ResolvePresence(selected *model.CalendarEvent) model.Presence {
	if selected == nil || selected.ShowAs <= model.ShowAsTentative {
		return model.PresenceAuto
	}
	return model.PresenceAway
}
