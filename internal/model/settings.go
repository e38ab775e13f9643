package model

import "time"

// ChatStatus is the outbound chat profile status.
type ChatStatus struct {
	Text       string    `json:"text"`
	Emoji      string    `json:"emoji"`
	Expiration time.Time `json:"expiration,omitempty"` // zero means the status does not expire
	DND        bool      `json:"dnd,omitempty"`
}

// StatusMapping sets a fixed chat status for events whose name contains CalendarText.
type StatusMapping struct {
	CalendarText string     `json:"calendar_text"`
	ChatStatus   ChatStatus `json:"chat_status"`
}

// Presence is the chat presence value set alongside the status.
type Presence string

const (
	PresenceAuto Presence = "auto"
	PresenceAway Presence = "away"
)

// UserSettings is the persisted per-user configuration, keyed by Email.
type UserSettings struct {
	Email                                string          `json:"email"`
	ChatToken                            string          `json:"chat_token,omitempty"`
	CalendarToken                        string          `json:"calendar_token,omitempty"`
	DefaultStatus                        *ChatStatus     `json:"default_status,omitempty"`
	StatusMappings                       []StatusMapping `json:"status_mappings,omitempty"`
	CurrentEvent                         *CalendarEvent  `json:"current_event,omitempty"`
	ZoomLinksDisabled                    bool            `json:"zoom_links_disabled"`
	MeetingReminderTimingOverrideMinutes int             `json:"meeting_reminder_timing_override_minutes,omitempty"` // 0 = not configured
	LastReminderEventID                  string          `json:"last_reminder_event_id,omitempty"`
	Snoozed                              bool            `json:"snoozed"`
}

// ChatUser is the chat identity resolved for a user's email.
type ChatUser struct {
	ID       string
	TimeZone string
}

// ChatMessage is a direct message sent by the bot.
type ChatMessage struct {
	Text          string
	ChannelUserID string
}
