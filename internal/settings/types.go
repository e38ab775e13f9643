package settings

import "calendar-status-sync/internal/model"

// UpdateInput is a partial settings update. Nil fields are left unchanged.
type UpdateInput struct {
	ChatToken                            *string
	CalendarToken                        *string
	DefaultStatus                        *model.ChatStatus
	ClearDefaultStatus                   bool
	StatusMappings                       *[]model.StatusMapping
	ZoomLinksDisabled                    *bool
	MeetingReminderTimingOverrideMinutes *int
	Snoozed                              *bool
}
