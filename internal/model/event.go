package model

import "time"

// ShowAs is the calendar visibility classification of an event.
// Values are ordered: Free < Tentative < Busy < OutOfOffice.
type ShowAs int

const (
	ShowAsFree ShowAs = iota
	ShowAsTentative
	ShowAsBusy
	ShowAsOutOfOffice
)

// String returns the wire name used in storage and API payloads.
func (s ShowAs) String() string {
	switch s {
	case ShowAsFree:
		return "free"
	case ShowAsTentative:
		return "tentative"
	case ShowAsBusy:
		return "busy"
	case ShowAsOutOfOffice:
		return "oof"
	}
	return "unknown"
}

// ParseShowAs maps provider strings ("free", "tentative", "busy", "oof",
// "outOfOffice", "workingElsewhere") to a ShowAs. Unknown values are Busy.
func ParseShowAs(v string) ShowAs {
	switch v {
	case "free", "Free", "FREE":
		return ShowAsFree
	case "tentative", "Tentative", "TENTATIVE":
		return ShowAsTentative
	case "oof", "outOfOffice", "OutOfOffice", "OOF":
		return ShowAsOutOfOffice
	default:
		return ShowAsBusy
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ShowAs) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShowAs) UnmarshalText(text []byte) error {
	*s = ParseShowAs(string(text))
	return nil
}

// CalendarEvent is a single calendar entry fetched for one reconciliation pass.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	Body      string    `json:"body,omitempty"`
	ShowAs    ShowAs    `json:"show_as"`
}
