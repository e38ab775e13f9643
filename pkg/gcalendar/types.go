package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID            string
	Summary       string
	Description   string
	HtmlLink      string
	Location      string
	HangoutLink   string
	ConferenceURL string
	StartTime     time.Time
	EndTime       time.Time
	AllDay        bool
	Transparency  string // "opaque" (default) or "transparent"
	EventType     string // default, outOfOffice, focusTime, workingLocation
	SelfResponse  string // needsAction, declined, tentative, accepted; empty when not an attendee
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
