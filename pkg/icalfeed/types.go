package icalfeed

import (
	"errors"
	"time"
)

// PropMicrosoftBusyStatus is the free/busy property Outlook and Exchange publish.
const PropMicrosoftBusyStatus = "X-MICROSOFT-CDO-BUSYSTATUS"

var (
	// ErrUnauthorized means the feed URL was revoked or is no longer accessible.
	ErrUnauthorized = errors.New("icalfeed: feed not accessible")
	ErrInvalidFeed  = errors.New("icalfeed: invalid feed")
)

// Event is one (possibly expanded) VEVENT instance.
type Event struct {
	ID           string // UID, or UID/occurrence for recurring instances
	UID          string
	Summary      string
	Description  string
	Location     string
	Start        time.Time
	End          time.Time
	AllDay       bool
	Status       string // TENTATIVE, CONFIRMED, CANCELLED
	Transparency string // OPAQUE, TRANSPARENT
	BusyStatus   string // FREE, TENTATIVE, BUSY, OOF
}
