package calendar

import (
	"fmt"
	"time"

	"calendar-status-sync/pkg/gcalendar"
	"calendar-status-sync/pkg/icalfeed"
	"calendar-status-sync/pkg/msgraph"
)

// Provider names accepted by NewProvider.
const (
	ProviderGraph  = "graph"
	ProviderGoogle = "google"
	ProviderICal   = "ical"
)

// Clients holds the transport clients NewProvider may choose from. Only the
// one matching the selected provider has to be set.
type Clients struct {
	Graph  *msgraph.Client
	Google *gcalendar.Client
	ICal   *icalfeed.Client
}

// NewProvider returns the calendar provider registered under name.
func NewProvider(name string, clients Clients) (Provider, error) {
	switch name {
	case ProviderGraph:
		if clients.Graph == nil {
			return nil, fmt.Errorf("calendar provider %q: graph client not configured", name)
		}
		return NewGraphProvider(clients.Graph), nil
	case ProviderGoogle:
		if clients.Google == nil {
			return nil, fmt.Errorf("calendar provider %q: google client not configured", name)
		}
		return NewGoogleProvider(clients.Google), nil
	case ProviderICal:
		if clients.ICal == nil {
			return nil, fmt.Errorf("calendar provider %q: ical client not configured", name)
		}
		return NewICalProvider(clients.ICal), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

func window(minutes int) time.Duration {
	if minutes <= 0 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}
