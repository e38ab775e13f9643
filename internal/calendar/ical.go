package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/pkg/icalfeed"
)

type icalProvider struct {
	client *icalfeed.Client
	now    func() time.Time
}

// NewICalProvider reads published iCalendar feeds. The user token is the secret feed URL.
func NewICalProvider(client *icalfeed.Client) Provider {
	return &icalProvider{client: client, now: time.Now}
}

func (p *icalProvider) GetEvents(ctx context.Context, userID, token string, windowMinutes int) ([]model.CalendarEvent, error) {
	start := p.now()
	raw, err := p.client.Events(ctx, token, start, start.Add(window(windowMinutes)))
	if err != nil {
		if errors.Is(err, icalfeed.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrAuthExpired, err)
		}
		return nil, fmt.Errorf("ical feed for %s: %w", userID, err)
	}

	events := make([]model.CalendarEvent, 0, len(raw))
	for _, ev := range raw {
		events = append(events, model.CalendarEvent{
			ID:        ev.ID,
			Name:      ev.Summary,
			StartTime: ev.Start,
			EndTime:   ev.End,
			Location:  ev.Location,
			Body:      ev.Description,
			ShowAs:    icalShowAs(ev),
		})
	}
	return events, nil
}

func icalShowAs(ev icalfeed.Event) model.ShowAs {
	switch ev.BusyStatus {
	case "FREE":
		return model.ShowAsFree
	case "TENTATIVE":
		return model.ShowAsTentative
	case "OOF":
		return model.ShowAsOutOfOffice
	case "BUSY":
		return model.ShowAsBusy
	}
	switch {
	case ev.Transparency == "TRANSPARENT":
		return model.ShowAsFree
	case ev.Status == "TENTATIVE":
		return model.ShowAsTentative
	default:
		return model.ShowAsBusy
	}
}
