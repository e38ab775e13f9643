package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/pkg/gcalendar"
)

type googleProvider struct {
	client *gcalendar.Client
	now    func() time.Time
}

// NewGoogleProvider reads Google calendars. The user token is an offline refresh token.
func NewGoogleProvider(client *gcalendar.Client) Provider {
	return &googleProvider{client: client, now: time.Now}
}

func (p *googleProvider) GetEvents(ctx context.Context, userID, token string, windowMinutes int) ([]model.CalendarEvent, error) {
	start := p.now()
	raw, err := p.client.ListEvents(ctx, token, gcalendar.ListEventsRequest{
		TimeMin: start,
		TimeMax: start.Add(window(windowMinutes)),
	})
	if err != nil {
		if errors.Is(err, gcalendar.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrAuthExpired, err)
		}
		return nil, fmt.Errorf("google events for %s: %w", userID, err)
	}

	events := make([]model.CalendarEvent, 0, len(raw))
	for _, ev := range raw {
		if ev.SelfResponse == "declined" || ev.EventType == "workingLocation" {
			continue
		}
		events = append(events, model.CalendarEvent{
			ID:        ev.ID,
			Name:      ev.Summary,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Location:  googleLocation(ev),
			Body:      ev.Description,
			ShowAs:    googleShowAs(ev),
		})
	}
	return events, nil
}

// googleShowAs derives free/busy from event type, transparency and the
// user's own response.
func googleShowAs(ev gcalendar.Event) model.ShowAs {
	switch {
	case ev.EventType == "outOfOffice":
		return model.ShowAsOutOfOffice
	case ev.Transparency == "transparent":
		return model.ShowAsFree
	case ev.SelfResponse == "tentative" || ev.SelfResponse == "needsAction":
		return model.ShowAsTentative
	default:
		return model.ShowAsBusy
	}
}

// googleLocation appends the conference link as an extra segment so location
// parsing finds it when the room text carries no URL.
func googleLocation(ev gcalendar.Event) string {
	link := ev.HangoutLink
	if link == "" {
		link = ev.ConferenceURL
	}
	switch {
	case link == "" || strings.Contains(ev.Location, link):
		return ev.Location
	case ev.Location == "":
		return link
	default:
		return ev.Location + ";" + link
	}
}
