package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/pkg/msgraph"
)

type graphProvider struct {
	client *msgraph.Client
	now    func() time.Time
}

// NewGraphProvider reads Outlook calendars through Microsoft Graph. The user
// token is a refresh token for the client's OAuth application.
func NewGraphProvider(client *msgraph.Client) Provider {
	return &graphProvider{client: client, now: time.Now}
}

func (p *graphProvider) GetEvents(ctx context.Context, userID, token string, windowMinutes int) ([]model.CalendarEvent, error) {
	start := p.now()
	raw, err := p.client.CalendarView(ctx, token, start, start.Add(window(windowMinutes)))
	if err != nil {
		if errors.Is(err, msgraph.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrAuthExpired, err)
		}
		return nil, fmt.Errorf("graph calendar view for %s: %w", userID, err)
	}

	events := make([]model.CalendarEvent, 0, len(raw))
	for _, ev := range raw {
		events = append(events, model.CalendarEvent{
			ID:        ev.ID,
			Name:      ev.Subject,
			StartTime: ev.Start,
			EndTime:   ev.End,
			Location:  ev.Location,
			Body:      ev.Body,
			ShowAs:    model.ParseShowAs(ev.ShowAs),
		})
	}
	return events, nil
}
