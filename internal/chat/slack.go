package chat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/pkg/slack"
)

type slackProvider struct {
	client *slack.Client
	now    func() time.Time
}

// NewSlackProvider adapts a Slack Web API client to Provider.
func NewSlackProvider(client *slack.Client) Provider {
	return &slackProvider{client: client, now: time.Now}
}

// SetStatus writes the profile status. A DND status with an expiration also
// snoozes notifications until that time.
func (p *slackProvider) SetStatus(ctx context.Context, userID, token string, status model.ChatStatus) error {
	var expiration int64
	if !status.Expiration.IsZero() {
		expiration = status.Expiration.Unix()
	}

	err := p.client.SetProfileStatus(ctx, token, userID, slack.ProfileStatus{
		StatusText:       status.Text,
		StatusEmoji:      status.Emoji,
		StatusExpiration: expiration,
	})
	if err != nil {
		return err
	}

	if !status.DND || status.Expiration.IsZero() {
		return nil
	}
	minutes := int(math.Ceil(status.Expiration.Sub(p.now()).Minutes()))
	if minutes <= 0 {
		return nil
	}
	if err := p.client.SetSnooze(ctx, token, minutes); err != nil {
		return fmt.Errorf("snooze notifications: %w", err)
	}
	return nil
}

func (p *slackProvider) SetPresence(ctx context.Context, userID, token string, presence model.Presence) error {
	return p.client.SetPresence(ctx, token, string(presence))
}

func (p *slackProvider) SendMessage(ctx context.Context, botToken string, msg model.ChatMessage) error {
	return p.client.PostMessage(ctx, botToken, msg.ChannelUserID, msg.Text)
}

// ResolveUserByEmail treats unknown and deactivated accounts as not found.
func (p *slackProvider) ResolveUserByEmail(ctx context.Context, botToken, email string) (*model.ChatUser, error) {
	user, err := p.client.LookupUserByEmail(ctx, botToken, email)
	if err != nil {
		if errors.Is(err, slack.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if user.Deleted {
		return nil, nil
	}
	return &model.ChatUser{ID: user.ID, TimeZone: user.TZ}, nil
}
