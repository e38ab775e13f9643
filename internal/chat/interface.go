package chat

import (
	"context"

	"calendar-status-sync/internal/model"
)

// Provider is the chat platform used for status, presence and bot messages.
type Provider interface {
	SetStatus(ctx context.Context, userID, token string, status model.ChatStatus) error
	SetPresence(ctx context.Context, userID, token string, presence model.Presence) error
	SendMessage(ctx context.Context, botToken string, msg model.ChatMessage) error
	// ResolveUserByEmail returns nil, nil when no chat user has that email.
	ResolveUserByEmail(ctx context.Context, botToken, email string) (*model.ChatUser, error)
}
