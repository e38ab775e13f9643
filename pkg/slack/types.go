package slack

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUserNotFound is matched by APIError values carrying users_not_found.
	ErrUserNotFound = errors.New("slack: user not found")
	// ErrInvalidAuth is matched by APIError values for revoked or invalid tokens.
	ErrInvalidAuth = errors.New("slack: invalid auth")
)

// ProfileStatus is the status part of users.profile.set.
type ProfileStatus struct {
	StatusText       string `json:"status_text"`
	StatusEmoji      string `json:"status_emoji"`
	StatusExpiration int64  `json:"status_expiration"`
}

// User is the subset of a Slack user object we read.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TZ      string `json:"tz"`
	Deleted bool   `json:"deleted"`
	IsBot   bool   `json:"is_bot"`
}

// APIError is an ok=false Web API response.
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack %s failed: %s", e.Method, e.Code)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUserNotFound:
		return e.Code == "users_not_found"
	case ErrInvalidAuth:
		return e.Code == "invalid_auth" || e.Code == "token_revoked" || e.Code == "account_inactive"
	}
	return false
}

// RateLimitedError is an HTTP 429 from Slack.
type RateLimitedError struct {
	Method     string
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("slack %s rate limited, retry after %s", e.Method, e.RetryAfter)
}

type setProfileRequest struct {
	User    string        `json:"user,omitempty"`
	Profile ProfileStatus `json:"profile"`
}

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type envelope interface {
	result() apiResponse
}

type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (r *apiResponse) result() apiResponse { return *r }

type lookupResponse struct {
	apiResponse
	User User `json:"user"`
}
