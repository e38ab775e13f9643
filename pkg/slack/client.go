package slack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const defaultAPIURL = "https://slack.com/api"

// Client is a minimal Slack Web API client. Calls are paced per token.
type Client struct {
	apiURL     string
	httpClient *http.Client
	limiter    *rateLimiter
}

// NewClient creates a Slack client allowing requestsPerMin calls per token.
func NewClient(requestsPerMin int) *Client {
	return &Client{
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    newRateLimiter(requestsPerMin),
	}
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = strings.TrimRight(url, "/")
}

// SetProfileStatus sets the status of the token's user. A zero
// StatusExpiration keeps the status until it is changed.
func (c *Client) SetProfileStatus(ctx context.Context, token, userID string, status ProfileStatus) error {
	payload := setProfileRequest{User: userID, Profile: status}
	return c.postJSON(ctx, token, "users.profile.set", payload, &apiResponse{})
}

// SetPresence sets the token user's presence to "auto" or "away".
func (c *Client) SetPresence(ctx context.Context, token, presence string) error {
	return c.postJSON(ctx, token, "users.setPresence", map[string]string{"presence": presence}, &apiResponse{})
}

// SetSnooze turns on Do Not Disturb for the token's user for minutes.
func (c *Client) SetSnooze(ctx context.Context, token string, minutes int) error {
	return c.postJSON(ctx, token, "dnd.setSnooze", map[string]int{"num_minutes": minutes}, &apiResponse{})
}

// PostMessage sends text to channel; a user ID opens the bot's direct message.
func (c *Client) PostMessage(ctx context.Context, botToken, channel, text string) error {
	payload := postMessageRequest{Channel: channel, Text: text}
	return c.postJSON(ctx, botToken, "chat.postMessage", payload, &apiResponse{})
}

// LookupUserByEmail returns the workspace member with email. A missing user
// is reported as ErrUserNotFound.
func (c *Client) LookupUserByEmail(ctx context.Context, botToken, email string) (*User, error) {
	var resp lookupResponse
	if err := c.postForm(ctx, botToken, "users.lookupByEmail", url.Values{"email": {email}}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) postJSON(ctx context.Context, token, method string, payload any, out envelope) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}
	return c.do(ctx, token, method, "application/json; charset=utf-8", body, out)
}

func (c *Client) postForm(ctx context.Context, token, method string, form url.Values, out envelope) error {
	return c.do(ctx, token, method, "application/x-www-form-urlencoded", []byte(form.Encode()), out)
}

func (c *Client) do(ctx context.Context, token, method, contentType string, body []byte, out envelope) error {
	if err := c.limiter.Wait(ctx, token); err != nil {
		return fmt.Errorf("slack %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &RateLimitedError{Method: method, RetryAfter: time.Duration(retryAfter) * time.Second}
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack %s API error %d: %s", method, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if r := out.result(); !r.OK {
		return &APIError{Method: method, Code: r.Error}
	}
	return nil
}
