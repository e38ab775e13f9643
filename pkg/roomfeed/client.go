package roomfeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Room is one meeting room entry of the directory feed.
type Room struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	URL      string `json:"url"`
}

// Client downloads the room directory JSON document. The document is either
// an array of rooms or an object with a "rooms" array.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the feed at url. apiKey, when set, is sent as a bearer token.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	return &Client{url: url, apiKey: apiKey, httpClient: &http.Client{Timeout: timeout}}
}

// Rooms fetches the current room list.
func (c *Client) Rooms(ctx context.Context) ([]Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("room feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("room feed error %d: %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read room feed: %w", err)
	}
	return decode(raw)
}

func decode(raw []byte) ([]Room, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var rooms []Room
		if err := json.Unmarshal(raw, &rooms); err != nil {
			return nil, fmt.Errorf("failed to decode room feed: %w", err)
		}
		return rooms, nil
	}

	var doc struct {
		Rooms []Room `json:"rooms"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode room feed: %w", err)
	}
	return doc.Rooms, nil
}
