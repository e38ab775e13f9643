package icalfeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

const maxFeedBytes = 16 << 20

// Client downloads and expands secret iCalendar feed URLs.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a feed client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// SetHTTPClient overrides the HTTP client for testing purposes.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// Events returns the non-cancelled event instances of the feed overlapping
// [start, end]. Recurring events are expanded into one instance per occurrence.
func (c *Client) Events(ctx context.Context, feedURL string, start, end time.Time) ([]Event, error) {
	cal, err := c.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return Expand(cal, start, end), nil
}

func (c *Client) fetch(ctx context.Context, feedURL string) (*ical.Calendar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusGone:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		return nil, fmt.Errorf("feed request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := validate(body); err != nil {
		return nil, err
	}

	cal, err := ical.NewDecoder(bytes.NewReader(body)).Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode calendar: %w", err)
	}
	return cal, nil
}

// validate rejects login pages served in place of the feed.
func validate(body []byte) error {
	head := strings.ToUpper(strings.TrimSpace(string(body[:min(len(body), 512)])))
	if strings.HasPrefix(head, "<!DOCTYPE") || strings.HasPrefix(head, "<HTML") {
		return fmt.Errorf("%w: received HTML instead of iCalendar data", ErrInvalidFeed)
	}
	if !strings.HasPrefix(head, "BEGIN:VCALENDAR") {
		return fmt.Errorf("%w: expected BEGIN:VCALENDAR", ErrInvalidFeed)
	}
	return nil
}
