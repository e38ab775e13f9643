package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrUnauthorized means the user's refresh token was rejected or the API returned 401.
var ErrUnauthorized = errors.New("gcalendar: unauthorized")

// Client reads Google calendars on behalf of users who granted offline access
// to the OAuth application in oauthConfig.
type Client struct {
	oauthConfig *oauth2.Config
	baseClient  *http.Client
}

// OAuthConfigFromFile loads an OAuth client (installed or web) JSON file.
func OAuthConfigFromFile(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return OAuthConfigFromJSON(data)
}

// OAuthConfigFromJSON parses OAuth client JSON bytes with read-only calendar scope.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return cfg, nil
}

// NewClient creates a Calendar client for the given OAuth application.
func NewClient(oauthConfig *oauth2.Config) *Client {
	return &Client{oauthConfig: oauthConfig}
}

// SetHTTPClient overrides the transport used for token refresh and API calls, for testing purposes.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.baseClient = hc
}

func (c *Client) service(ctx context.Context, refreshToken string) (*calendar.Service, error) {
	if c.baseClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.baseClient)
	}
	httpClient := c.oauthConfig.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// ListEvents returns single (expanded) events overlapping [TimeMin, TimeMax].
func (c *Client) ListEvents(ctx context.Context, refreshToken string, req ListEventsRequest) ([]Event, error) {
	svc, err := c.service(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	call := svc.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		OrderBy("startTime")
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var events []Event
	err = call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, toEvent(item, page.TimeZone))
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return events, nil
}

func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: token refresh: %s", ErrUnauthorized, retrieveErr.ErrorCode)
	}
	return fmt.Errorf("failed to list calendar events: %w", err)
}

func toEvent(item *calendar.Event, calendarTZ string) Event {
	ev := Event{
		ID:           item.Id,
		Summary:      item.Summary,
		Description:  item.Description,
		HtmlLink:     item.HtmlLink,
		Location:     item.Location,
		HangoutLink:  item.HangoutLink,
		Transparency: item.Transparency,
		EventType:    item.EventType,
		StartTime:    parseDateTime(item.Start, calendarTZ),
		EndTime:      parseDateTime(item.End, calendarTZ),
	}
	if item.Start != nil && item.Start.DateTime == "" {
		ev.AllDay = true
	}
	if item.ConferenceData != nil {
		for _, ep := range item.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" && ep.Uri != "" {
				ev.ConferenceURL = ep.Uri
				break
			}
		}
	}
	for _, a := range item.Attendees {
		if a.Self {
			ev.SelfResponse = a.ResponseStatus
			break
		}
	}
	return ev
}

// parseDateTime handles both timed (RFC3339) and all-day (date only) boundaries.
// All-day dates are placed at midnight in the event or calendar time zone.
func parseDateTime(dt *calendar.EventDateTime, calendarTZ string) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	if dt.Date == "" {
		return time.Time{}
	}
	tz := dt.TimeZone
	if tz == "" {
		tz = calendarTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01-02", dt.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
