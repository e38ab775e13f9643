package msgraph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

const (
	defaultAPIURL = "https://graph.microsoft.com/v1.0"
	timeFormat    = "2006-01-02T15:04:05"
	eventFields   = "id,subject,start,end,location,body,showAs,isCancelled"
)

// Scopes requested for delegated calendar access.
var Scopes = []string{"offline_access", "Calendars.Read"}

// OAuthConfig returns the OAuth application config for an Azure AD tenant.
// An empty tenant means "common".
func OAuthConfig(clientID, clientSecret, tenant string) *oauth2.Config {
	if tenant == "" {
		tenant = "common"
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     microsoft.AzureADEndpoint(tenant),
		Scopes:       Scopes,
	}
}

// Client reads calendars through Microsoft Graph on behalf of users holding
// refresh tokens issued to oauthConfig.
type Client struct {
	oauthConfig *oauth2.Config
	apiURL      string
}

// NewClient creates a Graph client for the given OAuth application.
func NewClient(oauthConfig *oauth2.Config) *Client {
	return &Client{oauthConfig: oauthConfig, apiURL: defaultAPIURL}
}

// SetAPIURL overrides the Graph base URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

func (c *Client) httpClient(ctx context.Context, refreshToken string) *http.Client {
	return c.oauthConfig.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})
}

// CalendarView returns the events of the signed-in user overlapping [start, end],
// following @odata.nextLink pages. Times are returned in UTC.
func (c *Client) CalendarView(ctx context.Context, refreshToken string, start, end time.Time) ([]Event, error) {
	params := url.Values{}
	params.Set("startDateTime", start.UTC().Format(time.RFC3339))
	params.Set("endDateTime", end.UTC().Format(time.RFC3339))
	params.Set("$select", eventFields)
	params.Set("$orderby", "start/dateTime")

	client := c.httpClient(ctx, refreshToken)
	endpoint := c.apiURL + "/me/calendarView?" + params.Encode()

	var events []Event
	for endpoint != "" {
		page, err := c.getPage(ctx, client, endpoint)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Value {
			if raw.IsCancelled {
				continue
			}
			events = append(events, raw.toEvent())
		}
		endpoint = page.NextLink
	}
	return events, nil
}

func (c *Client) getPage(ctx context.Context, client *http.Client, endpoint string) (*eventPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Prefer", `outlook.timezone="UTC", outlook.body-content-type="html"`)

	resp, err := client.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: token refresh: %s", ErrUnauthorized, retrieveErr.ErrorCode)
		}
		return nil, fmt.Errorf("failed to list calendar view: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var page eventPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &page, nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	} else {
		apiErr.Message = string(raw)
	}
	return apiErr
}

func (e rawEvent) toEvent() Event {
	return Event{
		ID:       e.ID,
		Subject:  e.Subject,
		Start:    parseTime(e.Start.DateTime),
		End:      parseTime(e.End.DateTime),
		Location: e.Location.DisplayName,
		Body:     e.Body.Content,
		ShowAs:   e.ShowAs,
	}
}

// parseTime accepts Graph's fractional second timestamps. Invalid values are zero.
func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeFormat, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
