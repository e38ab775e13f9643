package msgraph

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnauthorized means the refresh token was rejected or Graph returned 401.
var ErrUnauthorized = errors.New("msgraph: unauthorized")

// Event is a calendar view entry.
type Event struct {
	ID       string
	Subject  string
	Start    time.Time
	End      time.Time
	Location string
	Body     string
	ShowAs   string // free, tentative, busy, oof, workingElsewhere, unknown
}

// APIError is a non-200 Graph response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("msgraph API error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is reports 401 responses as ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

type eventPage struct {
	Value    []rawEvent `json:"value"`
	NextLink string     `json:"@odata.nextLink"`
}

type rawEvent struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Body    struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	Start struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"end"`
	Location struct {
		DisplayName string `json:"displayName"`
	} `json:"location"`
	ShowAs      string `json:"showAs"`
	IsCancelled bool   `json:"isCancelled"`
}
