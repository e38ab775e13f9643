package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-status-sync/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"UTC", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00Z"`},
		{"offset converted", time.Date(2024, 5, 1, 17, 30, 0, 0, time.FixedZone("CEST", 2*3600)), `"2024-05-01T15:30:00Z"`},
		{"zero", time.Time{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestNewDateTime(t *testing.T) {
	if response.NewDateTime(time.Time{}) != nil {
		t.Error("expected nil for zero time")
	}
	if response.NewDateTime(time.Now()) == nil {
		t.Error("expected non-nil for a set time")
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var d response.DateTime
	if err := json.Unmarshal([]byte(`"2024-05-01T17:30:00+02:00"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !time.Time(d).Equal(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)) {
		t.Errorf("got %v", time.Time(d))
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Error("expected an error for a malformed timestamp")
	}
}
