package slack_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"calendar-status-sync/pkg/slack"
)

func TestClient(t *testing.T) {
	var lastBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer revoked" {
			w.Write([]byte(`{"ok": false, "error": "token_revoked"}`))
			return
		}

		switch r.URL.Path {
		case "/users.profile.set", "/users.setPresence", "/dnd.setSnooze", "/chat.postMessage":
			lastBody = map[string]any{}
			json.NewDecoder(r.Body).Decode(&lastBody)
			if lastBody["text"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if lastBody["text"] == "cause_429" {
				w.Header().Set("Retry-After", "30")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"ok": true}`))
		case "/users.lookupByEmail":
			raw, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(raw), "email=ada%40example.com") {
				w.Write([]byte(`{"ok": false, "error": "users_not_found"}`))
				return
			}
			w.Write([]byte(`{"ok": true, "user": {"id": "U123", "name": "ada", "tz": "Europe/London"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := slack.NewClient(6000)
	client.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("SetProfileStatus", func(t *testing.T) {
		err := client.SetProfileStatus(ctx, "xoxp", "U123", slack.ProfileStatus{
			StatusText:       "Away",
			StatusEmoji:      ":spiral_calendar_pad:",
			StatusExpiration: 1773133200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		profile, _ := lastBody["profile"].(map[string]any)
		if profile["status_text"] != "Away" || lastBody["user"] != "U123" {
			t.Errorf("unexpected payload %+v", lastBody)
		}
	})

	t.Run("SetPresence and SetSnooze", func(t *testing.T) {
		if err := client.SetPresence(ctx, "xoxp", "away"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastBody["presence"] != "away" {
			t.Errorf("unexpected payload %+v", lastBody)
		}
		if err := client.SetSnooze(ctx, "xoxp", 25); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastBody["num_minutes"] != float64(25) {
			t.Errorf("unexpected payload %+v", lastBody)
		}
	})

	t.Run("PostMessage errors", func(t *testing.T) {
		if err := client.PostMessage(ctx, "xoxb", "U123", "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.PostMessage(ctx, "xoxb", "U123", "cause_500"); err == nil {
			t.Errorf("expected error on 500")
		}
		var rl *slack.RateLimitedError
		if err := client.PostMessage(ctx, "xoxb", "U123", "cause_429"); !errors.As(err, &rl) || rl.RetryAfter.Seconds() != 30 {
			t.Errorf("expected RateLimitedError, got %v", err)
		}
	})

	t.Run("Revoked token", func(t *testing.T) {
		err := client.SetPresence(ctx, "revoked", "auto")
		if !errors.Is(err, slack.ErrInvalidAuth) {
			t.Errorf("expected ErrInvalidAuth, got %v", err)
		}
	})

	t.Run("LookupUserByEmail", func(t *testing.T) {
		user, err := client.LookupUserByEmail(ctx, "xoxb", "ada@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "U123" || user.TZ != "Europe/London" {
			t.Errorf("unexpected user %+v", user)
		}

		_, err = client.LookupUserByEmail(ctx, "xoxb", "ghost@example.com")
		if !errors.Is(err, slack.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestRateLimiterHonorsContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	client := slack.NewClient(1)
	client.SetAPIURL(ts.URL)

	if err := client.SetPresence(context.Background(), "xoxp", "auto"); err != nil {
		t.Fatalf("first call should use the burst: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := client.SetPresence(ctx, "xoxp", "auto"); err == nil {
		t.Errorf("expected the second call to fail on a cancelled context")
	}
	if err := client.SetPresence(context.Background(), "other-token", "auto"); err != nil {
		t.Errorf("a different token has its own bucket: %v", err)
	}
}
