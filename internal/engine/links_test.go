package engine_test

import (
	"context"
	"reflect"
	"testing"

	"calendar-status-sync/internal/engine"
	"calendar-status-sync/internal/model"
)

type mockRoomDirectory struct {
	urls    map[string][]string
	queries []string
}

func (m *mockRoomDirectory) ResolveURLsByName(ctx context.Context, query string) []string {
	m.queries = append(m.queries, query)
	return m.urls[query]
}

func TestLocationURL(t *testing.T) {
	ctx := context.Background()
	rooms := &mockRoomDirectory{urls: map[string][]string{
		"Board Room": {"https://zoom.us/j/111"},
		"Shared":     {"https://zoom.us/j/1", "https://zoom.us/j/2"},
	}}
	x := engine.NewLinkExtractor(rooms)

	tests := []struct {
		name     string
		location string
		disabled bool
		want     string
	}{
		{name: "Disabled", location: "https://zoom.us/j/9", disabled: true, want: ""},
		{name: "Empty location", location: "", want: ""},
		{name: "Plain URL", location: "https://zoom.us/j/9", want: "https://zoom.us/j/9"},
		{name: "URL in second segment", location: "Room 4; https://meet.google.com/abc-defg-hij;", want: "https://meet.google.com/abc-defg-hij"},
		{name: "Non-http scheme", location: "zoommtg://zoom.us/join?confno=9", want: "zoommtg://zoom.us/join?confno=9"},
		{name: "Room directory unique match", location: "Board Room", want: "https://zoom.us/j/111"},
		{name: "Room directory ambiguous", location: "Shared", want: ""},
		{name: "Room directory miss", location: "Kitchen", want: ""},
		{name: "Room directory per segment", location: "Board Room; Microsoft Teams Meeting", want: "https://zoom.us/j/111"},
		{name: "Room directory segment after miss", location: "Kitchen;Board Room", want: "https://zoom.us/j/111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &model.CalendarEvent{Location: tt.location}
			if got := x.LocationURL(ctx, ev, tt.disabled); got != tt.want {
				t.Errorf("LocationURL() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Nil room directory", func(t *testing.T) {
		x := engine.NewLinkExtractor(nil)
		if got := x.LocationURL(ctx, &model.CalendarEvent{Location: "Board Room"}, false); got != "" {
			t.Errorf("expected no url, got %q", got)
		}
	})
}

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Empty", text: "", want: nil},
		{name: "No links", text: "agenda: talk about things", want: []string{}},
		{
			name: "Plain text with punctuation",
			text: "agenda: https://a; link: https://b.",
			want: []string{"https://a", "https://b"},
		},
		{
			name: "Anchor, angle and plain in document order",
			text: `<p>Docs: <a href="https://docs.example.com/x?a=1&amp;b=2">the doc</a></p> see <https://wiki.example.com/page> and https://plain.example.com`,
			want: []string{"https://docs.example.com/x?a=1&b=2", "https://wiki.example.com/page", "https://plain.example.com"},
		},
		{
			name: "Duplicates collapse",
			text: `<a href="https://x.example.com">https://x.example.com</a> again https://x.example.com`,
			want: []string{"https://x.example.com"},
		},
		{
			name: "Markup attributes are not links",
			text: `<img src="https://cdn.example.com/logo.png"> <a href="#top">top</a> <a href="mailto:a@b.c">mail</a>`,
			want: []string{},
		},
		{
			name: "Escaped angle brackets",
			text: `Join: &lt;https://teams.microsoft.com/l/meetup-join/1&gt;`,
			want: []string{"https://teams.microsoft.com/l/meetup-join/1"},
		},
		{
			name: "Non-breaking space ends a URL",
			text: "<p>Agenda: https://docs.example.com/a&nbsp;and more</p>",
			want: []string{"https://docs.example.com/a"},
		},
		{
			name: "Outlook HTML body",
			text: outlookBody,
			want: []string{"https://teams.microsoft.com/l/meetup-join/abc", "https://aka.ms/JoinTeamsMeeting"},
		},
		{
			name: "Google description",
			text: googleDescription,
			want: []string{"https://meet.google.com/abc-defg-hij", "https://docs.example.com/notes?a=1&b=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ExtractLinks(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLinks() = %v, want %v", got, tt.want)
			}
		})
	}
}

const outlookBody = `<html xmlns:v="urn:schemas-microsoft-com:vml" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8">
<style>@font-face { font-family: "Segoe UI"; src: url(https://fonts.example.com/segoe.woff); }
p.MsoNormal { margin: 0cm; }</style>
</head>
<body lang="EN-US">
<div class="WordSection1"><p class="MsoNormal">&nbsp;</p></div>
<div style="width:100%;height:20px;"><span style="white-space:nowrap;color:#5F5F5F;opacity:.36;">________________________________________________________________________________</span></div>
<div class="me-email-text" style="color:#252424;font-family:'Segoe UI','Helvetica Neue',Helvetica,Arial,sans-serif;" lang="en-US">
<div style="margin-top:24px;margin-bottom:20px;"><span style="font-size:24px;color:#252424">Microsoft Teams meeting</span></div>
<div style="margin-bottom:20px;"><div style="margin-top:0px;margin-bottom:0px;font-weight:bold"><span style="font-size:14px;color:#252424">Join on your computer, mobile app or room device</span></div>
<a class="me-email-headline" style="font-size:14px;font-family:'Segoe UI Semibold','Segoe UI','Helvetica Neue',Helvetica,Arial,sans-serif;text-decoration:underline;color:#6264a7;" href="https://teams.microsoft.com/l/meetup-join/abc" target="_blank" rel="noreferrer noopener">Click here to join the meeting</a></div>
<div style="margin-bottom:20px;margin-top:20px"><div style="margin-bottom:4px"><span data-tid="meeting-code" style="font-size:14px;color:#252424;">Meeting ID: <span style="font-size:16px;color:#252424;">123 456 789</span></span></div></div>
<div style="margin-bottom:24px;max-width:532px;"><a class="me-email-link" style="font-size:14px;text-decoration:underline;color:#6264a7;" target="_blank" href="https://aka.ms/JoinTeamsMeeting" rel="noreferrer noopener">Join with a video conferencing device</a></div>
</div>
</body>
</html>`

const googleDescription = `Join with Google Meet: <a href="https://meet.google.com/abc-defg-hij">meet.google.com/abc-defg-hij</a><br><br>Notes: https://docs.example.com/notes?a=1&amp;b=2<br>Learn more about Meet at: <a href="https://meet.google.com/abc-defg-hij">https://meet.google.com/abc-defg-hij</a>`

func TestUpcomingEventMessage(t *testing.T) {
	ctx := context.Background()
	x := engine.NewLinkExtractor(nil)

	t.Run("Location link with extras", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "name", Location: "https://x", Body: "agenda: https://a; link: https://b"}
		got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{})
		want := "You have an upcoming meeting: *name* at https://x. Here are some links I found in the event:\n• https://a\n• https://b"
		if got != want {
			t.Errorf("got %q\nwant %q", got, want)
		}
	})

	t.Run("Chosen link excluded from extras", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "name", Location: "https://x", Body: "agenda: https://a; join https://x; link: https://b"}
		got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{})
		want := "You have an upcoming meeting: *name* at https://x. Here are some links I found in the event:\n• https://a\n• https://b"
		if got != want {
			t.Errorf("got %q\nwant %q", got, want)
		}
	})

	t.Run("Only link is the location", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "Standup", Location: "https://zoom.us/j/1", Body: "Join https://zoom.us/j/1"}
		got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{})
		if got != "You have an upcoming meeting: *Standup* at https://zoom.us/j/1" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("Falls back to first body URL", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "Sync", Location: "Room 2", Body: "Join at https://meet.google.com/abc, notes https://docs.example.com"}
		got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{})
		want := "You have an upcoming meeting: *Sync* at https://meet.google.com/abc. Here are some links I found in the event:\n• https://docs.example.com"
		if got != want {
			t.Errorf("got %q\nwant %q", got, want)
		}
	})

	t.Run("Outlook HTML body", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "Planning", Location: "Microsoft Teams Meeting", Body: outlookBody}
		got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{})
		want := "You have an upcoming meeting: *Planning* at https://teams.microsoft.com/l/meetup-join/abc. Here are some links I found in the event:\n• https://aka.ms/JoinTeamsMeeting"
		if got != want {
			t.Errorf("got %q\nwant %q", got, want)
		}
	})

	t.Run("Google description", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "1:1", Body: googleDescription}
		got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{})
		want := "You have an upcoming meeting: *1:1* at https://meet.google.com/abc-defg-hij. Here are some links I found in the event:\n• https://docs.example.com/notes?a=1&b=2"
		if got != want {
			t.Errorf("got %q\nwant %q", got, want)
		}
	})

	t.Run("No link at all", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "Lunch", Location: "Cafeteria", Body: "bring snacks"}
		if got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{}); got != "" {
			t.Errorf("expected no message, got %q", got)
		}
	})

	t.Run("Nil event", func(t *testing.T) {
		if got := x.UpcomingEventMessage(ctx, nil, model.UserSettings{}); got != "" {
			t.Errorf("expected no message, got %q", got)
		}
	})

	t.Run("Links disabled", func(t *testing.T) {
		ev := &model.CalendarEvent{Name: "name", Location: "https://x"}
		if got := x.UpcomingEventMessage(ctx, ev, model.UserSettings{ZoomLinksDisabled: true}); got != "" {
			t.Errorf("expected no message, got %q", got)
		}
	})
}
