package engine

import (
	"context"
	"fmt"
	"strings"

	"calendar-status-sync/internal/model"
)

// RoomDirectory resolves a meeting room name or nickname to its meeting URLs.
// Implementations are best effort and return nil on misses or fetch failures.
type RoomDirectory interface {
	ResolveURLsByName(ctx context.Context, query string) []string
}

// LinkExtractor finds meeting links in event locations and bodies.
type LinkExtractor struct {
	rooms RoomDirectory
}

// NewLinkExtractor returns an extractor. rooms may be nil.
func NewLinkExtractor(rooms RoomDirectory) LinkExtractor {
	return LinkExtractor{rooms: rooms}
}

// LocationURL returns the meeting URL named by event's location, or "".
func (x LinkExtractor) LocationURL(ctx context.Context, event *model.CalendarEvent, zoomLinksDisabled bool) string {
	if zoomLinksDisabled || event == nil || strings.TrimSpace(event.Location) == "" {
		return ""
	}

	segments := strings.Split(event.Location, ";")
	for _, segment := range segments {
		if m := urlPattern.FindString(segment); m != "" {
			return strings.TrimSuffix(m, ";")
		}
	}

	if x.rooms == nil {
		return ""
	}
	for _, segment := range segments {
		name := strings.TrimSpace(segment)
		if name == "" {
			continue
		}
		if urls := x.rooms.ResolveURLsByName(ctx, name); len(urls) == 1 {
			return urls[0]
		}
	}
	return ""
}

// AdditionalLinks returns the links found in the event body.
func (x LinkExtractor) AdditionalLinks(event *model.CalendarEvent) []string {
	if event == nil {
		return nil
	}
	return ExtractLinks(event.Body)
}

// UpcomingEventMessage composes the reminder text for event. It returns ""
// when no meeting link can be found or links are disabled for the user.
func (x LinkExtractor) UpcomingEventMessage(ctx context.Context, event *model.CalendarEvent, settings model.UserSettings) string {
	if event == nil || settings.ZoomLinksDisabled {
		return ""
	}

	url := x.LocationURL(ctx, event, settings.ZoomLinksDisabled)
	if url == "" {
		url = firstLink(event.Body)
	}
	if url == "" {
		return ""
	}

	var extras []string
	for _, link := range x.AdditionalLinks(event) {
		if link != url {
			extras = append(extras, link)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You have an upcoming meeting: *%s* at %s", event.Name, url))
	if len(extras) > 0 {
		sb.WriteString(". Here are some links I found in the event:\n")
		for i, link := range extras {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("• " + link)
		}
	}
	return sb.String()
}
