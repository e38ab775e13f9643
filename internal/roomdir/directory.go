package roomdir

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"calendar-status-sync/pkg/log"
	"calendar-status-sync/pkg/roomfeed"
)

const roomsKey = "rooms"

// Source supplies the full room list.
type Source interface {
	Rooms(ctx context.Context) ([]roomfeed.Room, error)
}

// Directory resolves room names to meeting URLs from a Source, caching both
// the room list and per-query answers for ttl.
type Directory struct {
	l       log.Logger
	source  Source
	rooms   *expirable.LRU[string, []roomfeed.Room]
	results *expirable.LRU[string, []string]
	group   singleflight.Group
}

// New creates a Directory holding up to size cached queries.
func New(l log.Logger, source Source, ttl time.Duration, size int) *Directory {
	if size <= 0 {
		size = 1024
	}
	return &Directory{
		l:       l,
		source:  source,
		rooms:   expirable.NewLRU[string, []roomfeed.Room](1, nil, ttl),
		results: expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

// ResolveURLsByName returns the URLs of rooms whose name or nickname equals
// query, ignoring case. Feed failures yield no URLs and are not cached.
func (d *Directory) ResolveURLsByName(ctx context.Context, query string) []string {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return nil
	}
	if urls, ok := d.results.Get(key); ok {
		return urls
	}

	rooms, err := d.load(ctx)
	if err != nil {
		d.l.Warnf(ctx, "roomdir.ResolveURLsByName: room feed unavailable: %v", err)
		return nil
	}

	urls := match(rooms, key)
	d.results.Add(key, urls)
	return urls
}

func (d *Directory) load(ctx context.Context) ([]roomfeed.Room, error) {
	if rooms, ok := d.rooms.Get(roomsKey); ok {
		return rooms, nil
	}
	v, err, _ := d.group.Do(roomsKey, func() (any, error) {
		rooms, err := d.source.Rooms(ctx)
		if err != nil {
			return nil, err
		}
		d.rooms.Add(roomsKey, rooms)
		return rooms, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]roomfeed.Room), nil
}

func match(rooms []roomfeed.Room, key string) []string {
	var urls []string
	seen := make(map[string]bool)
	for _, r := range rooms {
		if r.URL == "" || seen[r.URL] {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(r.Name), key) || strings.EqualFold(strings.TrimSpace(r.Nickname), key) {
			seen[r.URL] = true
			urls = append(urls, r.URL)
		}
	}
	return urls
}
