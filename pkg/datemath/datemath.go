package datemath

import (
	"time"
)

// Layouts used for user-facing dates. Neither includes the year.
const (
	TimeOfDayLayout = "3:04:05 PM"
	WeekdayLayout   = "Monday, January 2"
)

// Location loads an IANA timezone, falling back to UTC for empty or unknown names.
func Location(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// UntilString renders end relative to now in timezone: a time of day when end
// is today, otherwise weekday, month and day. A zero end yields "".
func UntilString(end, now time.Time, timezone string) string {
	if end.IsZero() {
		return ""
	}
	loc := Location(timezone)
	if SameDay(end, now, loc) {
		return end.In(loc).Format(TimeOfDayLayout)
	}
	return end.In(loc).Format(WeekdayLayout)
}
