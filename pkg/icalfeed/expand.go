package icalfeed

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

const recurrenceIDLayout = "20060102T150405Z"

// Expand returns the instances of cal's VEVENTs overlapping [start, end].
// Overridden occurrences (RECURRENCE-ID) replace the generated ones.
func Expand(cal *ical.Calendar, start, end time.Time) []Event {
	var masters, overrides []*ical.Component
	for _, comp := range cal.Children {
		if comp.Name != ical.CompEvent {
			continue
		}
		if comp.Props.Get(ical.PropRecurrenceID) != nil {
			overrides = append(overrides, comp)
		} else {
			masters = append(masters, comp)
		}
	}

	replaced := make(map[string]bool, len(overrides))
	var events []Event
	for _, comp := range overrides {
		ev, ok := parseEvent(comp)
		if !ok {
			continue
		}
		recurrenceID, err := comp.Props.DateTime(ical.PropRecurrenceID, time.UTC)
		if err != nil {
			continue
		}
		ev.ID = instanceID(ev.UID, recurrenceID)
		replaced[ev.ID] = true
		if ev.overlaps(start, end) && !ev.cancelled() {
			events = append(events, ev)
		}
	}

	for _, comp := range masters {
		ev, ok := parseEvent(comp)
		if !ok {
			continue
		}

		set, err := comp.RecurrenceSet(time.UTC)
		if err != nil || set == nil {
			if ev.overlaps(start, end) && !ev.cancelled() {
				events = append(events, ev)
			}
			continue
		}

		duration := ev.End.Sub(ev.Start)
		for _, occurrence := range set.Between(start.Add(-duration), end, true) {
			instance := ev
			instance.ID = instanceID(ev.UID, occurrence)
			instance.Start = occurrence.In(ev.Start.Location())
			instance.End = instance.Start.Add(duration)
			if replaced[instance.ID] || !instance.overlaps(start, end) || instance.cancelled() {
				continue
			}
			events = append(events, instance)
		}
	}
	return events
}

func parseEvent(comp *ical.Component) (Event, bool) {
	vevent := ical.Event{Component: comp}

	startTime, err := vevent.DateTimeStart(time.UTC)
	if err != nil || startTime.IsZero() {
		return Event{}, false
	}
	endTime, err := vevent.DateTimeEnd(time.UTC)
	if err != nil || endTime.Before(startTime) {
		endTime = startTime
	}

	ev := Event{
		Start:        startTime,
		End:          endTime,
		UID:          text(comp, ical.PropUID),
		Summary:      text(comp, ical.PropSummary),
		Description:  text(comp, ical.PropDescription),
		Location:     text(comp, ical.PropLocation),
		Status:       strings.ToUpper(text(comp, ical.PropStatus)),
		Transparency: strings.ToUpper(text(comp, ical.PropTransparency)),
		BusyStatus:   strings.ToUpper(text(comp, PropMicrosoftBusyStatus)),
	}
	if p := comp.Props.Get(ical.PropDateTimeStart); p != nil && p.ValueType() == ical.ValueDate {
		ev.AllDay = true
	}
	if ev.UID == "" {
		ev.UID = startTime.Format(time.RFC3339) + "-" + ev.Summary
	}
	ev.ID = ev.UID
	return ev, true
}

func text(comp *ical.Component, name string) string {
	v, err := comp.Props.Text(name)
	if err != nil {
		if p := comp.Props.Get(name); p != nil {
			return p.Value
		}
		return ""
	}
	return v
}

func instanceID(uid string, occurrence time.Time) string {
	return uid + "/" + occurrence.UTC().Format(recurrenceIDLayout)
}

func (e Event) overlaps(start, end time.Time) bool {
	if e.End.Equal(e.Start) {
		return !e.Start.Before(start) && !e.Start.After(end)
	}
	return e.Start.Before(end) && e.End.After(start)
}

func (e Event) cancelled() bool {
	return e.Status == "CANCELLED"
}
