// Package models defines the event record shared by the store, the layout
// engine and every view.
package models

import (
	"fmt"
	"slices"
	"strings"
)

// EventType tags an event with one of a fixed set of categories.
type EventType string

const (
	EventTypeProphet    EventType = "prophet"
	EventTypeCity       EventType = "city"
	EventTypeOccurrence EventType = "occurrence"
	EventTypeKingdom    EventType = "kingdom"
	EventTypeCharacter  EventType = "character"
	EventTypeProphecy   EventType = "prophecy"
)

// DefaultEventType is preselected by the editor form.
const DefaultEventType = EventTypeProphet

// EventTypes lists the accepted tags in display order.
var EventTypes = []EventType{
	EventTypeProphet,
	EventTypeCity,
	EventTypeOccurrence,
	EventTypeKingdom,
	EventTypeCharacter,
	EventTypeProphecy,
}

// legacy tags found in data sets exported from the Portuguese web editor
var eventTypeAliases = map[string]EventType{
	"profeta":       EventTypeProphet,
	"cidade":        EventTypeCity,
	"acontecimento": EventTypeOccurrence,
	"reino":         EventTypeKingdom,
	"personagem":    EventTypeCharacter,
	"profecia":      EventTypeProphecy,
}

// ParseEventType maps user input (case-insensitive, English or legacy
// Portuguese tag) to an EventType.
func ParseEventType(s string) (EventType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, t := range EventTypes {
		if string(t) == v {
			return t, nil
		}
	}
	if t, ok := eventTypeAliases[v]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Valid reports whether t is one of EventTypes.
func (t EventType) Valid() bool {
	return slices.Contains(EventTypes, t)
}

// Event is the only persisted entity: a named time span with optional
// location, narrative metadata and name-based cross references.
type Event struct {
	ID             string    `json:"id" yaml:"id,omitempty"`
	Name           string    `json:"name" yaml:"name"`
	Start          int64     `json:"start" yaml:"start"`
	Finish         int64     `json:"finish" yaml:"finish"`
	Color          string    `json:"color" yaml:"color,omitempty"`
	OriginalColor  string    `json:"original_color" yaml:"original_color,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Meaning        string    `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	BibleText      string    `json:"bible_text,omitempty" yaml:"bible_text,omitempty"`
	Place          string    `json:"place,omitempty" yaml:"place,omitempty"`
	AdditionalInfo string    `json:"additional_info,omitempty" yaml:"additional_info,omitempty"`
	References     []string  `json:"references,omitempty" yaml:"references,omitempty"`
	MapLink        string    `json:"map_link,omitempty" yaml:"map_link,omitempty"`
	EventType      EventType `json:"event_type" yaml:"event_type"`
}

// Duration is always derived from Start and Finish, so it can never drift
// from them after an edit. It is negative when Finish precedes Start.
func (e *Event) Duration() int64 {
	return e.Finish - e.Start
}

// HasLocation reports whether both coordinates are set.
func (e *Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Clone returns a deep copy of e.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	c.References = slices.Clone(e.References)
	if e.Latitude != nil {
		lat := *e.Latitude
		c.Latitude = &lat
	}
	if e.Longitude != nil {
		lon := *e.Longitude
		c.Longitude = &lon
	}
	return &c
}

func (e Event) String() string {
	return fmt.Sprintf("%s [%s] %d..%d (%s)", e.Name, e.ID, e.Start, e.Finish, e.EventType)
}

// CloneEvents deep-copies a collection.
func CloneEvents(events []*Event) []*Event {
	if events == nil {
		return nil
	}
	out := make([]*Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

// SortByStart orders events by start year. The sort is stable so that events
// sharing a start keep their store order.
func SortByStart(events []*Event) {
	slices.SortStableFunc(events, func(a, b *Event) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})
}
