package models

// Snapshot is one complete, start-ordered view of the event collection as
// pushed by the live subscription. A newer snapshot fully replaces an older
// one; consumers must treat Events as read-only.
//
// Sequence only orders snapshots within one stream. Resync marks the first
// snapshot of a (re)opened stream, whose sequence may restart after a server
// restart; it replaces whatever the consumer holds.
type Snapshot struct {
	Events   []*Event
	Sequence uint64
	Resync   bool
}

// NewSnapshot deep-copies events and orders them by start year.
func NewSnapshot(events []*Event, seq uint64) Snapshot {
	c := CloneEvents(events)
	if c == nil {
		c = []*Event{}
	}
	SortByStart(c)
	return Snapshot{Events: c, Sequence: seq}
}

// Names returns event names in snapshot order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.Events))
	for _, e := range s.Events {
		names = append(names, e.Name)
	}
	return names
}

// Find returns the event with the given id.
func (s Snapshot) Find(id string) (*Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}
