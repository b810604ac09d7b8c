// Package view holds the client-side state of the timeline screen: the latest
// snapshot pushed by the server and the current selection.
package view

import (
	"sync"

	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

// Timeline is safe for concurrent use by the subscription callback and the
// REPL.
type Timeline struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
	selected string
	rng      timeline.Range
}

// NewTimeline returns an empty view over the given range.
func NewTimeline(r timeline.Range) *Timeline {
	return &Timeline{rng: r}
}

// Apply replaces the current snapshot. Within one stream, snapshots older
// than the current one are ignored; a Resync snapshot is always taken. It
// reports whether s was taken.
func (t *Timeline) Apply(s *models.Snapshot) bool {
	if s == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snapshot != nil && !s.Resync && s.Sequence != 0 && s.Sequence < t.snapshot.Sequence {
		return false
	}
	t.snapshot = s
	return true
}

// Loaded reports whether any snapshot has arrived.
func (t *Timeline) Loaded() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot != nil
}

// Events returns a copy of the events of the current snapshot, colored for
// the current selection.
func (t *Timeline) Events() []*models.Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.snapshot == nil {
		return nil
	}
	return timeline.Highlight(t.snapshot.Events, t.selected)
}

// Select makes id the current selection and returns the recolored events.
// An empty id clears the selection.
func (t *Timeline) Select(id string) []*models.Event {
	t.mu.Lock()
	t.selected = id
	t.mu.Unlock()
	return t.Events()
}

// Selected returns the selected event, if it is in the current snapshot.
func (t *Timeline) Selected() (*models.Event, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.snapshot == nil || t.selected == "" {
		return nil, false
	}
	e, ok := t.snapshot.Find(t.selected)
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Find looks up an event in the current snapshot by id or, failing that, by
// exact name.
func (t *Timeline) Find(key string) (*models.Event, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.snapshot == nil {
		return nil, false
	}
	if e, ok := t.snapshot.Find(key); ok {
		return e.Clone(), true
	}
	if id, ok := timeline.NewNameIndex(t.snapshot.Events).Resolve(key); ok {
		e, _ := t.snapshot.Find(id)
		return e.Clone(), true
	}
	return nil, false
}

// Names lists event names of the current snapshot.
func (t *Timeline) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.snapshot == nil {
		return nil
	}
	return t.snapshot.Names()
}

// Range returns the visible range.
func (t *Timeline) Range() timeline.Range {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rng
}

// SetRange changes the visible range. Empty ranges are rejected.
func (t *Timeline) SetRange(r timeline.Range) error {
	if r.Duration() == 0 {
		return timeline.ErrEmptyRange
	}
	t.mu.Lock()
	t.rng = r
	t.mu.Unlock()
	return nil
}

// Placements lays out the highlighted events over the visible range.
func (t *Timeline) Placements() ([]timeline.Placement, error) {
	events := t.Events()
	return timeline.Layout(events, t.Range())
}
