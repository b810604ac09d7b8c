package timeline

import "github.com/dmitrijs2005/timeline/internal/models"

// HighlightColor marks the selected event and everything it references.
const HighlightColor = "orange"

// NameIndex resolves reference names to event ids. When several events share
// a name the first one in collection order wins.
type NameIndex map[string]string

// NewNameIndex indexes events by name.
func NewNameIndex(events []*models.Event) NameIndex {
	idx := make(NameIndex, len(events))
	for _, e := range events {
		if _, ok := idx[e.Name]; !ok {
			idx[e.Name] = e.ID
		}
	}
	return idx
}

// Resolve returns the id of the event named name.
func (idx NameIndex) Resolve(name string) (string, bool) {
	id, ok := idx[name]
	return id, ok
}

// Highlight returns a copy of events colored for the selection of selectedID.
//
// Every event reverts to its OriginalColor. If the selected event has
// references, it and every event whose name exactly matches one of them get
// HighlightColor. Unknown names and an unknown selectedID are ignored.
func Highlight(events []*models.Event, selectedID string) []*models.Event {
	out := models.CloneEvents(events)
	for _, e := range out {
		e.Color = e.OriginalColor
	}

	var selected *models.Event
	for _, e := range out {
		if e.ID == selectedID {
			selected = e
			break
		}
	}
	if selected == nil || len(selected.References) == 0 {
		return out
	}

	marked := map[string]struct{}{selected.ID: {}}
	idx := NewNameIndex(out)
	for _, ref := range selected.References {
		if id, ok := idx.Resolve(ref); ok {
			marked[id] = struct{}{}
		}
	}

	for _, e := range out {
		if _, ok := marked[e.ID]; ok {
			e.Color = HighlightColor
		}
	}
	return out
}

// Referenced returns the events that sel's references resolve to, in
// reference order. Unresolved names are skipped.
func Referenced(events []*models.Event, sel *models.Event) []*models.Event {
	byID := make(map[string]*models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	idx := NewNameIndex(events)

	var out []*models.Event
	for _, ref := range sel.References {
		if id, ok := idx.Resolve(ref); ok {
			out = append(out, byID[id])
		}
	}
	return out
}
