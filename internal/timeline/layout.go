// Package timeline positions events along a horizontal time axis and
// computes cross-reference highlighting for a selected event.
//
// Both operations are pure: they never modify the events passed in.
package timeline

import (
	"errors"

	"github.com/dmitrijs2005/timeline/internal/models"
)

// RowHeight is the vertical pitch of one row, in pixels.
const RowHeight = 27

// DefaultRange is the visible range of the original timeline.
var DefaultRange = Range{Start: -4026, End: 1914}

// ErrEmptyRange is returned for a range with no extent.
var ErrEmptyRange = errors.New("timeline range has zero length")

// Range is the visible window of the timeline in years.
type Range struct {
	Start int64
	End   int64
}

// Duration is the length of the range in years.
func (r Range) Duration() int64 {
	return r.End - r.Start
}

// Fraction maps a year to its position within the range, where 0 is the
// range start and 1 is its end. Years outside the range extrapolate.
func (r Range) Fraction(year int64) float64 {
	return float64(year-r.Start) / float64(r.Duration())
}

// Placement is the computed position of one event.
//
// Offset and Width are fractions of the range. They are not clamped: an event
// before the range has a negative offset, and an event with Finish < Start
// has a negative width. Row counts how many rows the bar is pushed down.
type Placement struct {
	Event  *models.Event
	Offset float64
	Width  float64
	Row    int
}

// Top is the pixel offset of the bar from the top of the event area.
func (p Placement) Top() int {
	return RowTop(p.Row)
}

// RowTop converts a row index to pixels.
func RowTop(row int) int {
	return row * RowHeight
}

// Layout places events in the given order.
//
// For the event at index i the row is the number of earlier events that
// either overlap it (start < prev.finish && finish > prev.start) or share its
// start year. The same-start rule fires even when the intervals do not
// overlap. Rows are never compacted once an overlap cluster ends.
func Layout(events []*models.Event, r Range) ([]Placement, error) {
	total := r.Duration()
	if total == 0 {
		return nil, ErrEmptyRange
	}

	out := make([]Placement, 0, len(events))
	for i, e := range events {
		row := 0
		for j := 0; j < i; j++ {
			prev := events[j]
			if overlaps(e, prev) || e.Start == prev.Start {
				row++
			}
		}
		out = append(out, Placement{
			Event:  e,
			Offset: float64(e.Start-r.Start) / float64(total),
			Width:  float64(e.Duration()) / float64(total),
			Row:    row,
		})
	}
	return out, nil
}

func overlaps(e, prev *models.Event) bool {
	return e.Start < prev.Finish && e.Finish > prev.Start
}

// ZeroMarker is the position of year 0 within the range. It is reported
// whether or not any event spans it.
func ZeroMarker(r Range) (float64, error) {
	if r.Duration() == 0 {
		return 0, ErrEmptyRange
	}
	return r.Fraction(0), nil
}

// Rows is the number of rows needed to draw every placement.
func Rows(ps []Placement) int {
	n := 0
	for _, p := range ps {
		if p.Row+1 > n {
			n = p.Row + 1
		}
	}
	return n
}
