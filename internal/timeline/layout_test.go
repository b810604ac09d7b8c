package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/timeline/internal/models"
)

func ev(id string, start, finish int64) *models.Event {
	return &models.Event{ID: id, Name: id, Start: start, Finish: finish}
}

func rows(t *testing.T, events []*models.Event) []int {
	t.Helper()
	ps, err := Layout(events, DefaultRange)
	require.NoError(t, err)
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Row
	}
	return out
}

func TestLayout_Scenario(t *testing.T) {
	a := ev("A", -100, -50)
	b := ev("B", -80, -20)

	ps, err := Layout([]*models.Event{a, b}, Range{Start: -200, End: 0})
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, 0, ps[0].Row)
	assert.InDelta(t, 0.50, ps[0].Offset, 1e-12)
	assert.InDelta(t, 0.25, ps[0].Width, 1e-12)

	assert.Equal(t, 1, ps[1].Row)
	assert.InDelta(t, 0.60, ps[1].Offset, 1e-12)
	assert.InDelta(t, 0.30, ps[1].Width, 1e-12)
	assert.Equal(t, RowHeight, ps[1].Top())
}

func TestLayout_DisjointEventsShareRowZero(t *testing.T) {
	events := []*models.Event{
		ev("a", -1000, -900),
		ev("b", -900, -800), // touching end points do not overlap
		ev("c", -500, -100),
		ev("d", 0, 30),
	}
	assert.Equal(t, []int{0, 0, 0, 0}, rows(t, events))
}

func TestLayout_OverlapPushesLaterEventDown(t *testing.T) {
	events := []*models.Event{ev("a", 0, 100), ev("b", 50, 150)}
	r := rows(t, events)
	assert.Greater(t, r[1], r[0])
}

func TestLayout_SameStartForcesNewRowWithoutOverlap(t *testing.T) {
	// b is a zero-length event at a's start, so the intervals do not overlap,
	// yet the shared start still pushes b down.
	events := []*models.Event{ev("a", 10, 20), ev("b", 10, 10)}
	require.False(t, overlaps(events[1], events[0]))
	r := rows(t, events)
	assert.Greater(t, r[1], r[0])
}

func TestLayout_CountsEveryConflictAndNeverCompacts(t *testing.T) {
	events := []*models.Event{
		ev("a", 0, 100),
		ev("b", 10, 110),  // overlaps a
		ev("c", 20, 120),  // overlaps a, b
		ev("d", 500, 600), // free again, back on row 0
		ev("e", 50, 550),  // overlaps a, b, c, d
	}
	assert.Equal(t, []int{0, 1, 2, 0, 4}, rows(t, events))
}

func TestLayout_OrderDependent(t *testing.T) {
	a, b := ev("a", 0, 100), ev("b", 50, 150)
	assert.Equal(t, []int{0, 1}, rows(t, []*models.Event{a, b}))
	assert.Equal(t, []int{0, 1}, rows(t, []*models.Event{b, a}))

	ps, err := Layout([]*models.Event{b, a}, DefaultRange)
	require.NoError(t, err)
	assert.Same(t, b, ps[0].Event)
}

func TestLayout_NoClampingOutsideRange(t *testing.T) {
	r := Range{Start: 0, End: 100}
	events := []*models.Event{
		ev("before", -50, -10),
		ev("after", 150, 400),
		ev("inverted", 80, 60),
	}
	ps, err := Layout(events, r)
	require.NoError(t, err)

	assert.InDelta(t, -0.5, ps[0].Offset, 1e-12)
	assert.InDelta(t, 0.4, ps[0].Width, 1e-12)
	assert.InDelta(t, 1.5, ps[1].Offset, 1e-12)
	assert.InDelta(t, 2.5, ps[1].Width, 1e-12)
	assert.InDelta(t, 0.8, ps[2].Offset, 1e-12)
	assert.InDelta(t, -0.2, ps[2].Width, 1e-12)
}

func TestLayout_ExactFormula(t *testing.T) {
	r := DefaultRange
	total := float64(r.End - r.Start)
	events := []*models.Event{ev("x", -1446, -1406), ev("y", 30, 33), ev("z", -5000, 2500)}
	ps, err := Layout(events, r)
	require.NoError(t, err)
	for i, e := range events {
		assert.Equal(t, float64(e.Start-r.Start)/total, ps[i].Offset)
		assert.Equal(t, float64(e.Finish-e.Start)/total, ps[i].Width)
	}
}

func TestLayout_EmptyInputAndRange(t *testing.T) {
	ps, err := Layout(nil, DefaultRange)
	require.NoError(t, err)
	assert.Empty(t, ps)
	assert.Equal(t, 0, Rows(ps))

	_, err = Layout([]*models.Event{ev("a", 1, 2)}, Range{Start: 5, End: 5})
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestZeroMarker(t *testing.T) {
	z, err := ZeroMarker(Range{Start: -200, End: 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, z)

	z, err = ZeroMarker(Range{Start: 100, End: 200})
	require.NoError(t, err)
	assert.Equal(t, -1.0, z)

	_, err = ZeroMarker(Range{})
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestRows(t *testing.T) {
	ps := []Placement{{Row: 0}, {Row: 3}, {Row: 1}}
	assert.Equal(t, 4, Rows(ps))
}
