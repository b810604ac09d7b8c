package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

func layout(t *testing.T, r timeline.Range, events ...*models.Event) []timeline.Placement {
	t.Helper()
	ps, err := timeline.Layout(events, r)
	require.NoError(t, err)
	return ps
}

func TestASCII(t *testing.T) {
	r := timeline.Range{Start: 0, End: 100}
	ps := layout(t, r,
		&models.Event{ID: "1", Name: "A", Start: 0, Finish: 50, Color: "#aaaaaa"},
		&models.Event{ID: "2", Name: "B", Start: 50, Finish: 100, Color: timeline.HighlightColor},
	)

	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, ps, r, labelWidth+2+20))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0", lines[0])
	assert.Equal(t, "|0-------------------| 100", lines[1])
	assert.Equal(t, "|==========          | A 0..50", lines[2])
	assert.Equal(t, "|          ##########| B 50..100", lines[3])
}

func TestASCII_OutOfRangeAndEmptyRange(t *testing.T) {
	r := timeline.Range{Start: 0, End: 100}
	ps := layout(t, r, &models.Event{ID: "1", Name: "Early", Start: -500, Finish: -400})

	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, ps, r, 0))
	assert.Contains(t, buf.String(), "|=         | Early -500..-400")

	err := ASCII(&buf, nil, timeline.Range{Start: 1, End: 1}, 80)
	require.ErrorIs(t, err, timeline.ErrEmptyRange)
}

func TestSVG(t *testing.T) {
	r := timeline.Range{Start: -100, End: 100}
	ps := layout(t, r,
		&models.Event{ID: "1", Name: "Exodus <1>", Start: -50, Finish: 0, Color: "#123456"},
		&models.Event{ID: "2", Name: "B", Start: -50, Finish: 10, Color: "#654321"},
	)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, ps, r, DefaultSVGOptions))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg width="1600"`))
	assert.Contains(t, out, `fill="#123456"`)
	assert.Contains(t, out, "Exodus &lt;1&gt;")
	assert.Contains(t, out, `class="zero" x1="800.00"`)
	assert.Contains(t, out, ">60 BC<")
	assert.Equal(t, 2, strings.Count(out, "<title>"))

	require.ErrorIs(t, SVG(&buf, ps, timeline.Range{}, DefaultSVGOptions), timeline.ErrEmptyRange)
}

func TestYearTicks(t *testing.T) {
	assert.Equal(t, []int64{-4000, -3000, -2000, -1000, 0, 1000}, YearTicks(timeline.DefaultRange, 10))
	assert.Equal(t, []int64{0, 2, 4, 6, 8, 10}, YearTicks(timeline.Range{Start: 0, End: 10}, 5))
	assert.Nil(t, YearTicks(timeline.Range{Start: 3, End: 3}, 10))
}

func TestYearLabel(t *testing.T) {
	assert.Equal(t, "586 BC", YearLabel(-586))
	assert.Equal(t, "0", YearLabel(0))
	assert.Equal(t, "70", YearLabel(70))
}

func TestPNG(t *testing.T) {
	orig := rasterize
	t.Cleanup(func() { rasterize = orig })

	r := timeline.Range{Start: 0, End: 10}
	ps := layout(t, r, &models.Event{ID: "1", Name: "A", Start: 1, Finish: 2, Color: "#000000"})

	t.Run("ok", func(t *testing.T) {
		var gotSVG []byte
		rasterize = func(_ context.Context, svg []byte) ([]byte, error) {
			gotSVG = svg
			return []byte("\x89PNG"), nil
		}
		var buf bytes.Buffer
		require.NoError(t, PNG(context.Background(), &buf, ps, r, DefaultSVGOptions))
		assert.Equal(t, "\x89PNG", buf.String())
		assert.Contains(t, string(gotSVG), "<svg")
	})

	t.Run("empty image", func(t *testing.T) {
		rasterize = func(context.Context, []byte) ([]byte, error) { return nil, nil }
		err := PNG(context.Background(), &bytes.Buffer{}, ps, r, DefaultSVGOptions)
		require.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("browser error", func(t *testing.T) {
		boom := errors.New("no chrome")
		rasterize = func(context.Context, []byte) ([]byte, error) { return nil, boom }
		err := PNG(context.Background(), &bytes.Buffer{}, ps, r, DefaultSVGOptions)
		require.ErrorIs(t, err, boom)
	})
}
