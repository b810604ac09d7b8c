// Package render draws a laid-out timeline for the terminal and exports it
// as SVG or PNG.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/timeline/internal/timeline"
)

const (
	defaultWidth = 80
	minBarWidth  = 10
	labelWidth   = 28

	barGlyph       = '='
	highlightGlyph = '#'
)

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// ASCII writes one line per placement: a bar scaled into the available width
// followed by the event label. Highlighted events are drawn with '#'. The
// header marks year 0 when it falls inside the range.
func ASCII(w io.Writer, ps []timeline.Placement, r timeline.Range, width int) error {
	zero, err := timeline.ZeroMarker(r)
	if err != nil {
		return err
	}

	cols := width - labelWidth - 2
	if cols < minBarWidth {
		cols = minBarWidth
	}

	header := []rune(strings.Repeat("-", cols))
	if zc, ok := column(zero, cols); ok {
		header[zc] = '0'
	}
	if _, err := fmt.Fprintf(w, "%d\n|%s| %d\n", r.Start, string(header), r.End); err != nil {
		return err
	}

	for _, p := range ps {
		line := []rune(strings.Repeat(" ", cols))
		glyph := barGlyph
		if p.Event.Color == timeline.HighlightColor {
			glyph = highlightGlyph
		}

		from, to := barColumns(p, cols)
		for i := from; i <= to; i++ {
			line[i] = glyph
		}

		label := fmt.Sprintf("%s %d..%d", p.Event.Name, p.Event.Start, p.Event.Finish)
		if _, err := fmt.Fprintf(w, "|%s| %s\n", string(line), truncate(label, labelWidth)); err != nil {
			return err
		}
	}
	return nil
}

func column(frac float64, cols int) (int, bool) {
	if frac < 0 || frac > 1 {
		return 0, false
	}
	c := int(math.Floor(frac * float64(cols)))
	if c == cols {
		c--
	}
	return c, true
}

// barColumns clips the bar to the visible columns. Bars entirely outside the
// range collapse onto the nearest edge so they stay visible.
func barColumns(p timeline.Placement, cols int) (int, int) {
	start, end := p.Offset, p.Offset+p.Width
	if end < start {
		start, end = end, start
	}
	from := int(math.Floor(start * float64(cols)))
	to := int(math.Ceil(end*float64(cols))) - 1
	if to < from {
		to = from
	}
	from = max(0, min(from, cols-1))
	to = max(0, min(to, cols-1))
	return from, to
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
