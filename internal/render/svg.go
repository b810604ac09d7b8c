package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"

	"github.com/dmitrijs2005/timeline/internal/timeline"
)

// SVGOptions controls the exported drawing.
type SVGOptions struct {
	Width      float64
	Margin     float64
	FontFamily string
	FontSize   float64
	Background string
	AxisColor  string
}

// DefaultSVGOptions matches the proportions of the web view.
var DefaultSVGOptions = SVGOptions{
	Width:      1600,
	Margin:     40,
	FontFamily: "Arial, sans-serif",
	FontSize:   12,
	Background: "#ffffff",
	AxisColor:  "#333333",
}

const (
	axisHeight = 30
	barGap     = 4
)

// SVG writes the placements as a standalone SVG document: an axis with year
// labels, a zero marker, and one colored bar with a label per event.
func SVG(w io.Writer, ps []timeline.Placement, r timeline.Range, o SVGOptions) error {
	zero, err := timeline.ZeroMarker(r)
	if err != nil {
		return err
	}

	inner := o.Width - 2*o.Margin
	x := func(frac float64) float64 { return o.Margin + frac*inner }
	rows := timeline.Rows(ps)
	height := 2*o.Margin + axisHeight + float64(timeline.RowTop(rows))

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">`, o.Width, height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(o.Background))
	fmt.Fprintf(&b, `  <g font-family="%s" font-size="%.0f">`+"\n", escapeXML(o.FontFamily), o.FontSize)

	axisY := o.Margin + axisHeight - 8
	fmt.Fprintf(&b, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
		x(0), axisY, x(1), axisY, escapeXML(o.AxisColor))

	for _, year := range YearTicks(r, 10) {
		tx := x(r.Fraction(year))
		fmt.Fprintf(&b, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
			tx, axisY-4, tx, axisY+4, escapeXML(o.AxisColor))
		fmt.Fprintf(&b, `    <text x="%.2f" y="%.2f" text-anchor="middle">%s</text>`+"\n",
			tx, axisY-8, escapeXML(YearLabel(year)))
	}

	if zero >= 0 && zero <= 1 {
		zx := x(zero)
		fmt.Fprintf(&b, `    <line class="zero" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="red" stroke-dasharray="4 2"/>`+"\n",
			zx, axisY, zx, height-o.Margin)
	}

	top := o.Margin + axisHeight
	for _, p := range ps {
		start, width := p.Offset, p.Width
		if width < 0 {
			start, width = start+width, -width
		}
		bx := x(start)
		bw := math.Max(width*inner, 1)
		by := top + float64(p.Top())
		fmt.Fprintf(&b, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%d" fill="%s"><title>%s</title></rect>`+"\n",
			bx, by, bw, timeline.RowHeight-barGap, escapeXML(p.Event.Color), escapeXML(p.Event.Name))
		fmt.Fprintf(&b, `    <text x="%.2f" y="%.2f">%s</text>`+"\n",
			bx+2, by+float64(timeline.RowHeight-barGap)/2+o.FontSize/3, escapeXML(p.Event.Name))
	}

	b.WriteString("  </g>\n</svg>\n")
	_, err = w.Write(b.Bytes())
	return err
}

// YearTicks picks round years for about n labels across r.
func YearTicks(r timeline.Range, n int) []int64 {
	span := r.Duration()
	if span < 0 {
		span = -span
	}
	if span == 0 || n <= 0 {
		return nil
	}
	step := niceStep(float64(span) / float64(n))

	lo, hi := min(r.Start, r.End), max(r.Start, r.End)
	first := int64(math.Ceil(float64(lo)/float64(step))) * step

	var out []int64
	for y := first; y <= hi; y += step {
		out = append(out, y)
	}
	return out
}

func niceStep(raw float64) int64 {
	if raw < 1 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return int64(m * mag)
		}
	}
	return int64(10 * mag)
}

// YearLabel formats a signed year the way the timeline axis shows it.
func YearLabel(year int64) string {
	if year < 0 {
		return fmt.Sprintf("%d BC", -year)
	}
	return fmt.Sprintf("%d", year)
}

func escapeXML(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
