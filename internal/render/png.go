package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/chromedp/chromedp"

	"github.com/dmitrijs2005/timeline/internal/timeline"
)

// rasterize screenshots an SVG document in headless Chrome. Tests replace it.
var rasterize = func(ctx context.Context, svg []byte) ([]byte, error) {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	if err := chromedp.Run(cctx, tasks); err != nil {
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}
	return buf, nil
}

// ErrEmptyImage is returned when the browser produced no pixels.
var ErrEmptyImage = errors.New("screenshot buffer is empty")

// PNG renders the timeline to SVG and rasterises it with headless Chrome.
func PNG(ctx context.Context, w io.Writer, ps []timeline.Placement, r timeline.Range, o SVGOptions) error {
	var svg bytes.Buffer
	if err := SVG(&svg, ps, r, o); err != nil {
		return fmt.Errorf("failed to generate intermediate SVG: %w", err)
	}

	img, err := rasterize(ctx, svg.Bytes())
	if err != nil {
		return err
	}
	if len(img) == 0 {
		return ErrEmptyImage
	}

	_, err = w.Write(img)
	return err
}
