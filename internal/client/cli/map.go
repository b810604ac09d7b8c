package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timeline/internal/mapview"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/netx"
)

// Map lists a marker per located event. With an argument it shows the
// overlay of that one event instead.
func (a *App) Map(ctx context.Context, args []string) error {
	if key := joinArgs(args); key != "" {
		return a.showOverlay(ctx, key)
	}

	markers := mapview.Markers(a.view.Events())
	if len(markers) == 0 {
		a.printf("No events with a location\n")
		return nil
	}
	for _, m := range markers {
		tile, err := mapview.MarkerTile(m, a.config.TileURL, a.config.MapZoom)
		if err != nil {
			return err
		}
		a.printf("%-30s %9.4f %9.4f  %s\n", m.Name, m.Latitude, m.Longitude, tile)
	}
	return nil
}

func (a *App) showOverlay(ctx context.Context, key string) error {
	e, err := a.lookup(ctx, key)
	if err != nil {
		return err
	}
	o, ok := mapview.OverlayFor(e)
	if !ok {
		a.printf("%q has no map image\n", e.Name)
		return nil
	}
	a.printf("Image:  %s\n", o.ImageURL)
	a.printf("Bounds: [[%g,%g],[%g,%g]]\n", o.Bounds.South, o.Bounds.West, o.Bounds.North, o.Bounds.East)
	if o.Center != nil {
		a.printf("Center: %g, %g\n", o.Center.Latitude, o.Center.Longitude)
	}
	return nil
}

// Overlay uploads an image and stores its URL as the event's map link.
func (a *App) Overlay(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage("overlay <id|name> <image file>")
	}
	key, path := joinArgs(args[:len(args)-1]), args[len(args)-1]

	e, err := a.lookup(ctx, key)
	if err != nil {
		return err
	}
	url, err := a.uploadOverlay(ctx, path)
	if err != nil {
		return err
	}

	e.MapLink = url
	if _, err := a.gateway.UpdateEvent(ctx, e.ID, e, []string{models.FieldMapLink}); err != nil {
		return err
	}
	a.printf("Map image of %q updated\n", e.Name)
	return nil
}

// uploadOverlay sends a local image to storage and returns its public URL.
func (a *App) uploadOverlay(ctx context.Context, path string) (string, error) {
	data, contentType, err := netx.ReadImage(path)
	if err != nil {
		return "", err
	}
	up, err := a.gateway.GetOverlayUploadURL(ctx, contentType)
	if err != nil {
		return "", err
	}
	if err := netx.UploadToPresignedURL(ctx, up.UploadURL, contentType, data); err != nil {
		return "", fmt.Errorf("overlay upload: %w", err)
	}
	a.logger.Info(ctx, "overlay uploaded", "key", up.Key, "size", len(data))
	return up.ImageURL, nil
}
