// Package mapview turns located events into map markers and slippy-map tile
// addresses, and describes the image overlay shown for a single event.
package mapview

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/timeline/internal/models"
)

const (
	// DefaultTileURL is the OpenStreetMap tile server template.
	DefaultTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	// DefaultZoom is the zoom level of the original map view.
	DefaultZoom = 4
	// MaxZoom is the deepest zoom served by OSM.
	MaxZoom = 19

	// maximum latitude representable in Web Mercator
	maxLatitude = 85.0511287798
)

var subdomains = []string{"a", "b", "c"}

// ErrNoLocation is returned for an event without both coordinates.
var ErrNoLocation = errors.New("event has no location")

// ErrInvalidZoom is returned for a zoom level outside 0..MaxZoom.
var ErrInvalidZoom = errors.New("invalid zoom level")

// Bounds is a latitude/longitude rectangle given by its south-west and
// north-east corners.
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

// OverlayBounds is where a single event's map image is pinned.
var OverlayBounds = Bounds{South: 22.5, West: 15.3, North: 50, East: 50}

// Marker is one event pinned on the map.
type Marker struct {
	EventID   string
	Name      string
	Latitude  float64
	Longitude float64
	Popup     string
}

// Markers returns a marker for every event with both coordinates. Events
// missing either one are skipped.
func Markers(events []*models.Event) []Marker {
	var out []Marker
	for _, e := range events {
		if !e.HasLocation() {
			continue
		}
		out = append(out, Marker{
			EventID:   e.ID,
			Name:      e.Name,
			Latitude:  *e.Latitude,
			Longitude: *e.Longitude,
			Popup:     popup(e),
		})
	}
	return out
}

func popup(e *models.Event) string {
	var b strings.Builder
	b.WriteString(e.Name)
	if e.Place != "" {
		b.WriteString("\n")
		b.WriteString(e.Place)
	}
	if e.Meaning != "" {
		b.WriteString("\n")
		b.WriteString(e.Meaning)
	}
	return b.String()
}

// Tile is a slippy-map tile address.
type Tile struct {
	Z int
	X int
	Y int
}

// TileFor returns the tile containing the given point at zoom z.
func TileFor(lat, lon float64, z int) (Tile, error) {
	if z < 0 || z > MaxZoom {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidZoom, z)
	}
	lat = math.Max(-maxLatitude, math.Min(maxLatitude, lat))
	n := math.Exp2(float64(z))

	x := int(math.Floor((lon + 180) / 360 * n))
	rad := lat * math.Pi / 180
	y := int(math.Floor((1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2 * n))

	last := int(n) - 1
	return Tile{Z: z, X: clamp(x, 0, last), Y: clamp(y, 0, last)}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// URL expands a tile template. {s} rotates over the a/b/c subdomains by tile
// position so neighbouring tiles spread across servers.
func (t Tile) URL(template string) string {
	s := subdomains[(t.X+t.Y)%len(subdomains)]
	r := strings.NewReplacer(
		"{s}", s,
		"{z}", strconv.Itoa(t.Z),
		"{x}", strconv.Itoa(t.X),
		"{y}", strconv.Itoa(t.Y),
	)
	return r.Replace(template)
}

// MarkerTile returns the tile URL showing m at zoom z.
func MarkerTile(m Marker, template string, z int) (string, error) {
	t, err := TileFor(m.Latitude, m.Longitude, z)
	if err != nil {
		return "", err
	}
	return t.URL(template), nil
}

// Overlay is the single-event map view: the event's image pinned over
// OverlayBounds, centered on the event when it has a location.
type Overlay struct {
	EventID  string
	ImageURL string
	Bounds   Bounds
	Center   *Marker
}

// OverlayFor builds the overlay of e. Events without a map link have none.
func OverlayFor(e *models.Event) (Overlay, bool) {
	if e == nil || e.MapLink == "" {
		return Overlay{}, false
	}
	o := Overlay{EventID: e.ID, ImageURL: e.MapLink, Bounds: OverlayBounds}
	if e.HasLocation() {
		m := Markers([]*models.Event{e})[0]
		o.Center = &m
	}
	return o, true
}
