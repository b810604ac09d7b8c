package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/timeline/internal/models"
)

func ptr(f float64) *float64 { return &f }

func TestMarkers_SkipsEventsWithoutBothCoordinates(t *testing.T) {
	events := []*models.Event{
		{ID: "1", Name: "Jerusalem", Latitude: ptr(31.77), Longitude: ptr(35.21), Place: "Judea"},
		{ID: "2", Name: "Only lat", Latitude: ptr(10)},
		{ID: "3", Name: "Only lon", Longitude: ptr(10)},
		{ID: "4", Name: "Nowhere"},
	}

	got := Markers(events)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].EventID)
	assert.InDelta(t, 31.77, got[0].Latitude, 1e-9)
	assert.Equal(t, "Jerusalem\nJudea", got[0].Popup)
}

func TestTileFor(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		z        int
		want     Tile
	}{
		{name: "zoom 0", lat: 0, lon: 0, z: 0, want: Tile{Z: 0, X: 0, Y: 0}},
		{name: "origin at zoom 1", lat: 0.1, lon: 0.1, z: 1, want: Tile{Z: 1, X: 1, Y: 0}},
		{name: "london", lat: 51.5074, lon: -0.1278, z: 10, want: Tile{Z: 10, X: 511, Y: 340}},
		{name: "pole clamps", lat: 90, lon: 180, z: 2, want: Tile{Z: 2, X: 3, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TileFor(tt.lat, tt.lon, tt.z)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TileFor(0, 0, MaxZoom+1)
	require.ErrorIs(t, err, ErrInvalidZoom)
}

func TestTile_URL(t *testing.T) {
	assert.Equal(t, "https://b.tile.openstreetmap.org/3/4/0.png", Tile{Z: 3, X: 4, Y: 0}.URL(DefaultTileURL))
	assert.Equal(t, "http://tiles/1/0/0", Tile{Z: 1}.URL("http://tiles/{z}/{x}/{y}"))
}

func TestOverlayFor(t *testing.T) {
	_, ok := OverlayFor(&models.Event{ID: "1"})
	assert.False(t, ok)

	o, ok := OverlayFor(&models.Event{ID: "1", MapLink: "http://img/1.png"})
	require.True(t, ok)
	assert.Equal(t, Bounds{South: 22.5, West: 15.3, North: 50, East: 50}, o.Bounds)
	assert.Nil(t, o.Center)

	o, ok = OverlayFor(&models.Event{ID: "2", MapLink: "http://img/2.png", Latitude: ptr(31), Longitude: ptr(35)})
	require.True(t, ok)
	require.NotNil(t, o.Center)
	assert.Equal(t, "2", o.Center.EventID)
}
