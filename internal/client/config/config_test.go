package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/timeline/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, timeline.Range{Start: -4026, End: 1914}, c.Range())
	assert.Equal(t, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", c.TileURL)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func Test_parseFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		p := filepath.Join(dir, "cli.yaml")
		require.NoError(t, os.WriteFile(p, []byte("server_endpoint_addr: example:1\nonline_check_interval: 10s\nrange_start: 0\nrange_end: 100\n"), 0o600))
		os.Args = []string{"testbin", "-c", p}

		var c Config
		c.LoadDefaults()
		parseFile(&c)

		assert.Equal(t, "example:1", c.ServerEndpointAddr)
		assert.Equal(t, 10*time.Second, c.OnlineCheckInterval)
		assert.Equal(t, timeline.Range{Start: 0, End: 100}, c.Range())
	})

	t.Run("json", func(t *testing.T) {
		p := filepath.Join(dir, "cli.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"tile_url":"http://tiles/{z}/{x}/{y}.png","map_zoom":7}`), 0o600))
		os.Args = []string{"testbin", "-config", p}

		var c Config
		c.LoadDefaults()
		parseFile(&c)

		assert.Equal(t, "http://tiles/{z}/{x}/{y}.png", c.TileURL)
		assert.Equal(t, 7, c.MapZoom)
		assert.Equal(t, int64(-4026), c.RangeStart)
	})

	t.Run("broken file panics", func(t *testing.T) {
		p := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(p, []byte("range_start: [oops"), 0o600))
		os.Args = []string{"testbin", "-c", p}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
