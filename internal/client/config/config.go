package config

import (
	"time"

	"github.com/dmitrijs2005/timeline/internal/mapview"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

// Config holds runtime settings for the timeline CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the timeline gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RangeStart / RangeEnd: visible years of the timeline (negative = BCE).
//   - TileURL: slippy-map tile template with {s}, {z}, {x} and {y}.
//   - MapZoom: zoom level used for marker tiles.
//   - LogLevel: debug, info, warn or error; logs go to stderr.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RangeStart          int64
	RangeEnd            int64
	TileURL             string
	MapZoom             int
	LogLevel            string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RangeStart = timeline.DefaultRange.Start
	c.RangeEnd = timeline.DefaultRange.End
	c.TileURL = mapview.DefaultTileURL
	c.MapZoom = mapview.DefaultZoom
	c.LogLevel = "warn"
}

// Range returns the configured visible range.
func (c *Config) Range() timeline.Range {
	return timeline.Range{Start: c.RangeStart, End: c.RangeEnd}
}

// LoadConfig applies defaults, then the optional JSON or YAML file, then
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
