package config

import (
	"github.com/dmitrijs2005/timeline/internal/filex"
	"github.com/dmitrijs2005/timeline/internal/flagx"
	"github.com/dmitrijs2005/timeline/internal/timex"
)

// FileConfig is used only for decoding the config file. Pointers tell an
// absent year apart from year 0.
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	RangeStart          *int64         `json:"range_start" yaml:"range_start"`
	RangeEnd            *int64         `json:"range_end" yaml:"range_end"`
	TileURL             string         `json:"tile_url" yaml:"tile_url"`
	MapZoom             int            `json:"map_zoom" yaml:"map_zoom"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. Panics on read
// or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := filex.Decode(path, &fc); err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.RangeStart != nil {
		cfg.RangeStart = *fc.RangeStart
	}
	if fc.RangeEnd != nil {
		cfg.RangeEnd = *fc.RangeEnd
	}
	if fc.TileURL != "" {
		cfg.TileURL = fc.TileURL
	}
	if fc.MapZoom > 0 {
		cfg.MapZoom = fc.MapZoom
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
