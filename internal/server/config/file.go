package config

import (
	"github.com/dmitrijs2005/timeline/internal/filex"
	"github.com/dmitrijs2005/timeline/internal/flagx"
	"github.com/dmitrijs2005/timeline/internal/timex"
)

// FileConfig mirrors Config for decoding JSON and YAML config files.
// Durations accept "15m"-style strings or integer nanoseconds.
type FileConfig struct {
	EndpointAddrGRPC   string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN        string         `json:"database_dsn" yaml:"database_dsn"`
	MetricsAddr        string         `json:"metrics_addr" yaml:"metrics_addr"`
	LogLevel           string         `json:"log_level" yaml:"log_level"`
	S3RootUser         string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword     string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket           string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region           string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	OverlayURLValidity timex.Duration `json:"overlay_url_validity" yaml:"overlay_url_validity"`
	OverlayPublicURL   string         `json:"overlay_public_url" yaml:"overlay_public_url"`
}

// parseFile overlays values from the file named by -c/-config. Keys missing
// from the file leave the current value alone. An unreadable or malformed
// file panics, like a bad flag.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	c := &FileConfig{}
	if err := filex.Decode(path, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.OverlayPublicURL, c.OverlayPublicURL)
	if c.OverlayURLValidity.Duration > 0 {
		config.OverlayURLValidity = c.OverlayURLValidity.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
