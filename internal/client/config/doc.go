// Package config loads runtime configuration for the timeline CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file given with -c or -config.
//  3. Command-line flags.
//
// Example YAML:
//
//	server_endpoint_addr: 127.0.0.1:50051
//	online_check_interval: 3s
//	range_start: -4026
//	range_end: 1914
//	tile_url: https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png
package config
