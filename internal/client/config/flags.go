package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/timeline/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   address and port of the timeline server
//	-i int      online check interval in seconds
//	-from int   first visible year
//	-to int     last visible year
//	-tiles string  map tile URL template
//	-z int      map zoom level
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-from", "-to", "-tiles", "-z", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.Int64Var(&cfg.RangeStart, "from", cfg.RangeStart, "first visible year (negative for BCE)")
	fs.Int64Var(&cfg.RangeEnd, "to", cfg.RangeEnd, "last visible year")
	fs.StringVar(&cfg.TileURL, "tiles", cfg.TileURL, "map tile URL template")
	fs.IntVar(&cfg.MapZoom, "z", cfg.MapZoom, "map zoom level")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
