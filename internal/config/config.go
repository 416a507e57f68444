package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	GridSize int    `envconfig:"GRID_SIZE" default:"16"`

	// Per-mode upstream base addresses.
	OnlineBaseURL  string `envconfig:"ONLINE_BASE_URL" default:"http://localhost:9000/colors"`
	LocallyBaseURL string `envconfig:"LOCALLY_BASE_URL" default:"http://localhost:9000/colors"`

	// MAX_IN_FLIGHT caps concurrent upstream lookups per grid fetch.
	// 0 keeps the reference behavior: all size×size calls at once.
	MaxInFlight int `envconfig:"MAX_IN_FLIGHT" default:"0"`
	// UPSTREAM_TIMEOUT of 0 means none: a hung upstream hangs the
	// whole grid fetch.
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"0"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
