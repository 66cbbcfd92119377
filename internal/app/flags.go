package app

import (
	"flag"

	"emberlife/internal/life"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Life  life.Config
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Life: life.DefaultConfig(), Scale: 2, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "grid width in cells")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "grid height in cells")
	fs.IntVar(&c.Life.Workers, "workers", c.Life.Workers, "dispatch worker count (0 = one per CPU)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}
