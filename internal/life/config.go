package life

import (
	"fmt"
	"strconv"
)

// maxAxis is the largest supported grid edge. Coordinates are packed into
// 16 bits each when forming hash keys, so larger grids would alias keys and
// break seed determinism.
const maxAxis = 1 << 16

// Config controls the simulation dimensions and dispatch parallelism.
type Config struct {
	Width  int
	Height int

	// Workers bounds the dispatch goroutine pool; 0 means one per CPU.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 400,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Validate reports whether the configuration describes a runnable grid.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("grid %dx%d: both dimensions must be at least 1", c.Width, c.Height)
	}
	if c.Width > maxAxis || c.Height > maxAxis {
		return fmt.Errorf("grid %dx%d: dimensions may not exceed %d (coordinate hash keys use 16 bits per axis)", c.Width, c.Height, maxAxis)
	}
	return nil
}
