// Package config holds the generator settings: the board layout shared with
// the game client and the ranges used to draw a random wall.
package config

import (
	"fmt"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/core"
)

// Config contains everything the generator needs besides a seed.
type Config struct {
	Board  core.Board   `yaml:"board"`
	Wall   WallRanges   `yaml:"wall"`
	Output OutputConfig `yaml:"output"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WallRanges bounds each wall field drawn by the random generator.
type WallRanges struct {
	Width  IntRange `yaml:"width"`
	Height IntRange `yaml:"height"`
	X      IntRange `yaml:"x"`
	Y      IntRange `yaml:"y"`
}

// OutputConfig defines where the level is written when no path is given.
type OutputConfig struct {
	Filename string `yaml:"filename"`
}

// Validate checks that every range is well formed and the wall has a size.
// Board capacity is not checked here; the generator reports it as its own error.
func (c Config) Validate() error {
	ranges := []struct {
		name string
		r    IntRange
	}{
		{"wall.width", c.Wall.Width},
		{"wall.height", c.Wall.Height},
		{"wall.x", c.Wall.X},
		{"wall.y", c.Wall.Y},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return fmt.Errorf("config: %s min %d > max %d", nr.name, nr.r.Min, nr.r.Max)
		}
	}
	if c.Wall.Width.Min <= 0 || c.Wall.Height.Min <= 0 {
		return fmt.Errorf("config: wall width and height must be positive")
	}
	if c.Board.PegSpacing <= 0 {
		return fmt.Errorf("config: board.peg_spacing must be positive, got %d", c.Board.PegSpacing)
	}
	if c.Output.Filename == "" {
		return fmt.Errorf("config: output.filename is empty")
	}
	return nil
}
