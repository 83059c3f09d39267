package config

import (
	_ "embed"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/core"
)

//go:embed defaults/levelgen.yaml
var defaultYAML []byte

// DefaultFilename is written to when the caller names no destination.
const DefaultFilename = "level.bin"

// Default returns the generator configuration matching the game client.
func Default() Config {
	return Config{
		Board: core.DefaultBoard(),
		Wall: WallRanges{
			Width:  IntRange{Min: 4, Max: 12},
			Height: IntRange{Min: 15, Max: 35},
			X:      IntRange{Min: 30, Max: 90},
			Y:      IntRange{Min: 5, Max: 20},
		},
		Output: OutputConfig{
			Filename: DefaultFilename,
		},
	}
}
