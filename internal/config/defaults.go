package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: TetrisGrid{
			Width:  10,
			Height: 20,
		},
		FallSpeedMs: 500,
		Scoring:     []int{0, 100, 300, 500, 800},
		Randomizer:  RandomizerUniform,
		Theme: map[string]string{
			"I":     "cyan",
			"J":     "blue",
			"L":     "orange",
			"O":     "yellow",
			"S":     "green",
			"T":     "magenta",
			"Z":     "red",
			"frame": "white",
			"ghost": "gray",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_bag":
		return defaultTetrisYAML
	default:
		return nil
	}
}
