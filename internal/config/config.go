// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"fmt"
	"time"
)

// Randomizer names accepted in the config file.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Grid        TetrisGrid        `yaml:"grid"`
	FallSpeedMs int               `yaml:"fall_speed_ms"`
	Scoring     []int             `yaml:"scoring"`
	Randomizer  string            `yaml:"randomizer"`
	Theme       map[string]string `yaml:"theme"`
}

// TetrisGrid defines the well dimensions in cells.
type TetrisGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FallSpeed returns the configured drop interval.
func (c TetrisConfig) FallSpeed() time.Duration {
	return time.Duration(c.FallSpeedMs) * time.Millisecond
}

// Validate checks the fields the engine does not own. Grid size, fall
// speed and the score table are validated when the engine is built.
func (c TetrisConfig) Validate() error {
	switch c.Randomizer {
	case "", RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("config: unknown randomizer %q (want %q or %q)", c.Randomizer, RandomizerUniform, RandomizerBag)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset keeps the configured fall speed.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}
