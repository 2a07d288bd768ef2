package config

// Fall speeds for the non-fixed presets, in milliseconds per row.
var presetFallSpeedMs = map[DifficultyPreset]int{
	DifficultyEasy:   800,
	DifficultyNormal: 500,
	DifficultyHard:   250,
}

// FallSpeedForPreset returns the drop interval of a preset in milliseconds.
// Returns 0 for fixed or unknown presets, which keep the configured speed.
func FallSpeedForPreset(preset DifficultyPreset) int {
	return presetFallSpeedMs[preset]
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Presets only change the fall speed; the fixed preset leaves the config as
// loaded.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	if ms := FallSpeedForPreset(preset); ms > 0 {
		cfg.FallSpeedMs = ms
	}
}
