package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset selects the starting gravity speed.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = "" // Keep whatever the config file says
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a flag value to a preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return DifficultyDefault, fmt.Errorf("unknown difficulty %q (want easy, normal or hard): %w", s, ErrInvalidConfig)
}

// InitialIntervalForPreset returns the starting interval in milliseconds,
// or 0 for DifficultyDefault.
func InitialIntervalForPreset(p DifficultyPreset) int {
	switch p {
	case DifficultyEasy:
		return 700
	case DifficultyNormal:
		return 500
	case DifficultyHard:
		return 250
	default:
		return 0
	}
}

// ApplyPentrisPreset modifies the config based on a difficulty preset.
// The interval floor is never raised above the new starting interval.
func ApplyPentrisPreset(cfg *PentrisConfig, preset DifficultyPreset) {
	ms := InitialIntervalForPreset(preset)
	if ms == 0 {
		return
	}
	cfg.Speed.InitialIntervalMs = ms
	if cfg.Speed.MinIntervalMs > ms {
		cfg.Speed.MinIntervalMs = ms
	}
}
