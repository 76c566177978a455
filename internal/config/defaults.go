package config

import (
	_ "embed"
)

//go:embed defaults/pentris.yaml
var defaultPentrisYAML []byte

// DefaultPentrisConfig returns the default Pentris configuration.
func DefaultPentrisConfig() PentrisConfig {
	return PentrisConfig{
		Board: BoardConfig{
			Width:  12,
			Height: 25,
		},
		Speed: SpeedConfig{
			InitialIntervalMs: 500,
			IntervalStepMs:    10,
			MinIntervalMs:     50,
			LinesPerLevel:     10,
		},
		Scoring: ScoringConfig{
			LineMultiplier: 10,
		},
		Mode: "both",
	}
}
