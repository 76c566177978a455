// Package config provides YAML-based game configuration loading and
// difficulty presets for Pentris.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PentrisConfig contains all tunable parameters of a game.
type PentrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Mode    string        `yaml:"mode"` // tetris, pentris or both
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines gravity timing and level progression.
type SpeedConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	IntervalStepMs    int `yaml:"interval_step_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	LinesPerLevel     int `yaml:"lines_per_level"`
}

// ScoringConfig defines the line-clear reward. A pass clearing n rows
// awards n*n*LineMultiplier points.
type ScoringConfig struct {
	LineMultiplier int `yaml:"line_multiplier"`
}

// InitialInterval returns the starting gravity interval.
func (s SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(s.InitialIntervalMs) * time.Millisecond
}

// IntervalStep returns how much the interval shrinks per level.
func (s SpeedConfig) IntervalStep() time.Duration {
	return time.Duration(s.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMs) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every value is usable by the engine.
func (c PentrisConfig) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("board width %d is below 4: %w", c.Board.Width, ErrInvalidConfig)
	case c.Board.Height < 4:
		return fmt.Errorf("board height %d is below 4: %w", c.Board.Height, ErrInvalidConfig)
	case c.Speed.InitialIntervalMs <= 0:
		return fmt.Errorf("initial interval must be positive: %w", ErrInvalidConfig)
	case c.Speed.MinIntervalMs <= 0:
		return fmt.Errorf("min interval must be positive: %w", ErrInvalidConfig)
	case c.Speed.MinIntervalMs > c.Speed.InitialIntervalMs:
		return fmt.Errorf("min interval %dms exceeds initial interval %dms: %w",
			c.Speed.MinIntervalMs, c.Speed.InitialIntervalMs, ErrInvalidConfig)
	case c.Speed.IntervalStepMs < 0:
		return fmt.Errorf("interval step must not be negative: %w", ErrInvalidConfig)
	case c.Speed.LinesPerLevel <= 0:
		return fmt.Errorf("lines per level must be positive: %w", ErrInvalidConfig)
	case c.Scoring.LineMultiplier < 0:
		return fmt.Errorf("line multiplier must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}
