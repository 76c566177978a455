package pentris

import "time"

// Status is the engine's lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusPaused
	StatusLost
)

// String returns the status text shown to the player.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// GameState holds the counters that reset together when a game starts.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	Interval time.Duration // Current gravity interval
	Elapsed  time.Duration // Play time, advanced by the interval on every tick
	Status   Status
}

// TickResult describes what a single tick did.
type TickResult struct {
	Moved   bool      // The falling piece stepped down
	Locked  bool      // The falling piece could not step down and was locked
	Cleared int       // Rows cleared before spawning
	Spawned PieceType // Type spawned this tick, NoType if none
	Lost    bool      // The tick ended the game
}
