package pentris

import (
	"time"

	"github.com/vovakirdan/tui-pentris/internal/core"
)

// Snapshot is an immutable copy of the engine state for rendering and tests.
// Nothing in it aliases engine memory.
type Snapshot struct {
	Tick       uint64
	Width      int
	Height     int
	Board      [][]core.Color // [row][col], falling piece included
	Piece      PieceType      // NoType between lock and spawn
	PieceCells []core.Point
	Score      int
	Lines      int
	Level      int
	Interval   time.Duration
	Elapsed    time.Duration
	Status     Status
	Set        PieceSet
	Stats      map[PieceType]int // Spawn counts for the active set
}

// Snapshot copies the current engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     e.tick,
		Width:    e.board.Width(),
		Height:   e.board.Height(),
		Board:    e.board.Cells(),
		Piece:    NoType,
		Score:    e.state.Score,
		Lines:    e.state.Lines,
		Level:    e.state.Level,
		Interval: e.state.Interval,
		Elapsed:  e.state.Elapsed,
		Status:   e.state.Status,
		Set:      e.cfg.Set,
	}
	if e.piece != nil {
		s.Piece = e.piece.Type()
		s.PieceCells = e.piece.Cells()
	}

	members := e.cfg.Set.Members()
	s.Stats = make(map[PieceType]int, len(members))
	for _, t := range members {
		n, _ := e.stats.Get(t)
		s.Stats[t] = n
	}
	return s
}

// IsPieceCell reports whether (row, col) belongs to the falling piece.
func (s Snapshot) IsPieceCell(row, col int) bool {
	for _, c := range s.PieceCells {
		if c.X == col && c.Y == row {
			return true
		}
	}
	return false
}
