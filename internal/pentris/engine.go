package pentris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-pentris/internal/config"
	"github.com/vovakirdan/tui-pentris/internal/core"
)

// Config holds the engine parameters.
type Config struct {
	Width           int
	Height          int
	InitialInterval time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	LinesPerLevel   int
	LineScore       int // Points per row; a pass of n rows scores n*n*LineScore
	Set             PieceSet
	Seed            int64
}

// DefaultConfig returns the engine configuration matching config.DefaultPentrisConfig.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultPentrisConfig(), SetBoth, 0)
}

// ConfigFrom converts a loaded configuration into engine parameters.
func ConfigFrom(c config.PentrisConfig, set PieceSet, seed int64) Config {
	return Config{
		Width:           c.Board.Width,
		Height:          c.Board.Height,
		InitialInterval: c.Speed.InitialInterval(),
		IntervalStep:    c.Speed.IntervalStep(),
		MinInterval:     c.Speed.MinInterval(),
		LinesPerLevel:   c.Speed.LinesPerLevel,
		LineScore:       c.Scoring.LineMultiplier,
		Set:             set,
		Seed:            seed,
	}
}

// Engine runs one game: spawn, movement legality, locking, line clears,
// scoring, levels, and loss detection.
//
// Engine is not safe for concurrent use. The loop package owns an engine on
// a single goroutine and serializes ticks and input against it.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	board *Board
	piece *Piece
	state GameState
	tick  uint64
	stats *intmap.Map[PieceType, int]
}

// NewEngine creates an engine in the NotStarted state.
// An unknown piece set is rejected with ErrInvalidMode.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Set.Validate(); err != nil {
		return nil, fmt.Errorf("pentris: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("pentris: invalid board size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.InitialInterval <= 0 || cfg.MinInterval <= 0 {
		return nil, fmt.Errorf("pentris: gravity intervals must be positive")
	}
	if cfg.LinesPerLevel <= 0 {
		return nil, fmt.Errorf("pentris: lines per level must be positive")
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		board: NewBoard(cfg.Height, cfg.Width),
		stats: intmap.New[PieceType, int](int(pieceTypeCount)),
	}
	e.reset()
	return e, nil
}

// reset clears the board, drops the piece and zeroes every counter.
func (e *Engine) reset() {
	e.board.ResetAll()
	e.piece = nil
	e.tick = 0
	e.stats.Clear()
	e.state = GameState{
		Level:    1,
		Interval: e.cfg.InitialInterval,
		Status:   StatusNotStarted,
	}
}

// Start moves a NotStarted game to Playing with a fresh board.
// It has no effect in any other state.
func (e *Engine) Start() bool {
	if e.state.Status != StatusNotStarted {
		return false
	}
	e.reset()
	e.state.Status = StatusPlaying
	return true
}

// Restart abandons the current game from any state and starts a new one.
func (e *Engine) Restart() {
	e.state.Status = StatusNotStarted
	e.Start()
}

// TogglePause switches between Playing and Paused.
// Returns false when the game is neither.
func (e *Engine) TogglePause() bool {
	switch e.state.Status {
	case StatusPlaying:
		e.state.Status = StatusPaused
	case StatusPaused:
		e.state.Status = StatusPlaying
	default:
		return false
	}
	return true
}

// State returns a copy of the counters and status.
func (e *Engine) State() GameState {
	return e.state
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.state.Status
}

// Interval returns the current gravity interval.
func (e *Engine) Interval() time.Duration {
	return e.state.Interval
}

// Piece returns the falling piece, or nil between lock and spawn.
func (e *Engine) Piece() *Piece {
	return e.piece
}

// Board returns the engine's board. Callers must not mutate it.
func (e *Engine) Board() *Board {
	return e.board
}

// Set returns the active piece set.
func (e *Engine) Set() PieceSet {
	return e.cfg.Set
}

// Tick advances gravity by one step. It does nothing unless the game is Playing.
//
// Without a falling piece the tick clears complete rows, scores them and
// spawns a new piece. With a falling piece it tries to move it down and locks
// it on failure; the next piece spawns on the following tick.
func (e *Engine) Tick() TickResult {
	var res TickResult
	if e.state.Status != StatusPlaying {
		return res
	}
	e.tick++
	e.state.Elapsed += e.state.Interval

	if e.piece == nil {
		res.Cleared = e.clearLines()
		if res.Cleared > 0 {
			e.state.Score += res.Cleared * res.Cleared * e.cfg.LineScore
		}
		res.Spawned = e.spawn()
	} else if e.tryMove(DirDown) {
		res.Moved = true
	} else {
		e.lock()
		res.Locked = true
	}

	res.Lost = e.state.Status == StatusLost
	return res
}

// AttemptMove moves or rotates the falling piece if every resulting cell is
// legal, and reports whether it did. A blocked move only locks the piece
// when it ends the game.
func (e *Engine) AttemptMove(dir Direction) bool {
	if e.piece == nil || e.state.Status != StatusPlaying {
		return false
	}
	moved := e.tryMove(dir)
	if e.state.Status == StatusLost {
		e.lock()
	}
	return moved
}

// MoveDown steps the piece down once and locks it if it cannot move.
func (e *Engine) MoveDown() bool {
	if e.piece == nil || e.state.Status != StatusPlaying {
		return false
	}
	if !e.tryMove(DirDown) {
		e.lock()
	}
	return true
}

// Drop moves the piece down until it rests, then locks it.
func (e *Engine) Drop() bool {
	if e.piece == nil || e.state.Status != StatusPlaying {
		return false
	}
	for e.tryMove(DirDown) {
	}
	e.lock()
	return true
}

// Apply dispatches a player action and reports whether anything changed.
// Movement actions are ignored unless a piece is falling in a Playing game.
func (e *Engine) Apply(a core.Action) bool {
	switch a {
	case core.ActionRestart:
		e.Restart()
		return true
	case core.ActionPause:
		return e.TogglePause()
	case core.ActionLeft:
		return e.AttemptMove(DirLeft)
	case core.ActionRight:
		return e.AttemptMove(DirRight)
	case core.ActionRotateRight:
		return e.AttemptMove(DirRotateRight)
	case core.ActionRotateLeft:
		return e.AttemptMove(DirRotateLeft)
	case core.ActionDown:
		return e.MoveDown()
	case core.ActionDrop:
		return e.Drop()
	}
	return false
}

// tryMove checks the candidate cells of a move and commits it if all are legal.
//
// A cell left or right of the board is illegal, a cell above row 0 is legal,
// a cell below the last row is illegal, and an occupied cell is illegal unless
// the moving piece itself fills it. Checking stops at the first illegal cell.
// When that cell blocks a downward move and the piece still reaches the top
// row, the game is lost.
func (e *Engine) tryMove(dir Direction) bool {
	p := e.piece
	offsets, pos := p.candidate(dir)

	for _, cell := range cellsAt(offsets, pos) {
		if !e.board.InWidth(cell.X) {
			return false
		}
		if cell.Y < 0 {
			continue
		}
		if !e.board.InHeight(cell.Y) {
			return false
		}
		if !e.board.IsEmpty(cell.Y, cell.X) && !p.Occupies(cell) {
			if dir == DirDown && p.Top() <= 0 {
				e.state.Status = StatusLost
			}
			return false
		}
	}

	e.erase(p)
	p.offsets = offsets
	p.pos = pos
	e.draw(p)
	return true
}

// lock leaves the piece's cells on the board and forgets the piece.
func (e *Engine) lock() {
	e.piece = nil
}

// clearLines removes complete rows from the bottom up and applies level
// progression per row. The same row index is re-tested after a clear because
// the rows above have shifted into it.
func (e *Engine) clearLines() int {
	cleared := 0
	row := e.board.Height() - 1
	for row >= 0 {
		if !e.board.RowComplete(row) {
			row--
			continue
		}
		e.board.ClearRow(row)
		cleared++
		e.state.Lines++
		e.levelUp()
	}
	return cleared
}

// levelUp shortens the interval and raises the level every LinesPerLevel
// lines, as long as the interval is still above the floor.
func (e *Engine) levelUp() {
	if e.state.Lines%e.cfg.LinesPerLevel != 0 || e.state.Interval <= e.cfg.MinInterval {
		return
	}
	e.state.Interval = max(e.state.Interval-e.cfg.IntervalStep, e.cfg.MinInterval)
	e.state.Level++
}

// spawn places a random piece from the active set at the top center.
func (e *Engine) spawn() PieceType {
	return e.spawnType(RandomType(e.rng, e.cfg.Set))
}

// spawnType places a piece of type t with its lowest cell on row 0.
// If any visible cell is already filled the stack has reached the ceiling
// and the game is lost without drawing the piece.
func (e *Engine) spawnType(t PieceType) PieceType {
	p := newPiece(t, core.Point{
		X: e.board.Width()/2 - 1,
		Y: -BoundsOf(t).Max.Y,
	})

	for _, cell := range p.Cells() {
		if e.board.InBounds(cell.Y, cell.X) && !e.board.IsEmpty(cell.Y, cell.X) {
			e.state.Status = StatusLost
			return NoType
		}
	}

	e.piece = p
	e.draw(p)
	n, _ := e.stats.Get(t)
	e.stats.Put(t, n+1)
	return t
}

func (e *Engine) draw(p *Piece) {
	c := p.Color()
	for _, cell := range p.Cells() {
		if e.board.InBounds(cell.Y, cell.X) {
			e.board.Fill(cell.Y, cell.X, c)
		}
	}
}

func (e *Engine) erase(p *Piece) {
	for _, cell := range p.Cells() {
		if e.board.InBounds(cell.Y, cell.X) {
			e.board.Clear(cell.Y, cell.X)
		}
	}
}

// Spawned returns how many pieces of type t spawned this game.
func (e *Engine) Spawned(t PieceType) int {
	n, _ := e.stats.Get(t)
	return n
}
