package pentris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pentris/internal/core"
)

func testConfig(height, width int) Config {
	cfg := DefaultConfig()
	cfg.Height = height
	cfg.Width = width
	cfg.Seed = 1
	return cfg
}

// newPlaying returns a started engine with no falling piece.
func newPlaying(t *testing.T, height, width int) *Engine {
	t.Helper()
	e, err := NewEngine(testConfig(height, width))
	require.NoError(t, err)
	require.True(t, e.Start())
	return e
}

func fillRow(b *Board, row int, c core.Color) {
	for col := range b.Width() {
		b.Fill(row, col, c)
	}
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine(testConfig(25, 12))
	require.NoError(t, err)

	st := e.State()
	assert.Equal(t, StatusNotStarted, st.Status)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 500*time.Millisecond, st.Interval)
	assert.Nil(t, e.Piece())
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	cfg := testConfig(25, 12)
	cfg.Set = 0
	_, err := NewEngine(cfg)
	assert.ErrorIs(t, err, ErrInvalidMode)

	cfg = testConfig(0, 12)
	_, err = NewEngine(cfg)
	assert.Error(t, err)

	cfg = testConfig(25, 12)
	cfg.LinesPerLevel = 0
	_, err = NewEngine(cfg)
	assert.Error(t, err)
}

func TestTickBeforeStartIsNoop(t *testing.T) {
	e, err := NewEngine(testConfig(20, 10))
	require.NoError(t, err)

	res := e.Tick()
	assert.Equal(t, TickResult{}, res)
	assert.Equal(t, time.Duration(0), e.State().Elapsed)
	assert.False(t, e.Apply(core.ActionLeft))
}

func TestFirstTickSpawns(t *testing.T) {
	e := newPlaying(t, 20, 10)

	res := e.Tick()
	require.NotEqual(t, NoType, res.Spawned)
	require.NotNil(t, e.Piece())

	p := e.Piece()
	assert.Equal(t, res.Spawned, p.Type())
	assert.Equal(t, core.Point{X: 4, Y: -BoundsOf(p.Type()).Max.Y}, p.Position())
	assert.Equal(t, 1, e.Spawned(p.Type()))

	maxRow := -1
	for _, c := range p.Cells() {
		maxRow = max(maxRow, c.Y)
	}
	assert.Equal(t, 0, maxRow, "lowest cell spawns on row 0")
}

func TestSpawnRespectsPieceSet(t *testing.T) {
	for _, set := range []PieceSet{SetTetromino, SetPentomino} {
		cfg := testConfig(25, 12)
		cfg.Set = set
		e, err := NewEngine(cfg)
		require.NoError(t, err)
		e.Start()

		for range 30 {
			e.Restart()
			res := e.Tick()
			if set == SetTetromino {
				assert.True(t, res.Spawned.IsTetromino(), res.Spawned.String())
			} else {
				assert.True(t, res.Spawned.IsPentomino(), res.Spawned.String())
			}
		}
	}
}

func TestElapsedAdvancesPerTick(t *testing.T) {
	e := newPlaying(t, 20, 10)
	for range 3 {
		e.Tick()
	}
	assert.Equal(t, 1500*time.Millisecond, e.State().Elapsed)
}

func TestAttemptMoveStaysInsideWidth(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.spawnType(PieceTI)

	moves := 0
	for range 20 {
		if e.AttemptMove(DirLeft) {
			moves++
		}
		for _, c := range e.Piece().Cells() {
			require.GreaterOrEqual(t, c.X, 0)
		}
	}
	assert.Equal(t, 4, moves)

	moves = 0
	for range 20 {
		if e.AttemptMove(DirRight) {
			moves++
		}
		for _, c := range e.Piece().Cells() {
			require.Less(t, c.X, 10)
		}
	}
	assert.Equal(t, 9, moves)
}

func TestRotationRejectedAtWall(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.spawnType(PieceTI)
	for e.AttemptMove(DirLeft) {
	}
	before := e.Piece().Offsets()

	assert.False(t, e.AttemptMove(DirRotateRight))
	assert.Equal(t, before, e.Piece().Offsets())
	assert.Equal(t, StatusPlaying, e.Status())
}

func TestMovesDoNotLock(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.spawnType(PieceTI)
	for e.AttemptMove(DirDown) {
	}
	assert.NotNil(t, e.Piece(), "AttemptMove never locks")

	assert.True(t, e.Apply(core.ActionDown))
	assert.Nil(t, e.Piece(), "a failed step down locks")
}

func TestDropHorizontalBar(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.spawnType(PieceTI)
	require.True(t, e.AttemptMove(DirRotateRight))

	require.True(t, e.Drop())

	assert.Nil(t, e.Piece())
	assert.Equal(t, StatusPlaying, e.Status())
	assert.Equal(t, 4, e.Board().FilledCount())
	for col := 2; col <= 5; col++ {
		assert.Equal(t, core.ColorCyan, e.Board().At(19, col), "col %d", col)
	}
}

func TestPieceLandsOnStack(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.Board().Fill(19, 4, core.ColorRed)
	e.spawnType(PieceTI)

	e.Drop()

	// Vertical bar rests with its lowest cell on row 18.
	for row := 15; row <= 18; row++ {
		assert.Equal(t, core.ColorCyan, e.Board().At(row, 4), "row %d", row)
	}
	assert.Equal(t, core.ColorRed, e.Board().At(19, 4))
}

func TestSingleLineClear(t *testing.T) {
	e := newPlaying(t, 20, 10)
	for _, col := range []int{0, 1, 6, 7, 8, 9} {
		e.Board().Fill(19, col, core.ColorRed)
	}
	e.spawnType(PieceTI)
	require.True(t, e.AttemptMove(DirRotateRight))
	e.Drop()
	require.True(t, e.Board().RowComplete(19))

	res := e.Tick()

	assert.Equal(t, 1, res.Cleared)
	assert.NotEqual(t, NoType, res.Spawned)
	st := e.State()
	assert.Equal(t, 10, st.Score)
	assert.Equal(t, 1, st.Lines)
	for col := range 10 {
		assert.True(t, e.Board().IsEmpty(19, col))
	}
}

func TestMultiLineScoring(t *testing.T) {
	for n := 1; n <= 5; n++ {
		e := newPlaying(t, 20, 10)
		for row := 20 - n; row < 20; row++ {
			fillRow(e.Board(), row, core.ColorBlue)
		}
		e.Board().Fill(19-n, 0, core.ColorRed)

		res := e.Tick()

		assert.Equal(t, n, res.Cleared)
		assert.Equal(t, 10*n*n, e.State().Score, "n=%d", n)
		assert.Equal(t, n, e.State().Lines)
		assert.Equal(t, core.ColorRed, e.Board().At(19, 0), "row above shifts down by %d", n)
	}
}

func TestClearRetestsShiftedRow(t *testing.T) {
	e := newPlaying(t, 20, 10)
	fillRow(e.Board(), 19, core.ColorBlue)
	e.Board().Fill(18, 3, core.ColorRed)
	fillRow(e.Board(), 17, core.ColorBlue)

	res := e.Tick()

	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 40, e.State().Score)
	assert.Equal(t, core.ColorRed, e.Board().At(19, 3))
	for row := 15; row < 19; row++ {
		for col := range 10 {
			assert.True(t, e.Board().IsEmpty(row, col))
		}
	}
}

func TestLevelProgression(t *testing.T) {
	e := newPlaying(t, 20, 10)

	clear := func(n int) {
		for range n {
			fillRow(e.Board(), 19, core.ColorBlue)
			e.clearLines()
		}
	}

	clear(9)
	assert.Equal(t, 1, e.State().Level)
	assert.Equal(t, 500*time.Millisecond, e.Interval())

	clear(1)
	assert.Equal(t, 2, e.State().Level)
	assert.Equal(t, 490*time.Millisecond, e.Interval())

	clear(590)
	st := e.State()
	assert.Equal(t, 600, st.Lines)
	assert.Equal(t, 46, st.Level)
	assert.Equal(t, 50*time.Millisecond, st.Interval)
}

func TestLevelStepClampsToFloor(t *testing.T) {
	cfg := testConfig(20, 10)
	cfg.InitialInterval = 100 * time.Millisecond
	cfg.IntervalStep = 30 * time.Millisecond
	cfg.MinInterval = 50 * time.Millisecond
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	e.Start()

	want := []struct {
		level    int
		interval time.Duration
	}{
		{2, 70 * time.Millisecond},
		{3, 50 * time.Millisecond},
		{3, 50 * time.Millisecond},
	}
	for _, w := range want {
		for range 10 {
			fillRow(e.Board(), 19, core.ColorBlue)
			e.clearLines()
		}
		assert.Equal(t, w.level, e.State().Level)
		assert.Equal(t, w.interval, e.Interval())
	}
}

func TestLossWhenStackReachesCeiling(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.Board().Fill(1, 4, core.ColorRed)
	e.spawnType(PieceTI)
	require.Equal(t, StatusPlaying, e.Status())

	res := e.Tick()

	assert.True(t, res.Lost)
	assert.Equal(t, StatusLost, e.Status())

	tick := e.Snapshot().Tick
	assert.Equal(t, TickResult{}, e.Tick())
	assert.Equal(t, tick, e.Snapshot().Tick)
	assert.False(t, e.Apply(core.ActionLeft))
	assert.False(t, e.Apply(core.ActionDrop))
	assert.False(t, e.TogglePause())
}

func TestAttemptMoveDownLosingLocksPiece(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.Board().Fill(1, 4, core.ColorRed)
	e.spawnType(PieceTI)

	assert.False(t, e.AttemptMove(DirDown))
	assert.Equal(t, StatusLost, e.Status())
	assert.Nil(t, e.Piece())
	assert.Equal(t, NoType, e.Snapshot().Piece)
}

func TestTickWithoutCompleteRowsKeepsScore(t *testing.T) {
	e := newPlaying(t, 20, 10)
	for col := 1; col < 10; col++ {
		e.Board().Fill(19, col, core.ColorRed)
	}
	for col := 3; col < 7; col++ {
		e.Board().Fill(18, col, core.ColorRed)
	}

	spawns := 0
	for range 200 {
		res := e.Tick()
		require.Zero(t, res.Cleared)
		require.Equal(t, 0, e.State().Score)
		require.Equal(t, 0, e.State().Lines)
		require.Equal(t, 1, e.State().Level)
		require.Equal(t, 500*time.Millisecond, e.Interval())
		if res.Spawned != NoType {
			spawns++
		}
		if spawns == 2 || res.Lost {
			break
		}
	}
	assert.Equal(t, 2, spawns, "a second spawn tick ran after the first piece locked")
	assert.True(t, e.Board().IsEmpty(19, 0))
}

func TestBlockedBelowCeilingLocksWithoutLoss(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.Board().Fill(10, 4, core.ColorRed)
	e.spawnType(PieceTI)

	for e.Tick().Moved {
	}

	assert.Equal(t, StatusPlaying, e.Status())
	assert.Nil(t, e.Piece())
}

func TestSpawnCollisionLoses(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.Board().Fill(0, 4, core.ColorRed)

	got := e.spawnType(PieceTI)

	assert.Equal(t, NoType, got)
	assert.Equal(t, StatusLost, e.Status())
	assert.Nil(t, e.Piece())
	assert.Equal(t, core.ColorRed, e.Board().At(0, 4), "piece is not drawn over the stack")
	assert.Equal(t, 0, e.Spawned(PieceTI))
}

func TestPauseToggle(t *testing.T) {
	e, err := NewEngine(testConfig(20, 10))
	require.NoError(t, err)
	assert.False(t, e.TogglePause(), "cannot pause before start")

	e.Start()
	e.Tick()
	require.True(t, e.Apply(core.ActionPause))
	assert.Equal(t, StatusPaused, e.Status())

	elapsed := e.State().Elapsed
	assert.Equal(t, TickResult{}, e.Tick())
	assert.Equal(t, elapsed, e.State().Elapsed)
	assert.False(t, e.Apply(core.ActionLeft))
	assert.False(t, e.Apply(core.ActionRotateLeft))

	require.True(t, e.Apply(core.ActionPause))
	assert.Equal(t, StatusPlaying, e.Status())
}

func TestRestartFromAnyState(t *testing.T) {
	e := newPlaying(t, 20, 10)
	fillRow(e.Board(), 19, core.ColorBlue)
	e.Tick()
	require.Equal(t, 10, e.State().Score)

	require.True(t, e.Drop())
	for col := 1; col < 10; col++ {
		e.Board().Fill(0, col, core.ColorRed)
	}
	e.Tick()
	require.Equal(t, StatusLost, e.Status())

	require.True(t, e.Apply(core.ActionRestart))

	st := e.State()
	assert.Equal(t, StatusPlaying, st.Status)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 0, st.Lines)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 500*time.Millisecond, st.Interval)
	assert.Equal(t, time.Duration(0), st.Elapsed)
	assert.Equal(t, 0, e.Board().FilledCount())
	assert.Nil(t, e.Piece())
}

func TestStartOnlyFromNotStarted(t *testing.T) {
	e := newPlaying(t, 20, 10)
	assert.False(t, e.Start())
}

func TestSnapshotIsIndependent(t *testing.T) {
	e := newPlaying(t, 20, 10)
	e.spawnType(PieceTD)

	s := e.Snapshot()
	require.Equal(t, PieceTD, s.Piece)
	assert.Len(t, s.PieceCells, 4)
	assert.Equal(t, 1, s.Stats[PieceTD])
	assert.Len(t, s.Stats, 25)
	assert.Equal(t, SetBoth, s.Set)

	pos := e.Piece().Position()
	assert.True(t, s.IsPieceCell(pos.Y, pos.X))

	s.Board[0][4] = core.ColorRed
	s.PieceCells[0] = core.Point{X: 9, Y: 9}
	assert.Equal(t, core.ColorYellow, e.Board().At(0, 4))
	assert.NotEqual(t, core.Point{X: 9, Y: 9}, e.Piece().Cells()[0])
}

func TestSameSeedSameSequence(t *testing.T) {
	a, err := NewEngine(testConfig(25, 12))
	require.NoError(t, err)
	b, err := NewEngine(testConfig(25, 12))
	require.NoError(t, err)
	a.Start()
	b.Start()

	for range 10 {
		a.Restart()
		b.Restart()
		assert.Equal(t, a.Tick().Spawned, b.Tick().Spawned)
	}
}
