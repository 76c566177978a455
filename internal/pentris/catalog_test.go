package pentris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pentris/internal/core"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, SetPentomino.Members(), 18)
	assert.Len(t, SetTetromino.Members(), 7)
	assert.Len(t, SetBoth.Members(), 25)
	assert.Nil(t, PieceSet(0).Members())

	for _, pt := range SetBoth.Members() {
		shape := Lookup(pt)
		want := 4
		if pt.IsPentomino() {
			want = 5
		}
		assert.Len(t, shape.Offsets, want, pt.String())
		assert.NotEqual(t, core.ColorNone, shape.Color, pt.String())

		seen := make(map[core.Point]bool)
		for _, o := range shape.Offsets {
			assert.False(t, seen[o], "%s repeats offset %v", pt, o)
			seen[o] = true
		}
	}
}

func TestCatalogKinds(t *testing.T) {
	for _, pt := range SetPentomino.Members() {
		assert.True(t, pt.IsPentomino(), pt.String())
		assert.False(t, pt.IsTetromino(), pt.String())
	}
	for _, pt := range SetTetromino.Members() {
		assert.True(t, pt.IsTetromino(), pt.String())
		assert.False(t, pt.IsPentomino(), pt.String())
	}
	assert.False(t, NoType.IsPentomino())
	assert.False(t, NoType.IsTetromino())
}

func TestCatalogBounds(t *testing.T) {
	tests := []struct {
		typ  PieceType
		want Bounds
	}{
		{PieceI, Bounds{Min: core.Point{X: 0, Y: -2}, Max: core.Point{X: 0, Y: 2}}},
		{PieceX, Bounds{Min: core.Point{X: -1, Y: -1}, Max: core.Point{X: 1, Y: 1}}},
		{PieceU, Bounds{Min: core.Point{X: -1, Y: 0}, Max: core.Point{X: 1, Y: 1}}},
		{PieceTI, Bounds{Min: core.Point{X: 0, Y: -1}, Max: core.Point{X: 0, Y: 2}}},
		{PieceTD, Bounds{Min: core.Point{X: 0, Y: -1}, Max: core.Point{X: 1, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, BoundsOf(tt.typ))
		})
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	offsets := ShapeOf(PieceF)
	offsets[0] = core.Point{X: 99, Y: 99}

	shape := Lookup(PieceF)
	shape.Offsets[1] = core.Point{X: -99, Y: -99}

	fresh := ShapeOf(PieceF)
	assert.Equal(t, core.Point{X: -1, Y: 0}, fresh[0])
	assert.Equal(t, core.Point{X: 0, Y: -1}, fresh[1])
}

func TestCatalogUnknownType(t *testing.T) {
	assert.Equal(t, core.ColorNone, ColorOf(PieceType(-1)))
	assert.Equal(t, core.ColorNone, ColorOf(pieceTypeCount))
	assert.Equal(t, "Unknown", PieceType(1000).String())
	assert.Equal(t, "None", NoType.String())
}

func TestParsePieceSet(t *testing.T) {
	tests := []struct {
		in   string
		want PieceSet
	}{
		{"tetris", SetTetromino},
		{"Tetromino", SetTetromino},
		{"pentris", SetPentomino},
		{" PENTOMINO ", SetPentomino},
		{"both", SetBoth},
		{"all", SetBoth},
		{"Tetris+Pentris", SetBoth},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePieceSet(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePieceSet("hexris")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.ErrorIs(t, PieceSet(0).Validate(), ErrInvalidMode)
	assert.ErrorIs(t, PieceSet(9).Validate(), ErrInvalidMode)
}

func TestPieceSetNames(t *testing.T) {
	assert.Equal(t, "pentris", SetPentomino.String())
	assert.Equal(t, "Tetris+Pentris", SetBoth.Title())
	assert.Equal(t, "Tetris", SetTetromino.Title())
}

func TestRandomTypeStaysInSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, set := range []PieceSet{SetTetromino, SetPentomino, SetBoth} {
		members := make(map[PieceType]bool)
		for _, pt := range set.Members() {
			members[pt] = true
		}
		for range 500 {
			pt := RandomType(rng, set)
			require.True(t, members[pt], "%s not in %s", pt, set)
		}
	}
	assert.Equal(t, NoType, RandomType(rng, PieceSet(0)))
}

func TestRandomTypeDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for range 50 {
		assert.Equal(t, RandomType(a, SetBoth), RandomType(b, SetBoth))
	}
}
