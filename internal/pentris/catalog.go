// Package pentris implements the falling-block simulation: the piece catalog,
// rotation rules, the board grid, and the engine that moves, locks and clears.
// It has no knowledge of terminals, timers or goroutines; the loop package
// drives it and the platform layer renders its snapshots.
package pentris

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-pentris/internal/core"
)

// PieceType identifies a piece shape.
type PieceType int

// Pentomino types come first, then tetromino types. Mirrored variants carry a
// "2" suffix. NoType is the sentinel for "no piece".
const (
	NoType PieceType = iota

	PieceF
	PieceF2
	PieceI
	PieceL
	PieceL2
	PieceN
	PieceN2
	PieceP
	PieceP2
	PieceT
	PieceU
	PieceV
	PieceW
	PieceX
	PieceY
	PieceY2
	PieceZ
	PieceZ2

	PieceTI
	PieceTL
	PieceTL2
	PieceTD
	PieceTS
	PieceTS2
	PieceTT

	pieceTypeCount
)

const (
	pentominoCount = 18
	tetrominoCount = 7
)

// String returns the catalog name of the piece type.
func (t PieceType) String() string {
	if t < NoType || t >= pieceTypeCount {
		return "Unknown"
	}
	return catalog[t].Name
}

// IsPentomino reports whether the type is one of the 5-cell pieces.
func (t PieceType) IsPentomino() bool {
	return t >= PieceF && t <= PieceZ2
}

// IsTetromino reports whether the type is one of the 4-cell pieces.
func (t PieceType) IsTetromino() bool {
	return t >= PieceTI && t <= PieceTT
}

// Bounds is the bounding box of a shape's offsets.
type Bounds struct {
	Min core.Point
	Max core.Point
}

// Shape is an immutable catalog entry.
type Shape struct {
	Type    PieceType
	Name    string
	Offsets []core.Point
	Color   core.Color
	Bounds  Bounds
}

type shapeDef struct {
	name    string
	color   core.Color
	offsets [][2]int
}

// Offsets are (dx, dy) around the pivot, y growing downward.
var shapeDefs = [pieceTypeCount]shapeDef{
	NoType: {name: "None", color: core.ColorNone, offsets: [][2]int{{0, 0}}},

	PieceF:  {"F", core.ColorLavender, [][2]int{{-1, 0}, {0, -1}, {0, 0}, {0, 1}, {1, -1}}},
	PieceF2: {"F2", core.ColorLavender, [][2]int{{-1, 0}, {0, 1}, {0, 0}, {0, -1}, {1, 1}}},
	PieceI:  {"I", core.ColorBlue, [][2]int{{0, 2}, {0, 1}, {0, 0}, {0, -1}, {0, -2}}},
	PieceL:  {"L", core.ColorGreen, [][2]int{{0, -2}, {0, -1}, {0, 0}, {0, 1}, {1, 1}}},
	PieceL2: {"L2", core.ColorGreen, [][2]int{{0, 2}, {0, 1}, {0, 0}, {0, -1}, {1, -1}}},
	PieceN:  {"N", core.ColorBrown, [][2]int{{-1, 0}, {-1, 1}, {0, 0}, {0, -1}, {0, -2}}},
	PieceN2: {"N2", core.ColorBrown, [][2]int{{-1, 0}, {-1, -1}, {0, 0}, {0, 1}, {0, 2}}},
	PieceP:  {"P", core.ColorPink, [][2]int{{0, -1}, {0, 0}, {0, 1}, {1, -1}, {1, 0}}},
	PieceP2: {"P2", core.ColorPink, [][2]int{{0, 1}, {0, 0}, {0, -1}, {1, 1}, {1, 0}}},
	PieceT:  {"T", core.ColorSky, [][2]int{{-1, -1}, {0, -1}, {0, 0}, {0, 1}, {1, -1}}},
	PieceU:  {"U", core.ColorOrange, [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 0}, {1, 1}}},
	PieceV:  {"V", core.ColorDarkGreen, [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}}},
	PieceW:  {"W", core.ColorNavy, [][2]int{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
	PieceX:  {"X", core.ColorRed, [][2]int{{-1, 0}, {0, -1}, {0, 0}, {0, 1}, {1, 0}}},
	PieceY:  {"Y", core.ColorYellow, [][2]int{{-1, 0}, {0, -1}, {0, 0}, {0, 1}, {0, 2}}},
	PieceY2: {"Y2", core.ColorYellow, [][2]int{{-1, 0}, {0, 1}, {0, 0}, {0, -1}, {0, -2}}},
	PieceZ:  {"Z", core.ColorPurple, [][2]int{{-1, -1}, {0, -1}, {0, 0}, {0, 1}, {1, 1}}},
	PieceZ2: {"Z2", core.ColorPurple, [][2]int{{-1, 1}, {0, 1}, {0, 0}, {0, -1}, {1, -1}}},

	PieceTI:  {"TI", core.ColorCyan, [][2]int{{0, -1}, {0, 0}, {0, 1}, {0, 2}}},
	PieceTL:  {"TL", core.ColorIndigo, [][2]int{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
	PieceTL2: {"TL2", core.ColorIndigo, [][2]int{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}},
	PieceTD:  {"TD", core.ColorYellow, [][2]int{{0, -1}, {0, 0}, {1, -1}, {1, 0}}},
	PieceTS:  {"TS", core.ColorRed, [][2]int{{-1, 0}, {0, 0}, {0, -1}, {1, -1}}},
	PieceTS2: {"TS2", core.ColorRed, [][2]int{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
	PieceTT:  {"TT", core.ColorViolet, [][2]int{{-1, 0}, {0, -1}, {0, 0}, {1, 0}}},
}

// catalog is built once from shapeDefs and never written afterwards.
var catalog = buildCatalog()

func buildCatalog() [pieceTypeCount]Shape {
	var shapes [pieceTypeCount]Shape
	for t, def := range shapeDefs {
		offsets := make([]core.Point, len(def.offsets))
		for i, o := range def.offsets {
			offsets[i] = core.Point{X: o[0], Y: o[1]}
		}
		shapes[t] = Shape{
			Type:    PieceType(t),
			Name:    def.name,
			Offsets: offsets,
			Color:   def.color,
			Bounds:  boundsOf(offsets),
		}
	}
	return shapes
}

func boundsOf(offsets []core.Point) Bounds {
	b := Bounds{Min: offsets[0], Max: offsets[0]}
	for _, o := range offsets[1:] {
		b.Min.X = min(b.Min.X, o.X)
		b.Min.Y = min(b.Min.Y, o.Y)
		b.Max.X = max(b.Max.X, o.X)
		b.Max.Y = max(b.Max.Y, o.Y)
	}
	return b
}

func lookup(t PieceType) Shape {
	if t < NoType || t >= pieceTypeCount {
		return catalog[NoType]
	}
	return catalog[t]
}

// ShapeOf returns a copy of the spawn offsets for the piece type.
func ShapeOf(t PieceType) []core.Point {
	return copyOffsets(lookup(t).Offsets)
}

// ColorOf returns the display color of the piece type.
func ColorOf(t PieceType) core.Color {
	return lookup(t).Color
}

// BoundsOf returns the bounding box of the piece type's spawn offsets.
func BoundsOf(t PieceType) Bounds {
	return lookup(t).Bounds
}

// Lookup returns the full catalog entry with its offsets copied.
func Lookup(t PieceType) Shape {
	s := lookup(t)
	s.Offsets = copyOffsets(s.Offsets)
	return s
}

func copyOffsets(offsets []core.Point) []core.Point {
	out := make([]core.Point, len(offsets))
	copy(out, offsets)
	return out
}

// ErrInvalidMode is returned when a piece set name or value is not recognized.
var ErrInvalidMode = errors.New("invalid piece mode")

// PieceSet selects which pieces may spawn.
type PieceSet int

// The zero PieceSet is invalid so a forgotten mode fails validation.
const (
	SetTetromino PieceSet = iota + 1
	SetPentomino
	SetBoth
)

// String returns the CLI name of the set.
func (s PieceSet) String() string {
	switch s {
	case SetTetromino:
		return "tetris"
	case SetPentomino:
		return "pentris"
	case SetBoth:
		return "both"
	default:
		return "invalid"
	}
}

// Title returns the display name of the set.
func (s PieceSet) Title() string {
	switch s {
	case SetTetromino:
		return "Tetris"
	case SetPentomino:
		return "Pentris"
	case SetBoth:
		return "Tetris+Pentris"
	default:
		return "Invalid"
	}
}

// Validate returns ErrInvalidMode for values outside the enumeration.
func (s PieceSet) Validate() error {
	switch s {
	case SetTetromino, SetPentomino, SetBoth:
		return nil
	}
	return fmt.Errorf("piece set %d: %w", int(s), ErrInvalidMode)
}

// ParsePieceSet converts a mode name to a PieceSet.
func ParsePieceSet(name string) (PieceSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tetris", "tetromino":
		return SetTetromino, nil
	case "pentris", "pentomino":
		return SetPentomino, nil
	case "both", "all", "tetris+pentris":
		return SetBoth, nil
	}
	return 0, fmt.Errorf("mode %q: %w", name, ErrInvalidMode)
}

// Members returns the piece types in the set in catalog order.
func (s PieceSet) Members() []PieceType {
	var first, count int
	switch s {
	case SetPentomino:
		first, count = int(PieceF), pentominoCount
	case SetTetromino:
		first, count = int(PieceTI), tetrominoCount
	case SetBoth:
		first, count = int(PieceF), pentominoCount+tetrominoCount
	default:
		return nil
	}
	types := make([]PieceType, count)
	for i := range types {
		types[i] = PieceType(first + i)
	}
	return types
}

// RandomType picks a type uniformly from the set.
// Returns NoType for an invalid set.
func RandomType(rng *rand.Rand, s PieceSet) PieceType {
	members := s.Members()
	if len(members) == 0 {
		return NoType
	}
	return members[rng.Intn(len(members))]
}
