package pentris

import "github.com/vovakirdan/tui-pentris/internal/core"

// Direction is a single-step piece transformation.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
	DirRotateLeft
	DirRotateRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirRotateLeft:
		return "RotateLeft"
	case DirRotateRight:
		return "RotateRight"
	default:
		return "Unknown"
	}
}

// Piece is the falling piece: its type, current (possibly rotated) offsets and
// the board position of its pivot.
type Piece struct {
	typ     PieceType
	offsets []core.Point
	pos     core.Point
}

func newPiece(t PieceType, pos core.Point) *Piece {
	return &Piece{
		typ:     t,
		offsets: ShapeOf(t),
		pos:     pos,
	}
}

// Type returns the piece type.
func (p *Piece) Type() PieceType {
	return p.typ
}

// Position returns the pivot position in board coordinates.
func (p *Piece) Position() core.Point {
	return p.pos
}

// Offsets returns a copy of the current offsets.
func (p *Piece) Offsets() []core.Point {
	return copyOffsets(p.offsets)
}

// Color returns the catalog color of the piece.
func (p *Piece) Color() core.Color {
	return ColorOf(p.typ)
}

// Cells returns the board cells the piece covers, including any above row 0.
func (p *Piece) Cells() []core.Point {
	return cellsAt(p.offsets, p.pos)
}

// Occupies reports whether the piece covers the given board cell.
func (p *Piece) Occupies(cell core.Point) bool {
	for _, o := range p.offsets {
		if p.pos.Add(o) == cell {
			return true
		}
	}
	return false
}

// Top returns the row of the piece's top edge according to its catalog
// bounding box. Values at or below zero mean the piece still reaches the ceiling.
func (p *Piece) Top() int {
	return BoundsOf(p.typ).Min.Y + p.pos.Y
}

// candidate computes where the piece would be after moving in dir.
// The piece itself is left untouched.
func (p *Piece) candidate(dir Direction) ([]core.Point, core.Point) {
	pos := p.pos
	switch dir {
	case DirRotateLeft:
		return RotateLeft(p.typ, p.offsets), pos
	case DirRotateRight:
		return RotateRight(p.typ, p.offsets), pos
	case DirDown:
		pos.Y++
	case DirUp:
		pos.Y--
	case DirLeft:
		pos.X--
	case DirRight:
		pos.X++
	}
	return p.offsets, pos
}

func cellsAt(offsets []core.Point, pos core.Point) []core.Point {
	cells := make([]core.Point, len(offsets))
	for i, o := range offsets {
		cells[i] = pos.Add(o)
	}
	return cells
}
