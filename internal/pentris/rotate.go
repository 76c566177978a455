package pentris

import "github.com/vovakirdan/tui-pentris/internal/core"

// rotationInvariant lists the shapes that look the same after a quarter turn.
// Rotating them returns the offsets unchanged rather than a transformed set.
var rotationInvariant = [pieceTypeCount]bool{
	PieceX:  true,
	PieceTD: true,
}

func isRotationInvariant(t PieceType) bool {
	return t >= NoType && t < pieceTypeCount && rotationInvariant[t]
}

// RotateLeft returns the offsets turned a quarter counter-clockwise:
// (dx, dy) -> (dy, -dx). The input slice is not modified.
func RotateLeft(t PieceType, offsets []core.Point) []core.Point {
	if isRotationInvariant(t) {
		return copyOffsets(offsets)
	}
	out := make([]core.Point, len(offsets))
	for i, o := range offsets {
		out[i] = core.Point{X: o.Y, Y: -o.X}
	}
	return out
}

// RotateRight returns the offsets turned a quarter clockwise:
// (dx, dy) -> (-dy, dx). The input slice is not modified.
func RotateRight(t PieceType, offsets []core.Point) []core.Point {
	if isRotationInvariant(t) {
		return copyOffsets(offsets)
	}
	out := make([]core.Point, len(offsets))
	for i, o := range offsets {
		out[i] = core.Point{X: -o.Y, Y: o.X}
	}
	return out
}
