package pentris

import "github.com/vovakirdan/tui-pentris/internal/core"

// Board is a fixed-size grid of cell colors. core.ColorNone marks an empty cell.
//
// Fill, Clear and IsEmpty do not bounds-check: callers filter cells through
// InBounds first, and an out-of-range index panics like any slice access.
type Board struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewBoard creates an empty board with the given number of rows and columns.
func NewBoard(height, width int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for row := range b.cells {
		b.cells[row] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InWidth reports whether col is inside [0, width).
func (b *Board) InWidth(col int) bool {
	return col >= 0 && col < b.width
}

// InHeight reports whether row is inside [0, height).
func (b *Board) InHeight(row int) bool {
	return row >= 0 && row < b.height
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return b.InHeight(row) && b.InWidth(col)
}

// IsEmpty reports whether the cell holds no color.
func (b *Board) IsEmpty(row, col int) bool {
	return b.cells[row][col] == core.ColorNone
}

// At returns the color stored in the cell.
func (b *Board) At(row, col int) core.Color {
	return b.cells[row][col]
}

// Fill stores a color in the cell.
func (b *Board) Fill(row, col int, c core.Color) {
	b.cells[row][col] = c
}

// Clear empties the cell.
func (b *Board) Clear(row, col int) {
	b.cells[row][col] = core.ColorNone
}

// RowComplete reports whether every column of the row is filled.
func (b *Board) RowComplete(row int) bool {
	for _, c := range b.cells[row] {
		if c == core.ColorNone {
			return false
		}
	}
	return true
}

// ClearRow removes a row: every row above it moves down by one and row 0 is
// emptied. Clearing row 0 only empties it.
func (b *Board) ClearRow(row int) {
	for r := row; r > 0; r-- {
		copy(b.cells[r], b.cells[r-1])
	}
	for col := range b.cells[0] {
		b.cells[0][col] = core.ColorNone
	}
}

// ResetAll empties every cell.
func (b *Board) ResetAll() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col] = core.ColorNone
		}
	}
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for row := range b.cells {
		for _, c := range b.cells[row] {
			if c != core.ColorNone {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]core.Color {
	out := make([][]core.Color, b.height)
	for row := range b.cells {
		out[row] = make([]core.Color, b.width)
		copy(out[row], b.cells[row])
	}
	return out
}
