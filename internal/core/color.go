package core

// Color is a small-int color tag for a board cell or screen cell.
// The platform layer maps tags to terminal colors; game logic only compares them.
type Color uint8

// ColorNone marks an empty cell. Every other value is a filled cell.
const ColorNone Color = 0

// Piece and UI colors.
const (
	ColorLavender Color = iota + 1
	ColorBlue
	ColorGreen
	ColorBrown
	ColorPink
	ColorSky
	ColorOrange
	ColorDarkGreen
	ColorNavy
	ColorRed
	ColorYellow
	ColorPurple
	ColorCyan
	ColorIndigo
	ColorViolet
	ColorWhite
	ColorGray
)

// IsEmpty reports whether the color is the empty sentinel.
func (c Color) IsEmpty() bool {
	return c == ColorNone
}
