// Package tui provides the Bubble Tea front end: the mode menu, the game
// view, key bindings, lipgloss rendering and the Wish SSH server.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pentris/internal/core"
	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorNone:      lipgloss.NewStyle(),
	core.ColorLavender:  lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorNavy:      lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorPurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorIndigo:    lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
	core.ColorViolet:    lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Board cells are two columns wide so they look square in most fonts.
const (
	cellWidth = 2
	blockRune = '█'
	emptyRune = '·'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorNone]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// BoardSize returns the screen size in characters needed for a board of the
// given dimensions, border included.
func BoardSize(width, height int) (int, int) {
	return width*cellWidth + 2, height + 2
}

// DrawBoard draws the snapshot's board with a border at (0, 0).
// The screen must be at least BoardSize large.
func DrawBoard(screen *core.Screen, s pentris.Snapshot) {
	w, h := BoardSize(s.Width, s.Height)
	screen.DrawBox(core.NewRect(0, 0, w, h), core.ColorGray)

	for row := range s.Height {
		for col := range s.Width {
			x := 1 + col*cellWidth
			y := 1 + row
			c := s.Board[row][col]
			r := blockRune
			if c.IsEmpty() {
				r = emptyRune
				c = core.ColorGray
			}
			for dx := range cellWidth {
				screen.SetCell(x+dx, y, r, c)
			}
		}
	}
}

// DrawPiece draws a piece type's spawn shape with its pivot at (x, y).
// Rows go downward from the top of the shape's bounding box.
func DrawPiece(screen *core.Screen, t pentris.PieceType, x, y int) {
	shape := pentris.Lookup(t)
	for _, o := range shape.Offsets {
		px := x + (o.X-shape.Bounds.Min.X)*cellWidth
		py := y + o.Y - shape.Bounds.Min.Y
		for dx := range cellWidth {
			screen.SetCell(px+dx, py, blockRune, shape.Color)
		}
	}
}

// PieceSize returns the screen size of a piece drawn by DrawPiece.
func PieceSize(t pentris.PieceType) (int, int) {
	b := pentris.BoundsOf(t)
	return (b.Max.X - b.Min.X + 1) * cellWidth, b.Max.Y - b.Min.Y + 1
}

var (
	hudTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	statusStyles = map[pentris.Status]lipgloss.Style{
		pentris.StatusNotStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		pentris.StatusPlaying:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		pentris.StatusPaused:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		pentris.StatusLost:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// RenderHUD renders the score panel shown next to the board.
func RenderHUD(s pentris.Snapshot) string {
	var b strings.Builder
	b.WriteString(hudTitleStyle.Render(s.Set.Title()))
	b.WriteString("\n\n")

	line := func(label, value string) {
		b.WriteString(hudLabelStyle.Render(fmt.Sprintf("%-9s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}
	line("Score", fmt.Sprintf("%d", s.Score))
	line("Lines", fmt.Sprintf("%d", s.Lines))
	line("Level", fmt.Sprintf("%d", s.Level))
	line("Speed", fmt.Sprintf("%dms", s.Interval.Milliseconds()))
	line("Time", formatElapsed(s.Elapsed))
	line("Status", statusStyles[s.Status].Render(s.Status.String()))

	switch s.Status {
	case pentris.StatusPaused:
		b.WriteString("\nP to resume")
	case pentris.StatusLost:
		b.WriteString("\nR to play again")
	}

	return hudPanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
