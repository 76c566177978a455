package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

// ModeSelectedMsg carries the piece set chosen in the mode menu.
// The menu emits it at most once.
type ModeSelectedMsg struct {
	Set pentris.PieceSet
}

type menuPage int

const (
	pageModes menuPage = iota
	pageAbout
	pageHotKeys
)

type menuEntry struct {
	label string
	set   pentris.PieceSet // Zero for informational entries
	page  menuPage
}

var menuEntries = []menuEntry{
	{label: "Play Tetris", set: pentris.SetTetromino},
	{label: "Play Pentris", set: pentris.SetPentomino},
	{label: "Play Tetris+Pentris", set: pentris.SetBoth},
	{label: "About", page: pageAbout},
	{label: "Hot Keys", page: pageHotKeys},
}

const aboutText = `Pentris is a falling-block game played with pentominoes,
the eighteen shapes made of five squares, and optionally
the seven classic four-square tetrominoes.

Complete a row to clear it. Clearing n rows at once
scores 10 x n x n points. Every ten rows the level
rises and pieces fall faster.`

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// ModeModel lets users choose which piece set to play with.
// About and Hot Keys show a page and return to the list on any key.
type ModeModel struct {
	cursor    int
	page      menuPage
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	selection pentris.PieceSet
	selected  bool
	quitting  bool
}

// NewModeModel creates a new mode selection model.
func NewModeModel(width, height int) ModeModel {
	h := help.New()
	h.ShowAll = true
	return ModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// SetDefault moves the cursor to the entry for set.
func (m *ModeModel) SetDefault(set pentris.PieceSet) {
	for i, entry := range menuEntries {
		if entry.set != 0 && entry.set == set {
			m.cursor = i
			return
		}
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.page != pageModes {
		m.page = pageModes
		return m, nil
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		entry := menuEntries[m.cursor]
		if entry.set == 0 {
			m.page = entry.page
			return m, nil
		}
		if m.selected {
			return m, nil
		}
		m.selected = true
		m.selection = entry.set
		set := entry.set
		return m, func() tea.Msg { return ModeSelectedMsg{Set: set} }
	}

	return m, nil
}

// View renders the menu or the current information page.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case pageAbout:
		return m.viewPage("ABOUT", aboutText)
	case pageHotKeys:
		return m.viewPage("HOT KEYS", m.help.View(m.keyMapper.Keys()))
	}
	return m.viewModes()
}

func (m ModeModel) viewModes() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P E N T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-20s", cursor, entry.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

func (m ModeModel) viewPage(title, body string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hudPanelStyle.Render(body)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Press any key to return", m.width))

	return b.String()
}

// Selected returns the chosen set, or false if still choosing.
func (m ModeModel) Selected() (pentris.PieceSet, bool) {
	return m.selection, m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
