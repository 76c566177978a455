package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pentris/internal/config"
	"github.com/vovakirdan/tui-pentris/internal/core"
	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

// SessionOptions configures a play session.
type SessionOptions struct {
	Game    config.PentrisConfig
	Runtime core.RuntimeConfig
	Set     pentris.PieceSet // Zero shows the mode menu first
	Logger  *log.Logger
}

// SessionModel manages the session flow: mode menu -> game -> mode menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	ctx      context.Context
	opts     SessionOptions
	config   core.RuntimeConfig
	menu     ModeModel
	game     *GameModel
	quitting bool
	err      error
}

// NewSessionModel creates a session. Every game started from it runs its own
// loop bound to ctx.
func NewSessionModel(ctx context.Context, opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := SessionModel{
		ctx:    ctx,
		opts:   opts,
		config: opts.Runtime,
	}
	m.menu = m.newMenu()
	if opts.Set != 0 {
		m.err = m.newGame(opts.Set)
	}
	return m
}

// newMenu creates the mode menu with the configured mode preselected.
func (m SessionModel) newMenu() ModeModel {
	menu := NewModeModel(m.config.ScreenW, m.config.ScreenH)
	if set, err := pentris.ParsePieceSet(m.opts.Game.Mode); err == nil {
		menu.SetDefault(set)
	}
	return menu
}

// newGame creates the engine and game model for a set. The loop starts when
// the returned model's Init command runs.
func (m *SessionModel) newGame(set pentris.PieceSet) error {
	engine, err := pentris.NewEngine(pentris.ConfigFrom(m.opts.Game, set, m.config.Seed))
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	game := NewGameModel(m.ctx, engine, m.config, m.opts.Logger)
	m.game = &game
	m.opts.Logger.Debug("new game", "mode", set.String())
	return nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if sel, ok := msg.(ModeSelectedMsg); ok && m.game == nil {
		if err := m.newGame(sel.Set); err != nil {
			m.err = err
			return m, tea.Quit
		}
		// The game model has not seen the current window size yet.
		size := tea.WindowSizeMsg{Width: m.config.ScreenW, Height: m.config.ScreenH}
		next, _ := m.game.Update(size)
		if gm, isGame := next.(GameModel); isGame {
			m.game = &gm
		}
		return m, m.game.Init()
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(ModeModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting || m.err != nil {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local session in the alternate screen and blocks until the
// player quits.
func Run(ctx context.Context, opts SessionOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewSessionModel(ctx, opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := finalModel.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
