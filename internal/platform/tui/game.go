package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pentris/internal/core"
	"github.com/vovakirdan/tui-pentris/internal/loop"
	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

// SnapshotMsg delivers a new engine snapshot from the game loop.
// Messages from a loop other than the model's own are dropped.
type SnapshotMsg struct {
	Snapshot pentris.Snapshot
	source   *loop.Loop
}

// loopStoppedMsg is sent once the game loop has terminated.
type loopStoppedMsg struct {
	err    error
	source *loop.Loop
}

// GameModel runs one game: it owns a loop, forwards key actions to it and
// renders the snapshots it publishes.
type GameModel struct {
	loop      *loop.Loop
	snapshots <-chan pentris.Snapshot
	ctx       context.Context
	cancel    context.CancelFunc

	snap       pentris.Snapshot
	screen     *core.Screen
	stats      StatsTable
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
	err        error
}

// NewGameModel creates a game model around engine. The loop runs until ctx
// is cancelled or the player quits.
func NewGameModel(ctx context.Context, engine *pentris.Engine, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	ctx, cancel := context.WithCancel(ctx)
	l := loop.New(engine, loop.WithLogger(logger))

	snap := engine.Snapshot()
	w, h := BoardSize(snap.Width, snap.Height)

	return GameModel{
		loop:      l,
		snapshots: l.Subscribe(),
		ctx:       ctx,
		cancel:    cancel,
		snap:      snap,
		screen:    core.NewScreen(w, h),
		stats:     NewStatsTable(engine.Set(), cfg.ScreenH-hudHeight),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Init starts the game loop and begins listening for snapshots.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(m.runLoop(), m.waitForSnapshot())
}

func (m GameModel) runLoop() tea.Cmd {
	l, ctx := m.loop, m.ctx
	return func() tea.Msg {
		return loopStoppedMsg{err: l.Run(ctx), source: l}
	}
}

// waitForSnapshot returns a command that waits for the next loop snapshot.
func (m GameModel) waitForSnapshot() tea.Cmd {
	ch, l := m.snapshots, m.loop
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return SnapshotMsg{Snapshot: s, source: l}
	}
}

// snapshotMsg tags s as coming from this model's loop.
func (m GameModel) snapshotMsg(s pentris.Snapshot) SnapshotMsg {
	return SnapshotMsg{Snapshot: s, source: m.loop}
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.stats.SetHeight(msg.Height - hudHeight)
		return m, nil

	case SnapshotMsg:
		if msg.source != m.loop {
			return m, nil
		}
		m.snap = msg.Snapshot
		m.stats.Update(m.snap)
		return m, m.waitForSnapshot()

	case loopStoppedMsg:
		if msg.source != m.loop {
			return m, nil
		}
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu only when nothing is falling
	if m.keyMapper.IsBack(msg) &&
		(m.snap.Status == pentris.StatusLost || m.snap.Status == pentris.StatusPaused) {
		m.Stop()
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.loop.Send(action)
	}
	return m, nil
}

// Stop cancels the game loop.
func (m GameModel) Stop() {
	m.cancel()
}

// saveScreenshot saves the current board to a text file.
func (m *GameModel) saveScreenshot() {
	DrawBoard(m.screen, m.snap)

	dir := filepath.Join(os.Getenv("HOME"), ".pentris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.snap.Set, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board, the score panel and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("game loop error: %v\n", m.err)
	}

	w, h := BoardSize(m.snap.Width, m.snap.Height)
	if m.config.ScreenW > 0 && m.config.ScreenH > 0 && (m.config.ScreenW < w || m.config.ScreenH < h) {
		return centerText(fmt.Sprintf("Terminal too small: need %dx%d", w, h+1), m.config.ScreenW)
	}

	DrawBoard(m.screen, m.snap)
	board := RenderScreen(m.screen)

	side := RenderHUD(m.snap)
	if m.config.ScreenW >= statsMinWidth && m.config.ScreenH >= hudHeight+statsMinRows {
		side = lipgloss.JoinVertical(lipgloss.Left, side, m.stats.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keyMapper.Keys()))
}

// Snapshot returns the last snapshot received from the loop.
func (m GameModel) Snapshot() pentris.Snapshot {
	return m.snap
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
