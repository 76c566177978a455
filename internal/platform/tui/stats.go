package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

// Stats panel layout constants
const (
	statsMinWidth = 60 // Minimum terminal width to show the panel
	hudHeight     = 12 // Rows taken by the score panel above the table
	statsMinRows  = 5  // Table rows needed below the score panel
)

// StatsTable shows how many pieces of each type spawned this game.
type StatsTable struct {
	table table.Model
	set   pentris.PieceSet
}

// NewStatsTable creates a stats table for the set, at most height rows tall.
func NewStatsTable(set pentris.PieceSet, height int) StatsTable {
	columns := []table.Column{
		{Title: "Piece", Width: 6},
		{Title: "Count", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(height-2, 1)), // Header and border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	st := StatsTable{table: t, set: set}
	st.Update(pentris.Snapshot{})
	return st
}

// Update refreshes the counts from a snapshot.
func (st *StatsTable) Update(s pentris.Snapshot) {
	members := st.set.Members()
	rows := make([]table.Row, len(members))
	for i, t := range members {
		rows[i] = table.Row{t.String(), fmt.Sprintf("%d", s.Stats[t])}
	}
	st.table.SetRows(rows)
}

// SetHeight resizes the table after a window change.
func (st *StatsTable) SetHeight(height int) {
	st.table.SetHeight(max(height-2, 1))
}

// View renders the table inside a panel.
func (st StatsTable) View() string {
	return hudPanelStyle.Render(st.table.View())
}
