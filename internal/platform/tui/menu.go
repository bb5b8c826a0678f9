package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
	"github.com/vovakirdan/snow-dodge/internal/registry"
)

// Menu layout constants
const (
	maxResultRows = 5 // Most recent runs shown under the picker
	menuChrome    = 8 // Rows used by title, borders and help
)

// MenuItem is a selectable variant.
type MenuItem struct {
	GameID string
	Title  string
	Tuning config.Tuning
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []MenuItem
	results  []RunResult
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	width    int
	height   int
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a picker over every registered variant with known tuning.
// results are shown newest first.
func NewMenuModel(cfg core.RuntimeConfig, results []RunResult) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		t, err := config.TuningFor(g.ID)
		if err != nil {
			continue
		}
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Tuning: t})
	}

	m := MenuModel{
		items:   items,
		results: results,
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		config:  cfg,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the variant table for the current size.
func (m MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Variant", Width: 22},
		{Title: "HP", Width: 4},
		{Title: "Goal", Width: 7},
		{Title: "Flag", Width: 6},
		{Title: "Spawn", Width: 11},
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		t := it.Tuning
		rows[i] = table.Row{
			it.Title,
			fmt.Sprintf("%d", t.Health.MaxHP),
			fmt.Sprintf("%.0fm", t.Goal.Distance),
			fmt.Sprintf("+%.0fm", t.Collision.FlagBonus),
			fmt.Sprintf("%.2f→%.2fs", t.Spawn.Interval.Start, t.Spawn.Interval.End),
		}
	}

	height := max(min(len(rows)+1, m.height-menuChrome-maxResultRows), 2)
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25")).
		Bold(false)
	tbl.SetStyles(s)

	return tbl
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.items) {
				selected := m.items[c]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("117"))
	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N O W   D O D G E"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No variants registered."), m.width))
	} else {
		b.WriteString(menuBoxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderResults lists the most recent runs of this session.
func (m MenuModel) renderResults() string {
	if len(m.results) == 0 {
		return menuDimStyle.Italic(true).Render("No runs yet this session.") + "\n"
	}

	var b strings.Builder
	b.WriteString("Recent runs\n")
	for i, r := range m.results {
		if i == maxResultRows {
			break
		}
		fmt.Fprintf(&b, "  %-20s %-9s %5dm  %s\n",
			r.Title, r.Outcome(), r.State.Score, r.Duration.Round(100*time.Millisecond))
	}
	return menuDimStyle.Render(b.String())
}

// Selected returns the selected item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig, results []RunResult) (MenuResult, error) {
	model := NewMenuModel(cfg, results)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{GameID: m.Selected().GameID, Config: m.Config()}, nil
}
