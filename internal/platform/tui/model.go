package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
	"github.com/vovakirdan/snow-dodge/internal/registry"
)

// Sound is the audio side of the host: a cue sink that can be muted.
type Sound interface {
	core.CueSink
	ToggleMute() bool
}

// Options configures a game session.
type Options struct {
	Settings config.Settings
	Logger   *log.Logger // nil discards
	Sound    Sound       // nil is silent
	MuteCue  core.Cue    // Played when sound is switched back on
}

// RunResult describes how a run ended.
type RunResult struct {
	GameID   string
	Title    string
	State    core.GameState
	Duration time.Duration // Wall time from start to end
}

// Outcome returns a short label for the result.
func (r RunResult) Outcome() string {
	switch {
	case r.State.Finished:
		return "finished"
	case r.State.GameOver:
		return "wipeout"
	default:
		return "abandoned"
	}
}

// footerHeight is the number of rows below the play field.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *core.HoldTracker
	commands core.InputFrame // Discrete actions since the last tick
	state    core.GameState
	maxDelta float64
	lastTick time.Time
	started  time.Time
	now      func() time.Time
	sound    Sound
	muteCue  core.Cue
	logger   *log.Logger
	results  *[]RunResult
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
// cfg.ScreenH is the full terminal height; one row is kept for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound != nil {
		cfg.Cues = opts.Sound
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    core.NewHoldTracker(opts.Settings.HoldDuration()),
		commands: core.NewInputFrame(),
		maxDelta: opts.Settings.Display.MaxDelta,
		now:      time.Now,
		sound:    opts.Sound,
		muteCue:  opts.MuteCue,
		logger:   opts.Logger,
		results:  &[]RunResult{},
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		if !m.state.Ended() && m.state.Running {
			m.record()
		}
		return m, tea.Quit

	case action == core.ActionMute:
		m.toggleMute()

	case Held(action):
		m.holds.Press(action, m.now())

	case action != core.ActionNone:
		if action == core.ActionStart {
			m.holds.Reset()
		}
		m.commands.Set(action)
	}

	return m, nil
}

func (m Model) toggleMute() {
	if m.sound == nil {
		return
	}
	on := m.sound.ToggleMute()
	if on {
		m.sound.Play(m.muteCue)
	}
	m.logger.Debug("sound toggled", "on", on)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-footerHeight, 1)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = rows
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, rows)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	dt = core.ClampF(dt, 0, m.maxDelta)

	frame := m.commands.Clone()
	m.holds.Apply(&frame, now)
	m.commands.Clear()

	prev := m.state
	m.state = m.game.Step(dt, frame).State

	if m.state.Running && (!prev.Running || frame.Has(core.ActionStart)) {
		m.started = now
		m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	}
	if m.state.Ended() && !prev.Ended() {
		m.record()
	}

	return m, tickCmd(m.config.TickRate)
}

// record stores and logs the outcome of the current run.
func (m Model) record() {
	r := RunResult{
		GameID: m.game.ID(),
		Title:  m.game.Title(),
		State:  m.state,
	}
	if !m.started.IsZero() && !m.lastTick.IsZero() {
		r.Duration = m.lastTick.Sub(m.started)
	}
	*m.results = append(*m.results, r)
	m.logger.Info("run ended",
		"game", r.GameID,
		"outcome", r.Outcome(),
		"distance", r.State.Score,
		"hp", r.State.HP,
		"duration", r.Duration.Round(100*time.Millisecond),
	)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snowdodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Results returns the runs that ended during this session, oldest first.
func (m Model) Results() []RunResult {
	return *m.results
}

// Run starts the Bubble Tea program and returns the recorded runs.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) ([]RunResult, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model.Results(), fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Results(), nil
	}
	return model.Results(), nil
}
