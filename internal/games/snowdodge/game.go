package snowdodge

import (
	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
	"github.com/vovakirdan/snow-dodge/internal/registry"
)

// Virtual pixels per terminal cell. Terminal cells are about twice as tall as wide.
const (
	CellW = 12
	CellH = 24
)

// Game adapts the Engine to the registry.Game interface.
type Game struct {
	tuning config.Tuning
	engine *Engine
	config core.RuntimeConfig
}

// NewGame creates a game for the given variant. Reset must be called before Step.
func NewGame(t config.Tuning) *Game {
	return &Game{tuning: t}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.tuning.Name
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.tuning.Title
}

// WorldFor returns the field geometry for a screen of cols×rows cells.
func WorldFor(cols, rows int) World {
	return NewWorld(float64(cols*CellW), float64(rows*CellH))
}

// Reset builds an idle engine for the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.engine = New(g.tuning, WorldFor(cfg.ScreenW, cfg.ScreenH), NewSource(cfg.Seed), cfg.CueSink())
}

// Resize adapts the field to a new screen size. Running or paused runs keep
// their geometry until the next restart.
func (g *Game) Resize(cols, rows int) {
	g.config.ScreenW, g.config.ScreenH = cols, rows
	if g.engine != nil {
		g.engine.SetWorld(WorldFor(cols, rows))
	}
}

// Step applies discrete commands and advances the simulation by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionStart) {
		g.engine.Reset()
	}
	if in.Has(core.ActionPause) {
		g.engine.TogglePause()
	}
	g.engine.Update(dt, in.Intent())

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		dst.Clear()
		return
	}
	Render(dst, g.engine)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.Session()
	return core.GameState{
		Score:    int(s.Distance),
		HP:       g.engine.Player().HP,
		Running:  s.Phase == PhaseRunning || s.Phase == PhasePaused,
		Paused:   s.Phase == PhasePaused,
		Finished: s.Phase == PhaseFinished,
		GameOver: s.Phase == PhaseGameOver,
	}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register both variants with the registry
func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return NewGame(config.Classic())
	})
	registry.Register(config.VariantHardy, func() registry.Game {
		return NewGame(config.Hardy())
	})
}
