package tui

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
	"github.com/vovakirdan/snow-dodge/internal/registry"
)

type stepCall struct {
	dt    float64
	frame core.InputFrame
}

// stubGame records what the host hands it.
type stubGame struct {
	id      string
	resets  []core.RuntimeConfig
	steps   []stepCall
	resizes [][2]int
	state   core.GameState
	next    []core.GameState // States returned by successive steps
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *stubGame) Step(dt float64, in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, stepCall{dt: dt, frame: in.Clone()})
	if len(g.next) > 0 {
		g.state, g.next = g.next[0], g.next[1:]
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, g.id)
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(cols, rows int) {
	g.resizes = append(g.resizes, [2]int{cols, rows})
}

type fakeSound struct {
	on    bool
	cues  []core.Cue
	flips int
}

func (s *fakeSound) Play(c core.Cue) { s.cues = append(s.cues, c) }

func (s *fakeSound) ToggleMute() bool {
	s.flips++
	s.on = !s.on
	return s.on
}

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestModel(t *testing.T, g *stubGame, opts Options) Model {
	t.Helper()
	if opts.Settings == (config.Settings{}) {
		opts.Settings = config.DefaultSettings()
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(g, cfg, opts)
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return mm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelReservesFooterRow(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	if m.config.ScreenH != 23 {
		t.Errorf("ScreenH = %d, want 23", m.config.ScreenH)
	}
	if m.screen.Height() != 23 || m.screen.Width() != 80 {
		t.Errorf("screen = %dx%d, want 80x23", m.screen.Width(), m.screen.Height())
	}

	m.Init()
	if len(g.resets) != 1 || g.resets[0].Seed != 7 {
		t.Fatalf("resets = %+v, want one with seed 7", g.resets)
	}
}

func TestNewModelPicksSeedWhenZero(t *testing.T) {
	m := NewModel(&stubGame{id: "a"}, core.DefaultConfig(), Options{Settings: config.DefaultSettings()})
	if m.config.Seed == 0 {
		t.Error("seed stayed 0")
	}
}

func TestTickDeltaIsClamped(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	m, _ = update(t, m, TickMsg(t0.Add(2*time.Second)))
	_, _ = update(t, m, TickMsg(t0.Add(time.Second)))

	want := []float64{0, 0.010, config.DefaultSettings().Display.MaxDelta, 0}
	if len(g.steps) != len(want) {
		t.Fatalf("steps = %d, want %d", len(g.steps), len(want))
	}
	for i, w := range want {
		if math.Abs(g.steps[i].dt-w) > 1e-9 {
			t.Errorf("step %d dt = %v, want %v", i, g.steps[i].dt, w)
		}
	}
}

func TestCommandsDeliveredOnce(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg(t0))
	_, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	first, second := g.steps[0].frame, g.steps[1].frame
	if !first.Has(core.ActionStart) || !first.Has(core.ActionPause) {
		t.Errorf("first frame = %v, want start and pause", first.Actions)
	}
	if second.Has(core.ActionStart) || second.Has(core.ActionPause) {
		t.Errorf("second frame = %v, want no commands", second.Actions)
	}
}

func TestHeldKeysLastForWindow(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	m, _ = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	_, _ = update(t, m, TickMsg(t0.Add(time.Second)))

	for i, want := range []bool{true, true, false} {
		in := g.steps[i].frame.Intent()
		if in.Left != want || in.Boost != want {
			t.Errorf("step %d intent = %+v, want left/boost %v", i, in, want)
		}
	}
}

func TestRestartDropsHeldKeys(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))

	frame := g.steps[0].frame
	if !frame.Has(core.ActionStart) {
		t.Error("restart command not delivered")
	}
	if in := frame.Intent(); in.Boost || in.Left {
		t.Errorf("intent = %+v, want nothing held after restart", in)
	}
}

func TestSteeringIsExclusive(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runes("d"))
	_, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))

	in := g.steps[0].frame.Intent()
	if in.Left || !in.Right {
		t.Errorf("intent = %+v, want right only", in)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &stubGame{id: "a"}, Options{})

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestQuitMidRunRecordsAbandoned(t *testing.T) {
	g := &stubGame{id: "a", next: []core.GameState{{Running: true, Score: 42, HP: 1}}}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runes("q"))

	res := m.Results()
	if len(res) != 1 || res[0].Outcome() != "abandoned" || res[0].State.Score != 42 {
		t.Errorf("results = %+v, want one abandoned run at 42m", res)
	}
}

func TestResizeForwardsPlayField(t *testing.T) {
	g := &stubGame{id: "a"}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if len(g.resizes) != 1 || g.resizes[0] != [2]int{120, 39} {
		t.Errorf("resizes = %v, want [[120 39]]", g.resizes)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestMuteToggle(t *testing.T) {
	snd := &fakeSound{on: true}
	confirm := core.Cue{Wave: core.WaveSine, Freq: 520, Duration: 0.06, Gain: 0.04}
	m := newTestModel(t, &stubGame{id: "a"}, Options{Sound: snd, MuteCue: confirm})

	m, _ = update(t, m, runes("m"))
	if snd.on || len(snd.cues) != 0 {
		t.Errorf("after mute: on=%v cues=%d, want off and silent", snd.on, len(snd.cues))
	}

	_, _ = update(t, m, runes("m"))
	if !snd.on || len(snd.cues) != 1 || snd.cues[0] != confirm {
		t.Errorf("after unmute: on=%v cues=%v, want confirm cue", snd.on, snd.cues)
	}
}

func TestMuteWithoutSound(t *testing.T) {
	m := newTestModel(t, &stubGame{id: "a"}, Options{})
	_, cmd := update(t, m, runes("m"))
	if cmd != nil {
		t.Error("mute without sound returned a command")
	}
}

func TestSoundBecomesCueSink(t *testing.T) {
	g := &stubGame{id: "a"}
	snd := &fakeSound{on: true}
	m := newTestModel(t, g, Options{Sound: snd})
	m.Init()

	g.resets[0].CueSink().Play(core.Cue{Freq: 1})
	if len(snd.cues) != 1 {
		t.Errorf("cues = %d, want 1", len(snd.cues))
	}
}

func TestEndedRunsAreRecordedOnce(t *testing.T) {
	g := &stubGame{id: "a", next: []core.GameState{
		{Running: true},
		{Running: true, Score: 300},
		{Finished: true, Score: 1000},
		{Finished: true, Score: 1000},
		{Running: true},
		{GameOver: true, Score: 12},
	}}
	m := newTestModel(t, g, Options{})

	for i := range len(g.next) {
		m, _ = update(t, m, TickMsg(t0.Add(time.Duration(i)*time.Second)))
	}

	res := m.Results()
	if len(res) != 2 {
		t.Fatalf("results = %d, want 2", len(res))
	}
	if res[0].Outcome() != "finished" || res[0].State.Score != 1000 || res[0].Duration != 2*time.Second {
		t.Errorf("first = %+v, want finished 1000m in 2s", res[0])
	}
	if res[1].Outcome() != "wipeout" || res[1].State.Score != 12 {
		t.Errorf("second = %+v, want wipeout at 12m", res[1])
	}
	if res[0].GameID != "a" || res[0].Title != "Stub a" {
		t.Errorf("first ids = %q %q", res[0].GameID, res[0].Title)
	}
}

func TestViewIncludesHelpFooter(t *testing.T) {
	m := newTestModel(t, &stubGame{id: "slope"}, Options{})
	v := m.View()
	for _, want := range []string{"slope", "left", "boost"} {
		if !containsText(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRegistryResizerContract(t *testing.T) {
	var _ registry.Resizer = (*stubGame)(nil)
	var _ registry.Game = (*stubGame)(nil)
	var _ Sound = (*fakeSound)(nil)
}
