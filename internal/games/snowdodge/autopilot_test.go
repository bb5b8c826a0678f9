package snowdodge

import (
	"testing"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
)

func TestAutopilotDodgesHazard(t *testing.T) {
	e, _ := newTestEngine(quiet(config.Classic()), 1)
	e.Reset()

	p := e.Player()
	e.obstacles = append(e.obstacles, Obstacle{
		ID: 1, Kind: KindTree, X: p.X + 5, Y: p.Y - 200, Size: 36, Radius: 18, VY: 520,
	})

	in := NewAutopilot().Next(e)
	if !in.Left || in.Right {
		t.Errorf("intent = %+v, expected to steer left away from the tree", in)
	}
	if in.Boost {
		t.Error("autopilot boosted into a threat")
	}
}

func TestAutopilotUsesRoomyside(t *testing.T) {
	e, _ := newTestEngine(quiet(config.Classic()), 1)
	e.Reset()
	e.player.X = e.world.LaneLeft + e.tuning.Player.Margin

	p := e.Player()
	e.obstacles = append(e.obstacles, Obstacle{
		ID: 1, Kind: KindRock, X: p.X + 2, Y: p.Y - 150, Size: 30, Radius: 15, VY: 520,
	})

	in := NewAutopilot().Next(e)
	if !in.Right {
		t.Errorf("intent = %+v, expected to steer right off the lane edge", in)
	}
}

func TestAutopilotChasesFlag(t *testing.T) {
	e, _ := newTestEngine(quiet(config.Classic()), 1)
	e.Reset()

	p := e.Player()
	e.obstacles = append(e.obstacles, Obstacle{
		ID: 1, Kind: KindFlag, X: p.X + 120, Y: p.Y - 300, Size: 22, Radius: 11, VY: 520,
	})

	in := NewAutopilot().Next(e)
	if !in.Right || !in.Boost {
		t.Errorf("intent = %+v, expected right and boost toward the flag", in)
	}
}

func TestAutopilotClearLane(t *testing.T) {
	e, _ := newTestEngine(quiet(config.Classic()), 1)
	e.Reset()

	in := NewAutopilot().Next(e)
	want := core.Intent{Boost: true}
	if in != want {
		t.Errorf("intent = %+v, expected %+v", in, want)
	}
}

func TestFixedPilots(t *testing.T) {
	e, _ := newTestEngine(config.Classic(), 1)
	if in := IdlePilot.Next(e); in != (core.Intent{}) {
		t.Errorf("IdlePilot = %+v, expected no input", in)
	}
	if in := BoostPilot.Next(e); in != (core.Intent{Boost: true}) {
		t.Errorf("BoostPilot = %+v, expected boost only", in)
	}
}
