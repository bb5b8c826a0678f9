package snowdodge

import (
	"math"

	"github.com/vovakirdan/snow-dodge/internal/core"
)

// Pilot chooses the steering intent for the next tick.
type Pilot interface {
	Next(e *Engine) core.Intent
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func(e *Engine) core.Intent

// Next calls f(e).
func (f PilotFunc) Next(e *Engine) core.Intent { return f(e) }

// Fixed policies for headless runs.
var (
	IdlePilot  Pilot = PilotFunc(func(*Engine) core.Intent { return core.Intent{} })
	BoostPilot Pilot = PilotFunc(func(*Engine) core.Intent { return core.Intent{Boost: true} })
)

// Autopilot dodges the nearest hazard on a collision course, steers toward
// flags and tucks when the way ahead is clear.
type Autopilot struct {
	Lookahead float64 // Seconds of fall time considered
	Clearance float64 // Extra px kept from hazards
	Deadband  float64 // px within which the rider stops correcting
}

// NewAutopilot returns an autopilot with working defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 1.1, Clearance: 14, Deadband: 6}
}

// Next implements Pilot.
func (a *Autopilot) Next(e *Engine) core.Intent {
	p := e.Player()
	w := e.World()
	t := e.Tuning()
	hy := p.Y - t.Player.HitLift

	var (
		threat, flag   Obstacle
		hasThreat      bool
		hasFlag        bool
		threatT, flagT = math.Inf(1), math.Inf(1)
		threatReach    float64
	)
	for _, o := range e.Obstacles() {
		if o.Hit || o.VY <= 0 {
			continue
		}
		eta := (hy - o.Y) / o.VY
		if eta < -0.05 || eta > a.Lookahead {
			continue
		}
		reach := (o.Radius+p.Radius)*t.Collision.HitboxFactor + a.Clearance
		switch {
		case o.Kind.Hazard():
			if math.Abs(o.X-p.X) < reach && eta < threatT {
				threat, threatT, threatReach, hasThreat = o, eta, reach, true
			}
		case eta < flagT:
			flag, flagT, hasFlag = o, eta, true
		}
	}

	var in core.Intent
	switch {
	case hasThreat:
		left := threat.X >= p.X
		roomLeft := p.X - (w.LaneLeft + t.Player.Margin)
		roomRight := (w.LaneRight - t.Player.Margin) - p.X
		if left && roomLeft < threatReach {
			left = false
		} else if !left && roomRight < threatReach {
			left = true
		}
		in.Left, in.Right = left, !left
	case hasFlag:
		a.steerToward(&in, p.X, flag.X)
		in.Boost = true
	default:
		a.steerToward(&in, p.X, (w.LaneLeft+w.LaneRight)/2)
		in.Boost = true
	}
	return in
}

func (a *Autopilot) steerToward(in *core.Intent, x, target float64) {
	switch dx := target - x; {
	case dx < -a.Deadband:
		in.Left = true
	case dx > a.Deadband:
		in.Right = true
	}
}
