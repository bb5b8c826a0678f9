package snowdodge

import (
	"math"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
)

// MaxStep is the longest step Update integrates at once.
const MaxStep = 0.1

// Engine owns one session: the world, the rider, the obstacle list and the
// cosmetic particle pools. It is not safe for concurrent use.
type Engine struct {
	tuning     config.Tuning
	difficulty *config.Difficulty
	world      World
	pending    *World
	rng        Source
	cues       core.CueSink

	player    Player
	obstacles []Obstacle
	puffs     []Particle
	debris    []Particle
	session   Session
	spawner   *Spawner
}

// New creates an idle engine. A nil cues sink is silent.
func New(t config.Tuning, w World, rng Source, cues core.CueSink) *Engine {
	if cues == nil {
		cues = core.NopCues
	}
	e := &Engine{
		tuning:     t,
		difficulty: config.NewDifficulty(t),
		world:      w,
		rng:        rng,
		cues:       cues,
		obstacles:  make([]Obstacle, 0, 32),
		puffs:      make([]Particle, 0, 64),
		debris:     make([]Particle, 0, 32),
	}
	e.spawner = NewSpawner(&e.tuning, e.difficulty, rng)
	e.clear()
	return e
}

// clear puts every mutable field in its fresh state. The phase is left to the caller.
func (e *Engine) clear() {
	t := &e.tuning
	if e.pending != nil {
		e.world = *e.pending
		e.pending = nil
	}
	e.player = Player{
		X:         e.world.W / 2,
		Y:         e.world.H * t.Player.YFraction,
		Radius:    t.Player.Radius,
		MaxSpeedX: t.Player.MaxSpeedX,
		HP:        t.Health.MaxHP,
		MaxHP:     t.Health.MaxHP,
	}
	e.obstacles = e.obstacles[:0]
	e.puffs = e.puffs[:0]
	e.debris = e.debris[:0]
	e.session = Session{
		Phase:         e.session.Phase,
		Goal:          t.Goal.Distance,
		Speed:         t.Speed.Base,
		BaseSpeed:     t.Speed.Base,
		SpawnInterval: t.Spawn.InitialInterval,
		CrashX:        e.player.X,
		CrashY:        e.player.Y,
	}
	e.spawner.Reset()
}

// Reset starts a fresh run from any phase.
func (e *Engine) Reset() {
	e.clear()
	e.session.Phase = PhaseRunning
	e.play(CueStart)
}

// SetWorld changes the field geometry. An idle engine adopts it at once;
// otherwise it takes effect at the next Reset.
func (e *Engine) SetWorld(w World) {
	e.pending = &w
	if e.session.Phase == PhaseIdle {
		e.clear()
	}
}

// TogglePause flips between Running and Paused. Other phases are unaffected.
func (e *Engine) TogglePause() {
	switch e.session.Phase {
	case PhaseRunning:
		e.session.Phase = PhasePaused
		e.play(CuePause)
	case PhasePaused:
		e.session.Phase = PhaseRunning
		e.play(CueResume)
	}
}

// Update advances the simulation by dt seconds with the given steering intent.
// Non-positive or NaN steps are ignored and long ones are capped at MaxStep.
func (e *Engine) Update(dt float64, in core.Intent) {
	if math.IsNaN(dt) || dt <= 0 {
		return
	}
	dt = min(dt, MaxStep)

	s := &e.session
	switch s.Phase {
	case PhaseIdle, PhasePaused:
		return
	case PhaseGameOver:
		s.Clock += dt
		s.CrashClock += dt
		s.Flash = max(0, s.Flash-dt*e.tuning.Effects.FlashDecay)
		s.Shake = max(0, s.Shake-dt*e.tuning.Effects.ShakeDecay)
		e.updateParticles(dt)
		return
	case PhaseFinished:
		s.Clock += dt
		s.Flash = max(0, s.Flash-dt*e.tuning.Effects.FinishFlashDecay)
		e.updateParticles(dt)
		return
	}

	s.Clock += dt
	s.Time += dt
	s.Flash = max(0, s.Flash-dt*e.tuning.Effects.FlashDecay)
	s.Shake = max(0, s.Shake-dt*e.tuning.Effects.ShakeDecay)

	e.updateBoost(dt, in.Boost)

	progress := s.Progress()
	target := e.difficulty.TargetSpeed(progress, s.Boost)
	s.BaseSpeed = core.Approach(s.BaseSpeed, target, e.tuning.Speed.Smoothing, dt)
	s.Speed = s.BaseSpeed

	e.updatePlayer(dt, in)

	s.Distance += s.Speed * dt / e.tuning.Goal.DistanceScale
	if s.Distance >= s.Goal {
		e.finish()
		return
	}

	e.obstacles = e.spawner.Update(e.obstacles, s, e.world, progress, dt)
	e.moveObstacles(dt, progress)
	e.resolveCollisions()
	e.updateParticles(dt)
}

func (e *Engine) updateBoost(dt float64, held bool) {
	s := &e.session
	if held {
		s.Boost += dt * e.tuning.Speed.BoostCharge
	} else {
		s.Boost -= dt * e.tuning.Speed.BoostDecay
	}
	s.Boost = core.ClampF(s.Boost, 0, 1)
}

func (e *Engine) updatePlayer(dt float64, in core.Intent) {
	p := &e.player
	pt := e.tuning.Player

	switch {
	case in.Left && !in.Right:
		p.VX -= pt.AccelX * dt
	case in.Right && !in.Left:
		p.VX += pt.AccelX * dt
	case !in.Left && !in.Right:
		p.VX = core.Decay(p.VX, pt.Friction, dt)
	}

	p.VX = core.ClampF(p.VX, -p.MaxSpeedX, p.MaxSpeedX)
	p.X += p.VX * dt
	p.X = core.ClampF(p.X, e.world.LaneLeft+pt.Margin, e.world.LaneRight-pt.Margin)
	if p.MaxSpeedX > 0 {
		p.Tilt = p.VX / p.MaxSpeedX * pt.MaxTilt
	}
	p.Invuln = max(0, p.Invuln-dt)
}

func (e *Engine) moveObstacles(dt, progress float64) {
	drift := e.difficulty.DriftScale(progress)
	edge := e.tuning.Obstacles.EdgeFactor
	cull := e.world.H + e.tuning.Spawn.CullMargin

	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.Y += o.VY * dt
		o.X += o.Drift * dt * drift
		o.X = core.ClampF(o.X, e.world.LaneLeft+o.Size*edge, e.world.LaneRight-o.Size*edge)
		if o.Y >= cull {
			continue
		}
		kept = append(kept, o)
	}
	e.obstacles = kept
}

// finish clamps the distance to the goal and ends the run. Idempotent.
func (e *Engine) finish() {
	s := &e.session
	s.Distance = s.Goal
	if s.Phase != PhaseRunning {
		return
	}
	s.Phase = PhaseFinished
	e.play(CueGoal...)
}

// Tuning returns the variant parameters.
func (e *Engine) Tuning() config.Tuning { return e.tuning }

// World returns the session geometry.
func (e *Engine) World() World { return e.world }

// Player returns the rider state.
func (e *Engine) Player() Player { return e.player }

// Session returns the run state.
func (e *Engine) Session() Session { return e.session }

// Phase returns the control state.
func (e *Engine) Phase() Phase { return e.session.Phase }

// Obstacles returns the live obstacles. The slice must not be modified.
func (e *Engine) Obstacles() []Obstacle { return e.obstacles }

// Puffs returns the live snow puffs. The slice must not be modified.
func (e *Engine) Puffs() []Particle { return e.puffs }

// Debris returns the live crash debris. The slice must not be modified.
func (e *Engine) Debris() []Particle { return e.debris }
