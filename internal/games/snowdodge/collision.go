package snowdodge

import "github.com/vovakirdan/snow-dodge/internal/core"

// resolveCollisions tests the rider against every obstacle not yet hit.
// Scanning stops once the run leaves Running, so a tick holds at most one
// terminal event.
func (e *Engine) resolveCollisions() {
	p := &e.player
	hy := p.Y - e.tuning.Player.HitLift
	factor := e.tuning.Collision.HitboxFactor

	for i := range e.obstacles {
		if e.session.Phase != PhaseRunning {
			return
		}
		o := &e.obstacles[i]
		if o.Hit {
			continue
		}
		if !core.CirclesOverlap(p.X, hy, p.Radius, o.X, o.Y, o.Radius, factor) {
			continue
		}
		if o.Kind.Hazard() && p.Invuln > 0 {
			continue
		}

		o.Hit = true
		if o.Kind.Hazard() {
			e.takeHit(*o)
		} else {
			e.collectFlag(*o)
		}
	}
}

func (e *Engine) collectFlag(o Obstacle) {
	s := &e.session
	h := e.tuning.Health

	s.Stats.Flags++
	s.Distance = core.ClampF(s.Distance+e.tuning.Collision.FlagBonus, 0, s.Goal)

	if h.HealChance > 0 && e.rng.Float64() < h.HealChance {
		e.player.HP = min(e.player.HP+1, e.player.MaxHP)
	}

	e.spawnPuff(o.X, o.Y, e.tuning.Effects.FlagPuff)
	e.play(CueFlag)

	if s.Distance >= s.Goal {
		e.finish()
	}
}

func (e *Engine) takeHit(o Obstacle) {
	p := &e.player
	s := &e.session

	s.Stats.Hits++
	p.HP = max(p.HP-1, 0)
	if p.HP == 0 {
		e.crash()
		return
	}

	h := e.tuning.Health
	p.Invuln = h.Invulnerable

	dir := core.Sign(p.X - o.X)
	if dir == 0 {
		dir = 1
	}
	p.VX = core.ClampF(dir*h.Knockback, -p.MaxSpeedX, p.MaxSpeedX)

	s.Flash = max(s.Flash, 0.5)
	s.Shake = max(s.Shake, 0.5)
	e.spawnPuff(p.X, p.Y, e.tuning.Effects.HitPuff)
	e.play(CueHit)
}

// crash ends the run. One-hit variants get the full wipeout with debris.
func (e *Engine) crash() {
	p := &e.player
	s := &e.session
	fx := e.tuning.Effects

	s.Phase = PhaseGameOver
	p.HP = 0
	s.CrashClock = 0
	s.CrashX = p.X
	s.CrashY = p.Y
	s.Flash = 1
	s.Shake = 1

	e.spawnPuff(p.X, p.Y+10, fx.CrashPuff)
	if fx.Debris > 0 {
		e.spawnDebris(p.X, p.Y+6, fx.Debris)
	}

	if p.MaxHP > 1 {
		e.play(CueKnockout)
	} else {
		e.play(CueCrash...)
	}
}
