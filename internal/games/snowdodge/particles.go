package snowdodge

import (
	"math"

	"github.com/vovakirdan/snow-dodge/internal/core"
)

// particleLaw holds the motion constants of one particle pool.
type particleLaw struct {
	gravity float64
	dragX   float64 // Fraction of vx kept per second
	dragY   float64 // Fraction of vy kept per second, 1 for none
}

var (
	puffLaw   = particleLaw{gravity: 620, dragX: 0.01, dragY: 1}
	debrisLaw = particleLaw{gravity: 1200, dragX: 0.12, dragY: 0.35}
)

// integrate ages the pool, drops expired particles and moves the rest.
// Velocity is updated before position.
func (l particleLaw) integrate(ps []Particle, dt float64) []Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.VX = core.Decay(p.VX, l.dragX, dt)
		p.VY += l.gravity * dt
		if l.dragY != 1 {
			p.VY = core.Decay(p.VY, l.dragY, dt)
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rot += p.Spin * dt
		kept = append(kept, p)
	}
	return kept
}

func (e *Engine) updateParticles(dt float64) {
	e.puffs = puffLaw.integrate(e.puffs, dt)
	e.debris = debrisLaw.integrate(e.debris, dt)
}

func (e *Engine) spawnPuff(x, y float64, n int) {
	for range n {
		e.puffs = append(e.puffs, Particle{
			X:      x,
			Y:      y,
			VX:     uniform(e.rng, -220, 220),
			VY:     uniform(e.rng, -220, 80),
			Life:   uniform(e.rng, 0.35, 0.7),
			Radius: uniform(e.rng, 2, 5),
		})
	}
}

func (e *Engine) spawnDebris(x, y float64, n int) {
	e.debris = e.debris[:0]
	for range n {
		e.debris = append(e.debris, Particle{
			X:      x,
			Y:      y,
			VX:     uniform(e.rng, -520, 520),
			VY:     uniform(e.rng, -620, -120),
			Rot:    uniform(e.rng, 0, 2*math.Pi),
			Spin:   uniform(e.rng, -8, 8),
			Radius: uniform(e.rng, 6, 14) / 2,
			Life:   uniform(e.rng, 0.8, 1.4),
		})
	}
}
