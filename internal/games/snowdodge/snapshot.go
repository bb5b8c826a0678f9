package snowdodge

// Snapshot is a copy of the complete engine state, detached from the engine.
type Snapshot struct {
	Phase     string
	Session   Session
	Progress  float64
	Player    Player
	Obstacles []Obstacle
	Puffs     []Particle
	Debris    []Particle
}

// Snapshot returns the current state. Empty pools are nil.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:     e.session.Phase.String(),
		Session:   e.session,
		Progress:  e.session.Progress(),
		Player:    e.player,
		Obstacles: cloneSlice(e.obstacles),
		Puffs:     cloneSlice(e.puffs),
		Debris:    cloneSlice(e.debris),
	}
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return append([]T(nil), s...)
}
