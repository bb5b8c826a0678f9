package snowdodge

import "github.com/vovakirdan/snow-dodge/internal/config"

// Spawner rolls new obstacles on a jittered timer.
type Spawner struct {
	tuning     *config.Tuning
	difficulty *config.Difficulty
	rng        Source
	nextID     uint64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(t *config.Tuning, d *config.Difficulty, rng Source) *Spawner {
	return &Spawner{tuning: t, difficulty: d, rng: rng}
}

// Reset restarts obstacle numbering.
func (sp *Spawner) Reset() {
	sp.nextID = 0
}

// Update counts the spawn timer down and appends obstacles when it expires.
func (sp *Spawner) Update(obstacles []Obstacle, s *Session, w World, progress, dt float64) []Obstacle {
	st := sp.tuning.Spawn

	s.SpawnInterval = sp.difficulty.SpawnInterval(progress)
	s.SpawnTimer -= dt
	if s.SpawnTimer > 0 {
		return obstacles
	}

	s.SpawnTimer = s.SpawnInterval * uniform(sp.rng, st.JitterMin, st.JitterMax)
	obstacles = append(obstacles, sp.Spawn(w, s.Speed))
	s.Stats.Spawned++

	if st.DoubleChance > 0 && sp.rng.Float64() < st.DoubleChance {
		obstacles = append(obstacles, sp.Spawn(w, s.Speed*st.DoubleSpeed))
		s.Stats.Spawned++
	}
	return obstacles
}

// Spawn rolls one obstacle above the field, falling at about speed px/s.
func (sp *Spawner) Spawn(w World, speed float64) Obstacle {
	st := sp.tuning.Spawn
	ot := sp.tuning.Obstacles

	kind := KindTree
	size := ot.Tree
	switch roll := sp.rng.Float64(); {
	case roll < st.RockBelow:
		kind, size = KindRock, ot.Rock
	case roll < st.FlagBelow:
		kind, size = KindFlag, ot.Flag
	}

	sz := uniform(sp.rng, size.Min, size.Max)
	x := uniform(sp.rng, w.LaneLeft+sz, w.LaneRight-sz)
	drift := uniform(sp.rng, -ot.DriftMax, ot.DriftMax)
	vy := speed * uniform(sp.rng, st.FallJitterMin, st.FallJitterMax)

	sp.nextID++
	return Obstacle{
		ID:     sp.nextID,
		Kind:   kind,
		X:      x,
		Y:      -sz - st.TopOffset,
		Size:   sz,
		Radius: sz / 2,
		Drift:  drift,
		VY:     vy,
	}
}
