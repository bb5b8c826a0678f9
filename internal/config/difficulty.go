package config

import "github.com/vovakirdan/snow-dodge/internal/core"

// Ramp interpolates a value from Start (progress 0) to End (progress 1).
type Ramp struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// At returns the ramp value at progress p, clamped to [0, 1].
func (r Ramp) At(p float64) float64 {
	return core.Lerp(r.Start, r.End, core.ClampF(p, 0, 1))
}

// Difficulty derives the progress-dependent parameters of a run.
type Difficulty struct {
	t Tuning
}

// NewDifficulty creates a difficulty model for the given tuning.
func NewDifficulty(t Tuning) *Difficulty {
	return &Difficulty{t: t}
}

// TargetSpeed returns the speed the rider is steered toward.
func (d *Difficulty) TargetSpeed(progress, boost float64) float64 {
	s := d.t.Speed
	return s.Base + core.ClampF(progress, 0, 1)*s.ProgressGain + core.ClampF(boost, 0, 1)*s.BoostBonus
}

// SpawnInterval returns the mean seconds between spawns.
func (d *Difficulty) SpawnInterval(progress float64) float64 {
	return d.t.Spawn.Interval.At(progress)
}

// DriftScale returns the multiplier applied to obstacle drift.
func (d *Difficulty) DriftScale(progress float64) float64 {
	return d.t.Obstacles.Drift.At(progress)
}
