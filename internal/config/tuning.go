package config

import (
	"errors"
	"fmt"
)

// Variant identifiers. They double as registry game IDs.
const (
	VariantClassic = "snowdodge"
	VariantHardy   = "snowdodge_hardy"
)

// ErrUnknownVariant is returned by TuningFor for unregistered names.
var ErrUnknownVariant = errors.New("unknown variant")

// Tuning holds every gameplay constant of one variant.
// Distances are in virtual pixels, times in seconds, except Goal which is in meters.
type Tuning struct {
	Name      string          `yaml:"name"`
	Title     string          `yaml:"title"`
	Goal      GoalTuning      `yaml:"goal"`
	Player    PlayerTuning    `yaml:"player"`
	Health    HealthTuning    `yaml:"health"`
	Speed     SpeedTuning     `yaml:"speed"`
	Spawn     SpawnTuning     `yaml:"spawn"`
	Obstacles ObstacleTuning  `yaml:"obstacles"`
	Collision CollisionTuning `yaml:"collision"`
	Effects   EffectTuning    `yaml:"effects"`
}

// GoalTuning defines the run length.
type GoalTuning struct {
	Distance      float64 `yaml:"distance"`       // Meters to the finish line
	DistanceScale float64 `yaml:"distance_scale"` // Pixels per meter
}

// PlayerTuning defines rider kinematics.
type PlayerTuning struct {
	Radius    float64 `yaml:"radius"`
	YFraction float64 `yaml:"y_fraction"` // Vertical position as a fraction of field height
	MaxSpeedX float64 `yaml:"max_speed_x"`
	AccelX    float64 `yaml:"accel_x"`
	Friction  float64 `yaml:"friction"` // Fraction of vx kept per second with no steering
	Margin    float64 `yaml:"margin"`   // Distance kept from the lane edges
	MaxTilt   float64 `yaml:"max_tilt"` // Radians at full lateral speed
	HitLift   float64 `yaml:"hit_lift"` // Hitbox centre offset above the rider centre
}

// HealthTuning defines damage rules.
type HealthTuning struct {
	MaxHP        int     `yaml:"max_hp"`
	Invulnerable float64 `yaml:"invulnerable"` // Seconds of immunity after a hit
	Knockback    float64 `yaml:"knockback"`    // Lateral impulse away from the obstacle
	HealChance   float64 `yaml:"heal_chance"`  // Chance a flag restores one hp
}

// SpeedTuning defines the downhill speed model.
type SpeedTuning struct {
	Base         float64 `yaml:"base"`
	ProgressGain float64 `yaml:"progress_gain"` // Added at full progress
	BoostBonus   float64 `yaml:"boost_bonus"`   // Added at full boost
	Smoothing    float64 `yaml:"smoothing"`     // Fraction of the gap left per second
	BoostCharge  float64 `yaml:"boost_charge"`  // Boost gained per second while held
	BoostDecay   float64 `yaml:"boost_decay"`   // Boost lost per second when released
}

// SpawnTuning defines obstacle pacing.
type SpawnTuning struct {
	Interval        Ramp    `yaml:"interval"` // Seconds between spawns, from start to goal
	InitialInterval float64 `yaml:"initial_interval"`
	JitterMin       float64 `yaml:"jitter_min"`
	JitterMax       float64 `yaml:"jitter_max"`
	DoubleChance    float64 `yaml:"double_chance"`
	DoubleSpeed     float64 `yaml:"double_speed"` // Fall speed factor of the extra obstacle
	FallJitterMin   float64 `yaml:"fall_jitter_min"`
	FallJitterMax   float64 `yaml:"fall_jitter_max"`
	RockBelow       float64 `yaml:"rock_below"` // Type roll under this is a rock
	FlagBelow       float64 `yaml:"flag_below"` // Then under this is a flag, otherwise a tree
	TopOffset       float64 `yaml:"top_offset"` // Extra distance above the field when spawned
	CullMargin      float64 `yaml:"cull_margin"`
}

// ObstacleTuning defines obstacle shapes and drift.
type ObstacleTuning struct {
	Tree       Range   `yaml:"tree"`
	Rock       Range   `yaml:"rock"`
	Flag       Range   `yaml:"flag"`
	DriftMax   float64 `yaml:"drift_max"`
	Drift      Ramp    `yaml:"drift"`       // Drift multiplier, from start to goal
	EdgeFactor float64 `yaml:"edge_factor"` // Fraction of size kept inside the lane
}

// CollisionTuning defines hit resolution.
type CollisionTuning struct {
	HitboxFactor float64 `yaml:"hitbox_factor"`
	FlagBonus    float64 `yaml:"flag_bonus"` // Meters awarded per flag
}

// EffectTuning defines cosmetic feedback.
type EffectTuning struct {
	FlagPuff         int     `yaml:"flag_puff"`
	HitPuff          int     `yaml:"hit_puff"`
	CrashPuff        int     `yaml:"crash_puff"`
	Debris           int     `yaml:"debris"`
	FlashDecay       float64 `yaml:"flash_decay"`
	ShakeDecay       float64 `yaml:"shake_decay"`
	FinishFlashDecay float64 `yaml:"finish_flash_decay"`
}

// Range is a closed interval for uniform rolls.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Classic returns the one-hit variant: any tree or rock ends the run.
func Classic() Tuning {
	return Tuning{
		Name:  VariantClassic,
		Title: "Snow Dodge",
		Goal: GoalTuning{
			Distance:      1000,
			DistanceScale: 70, // ~580 px/s average makes the run about two minutes
		},
		Player: PlayerTuning{
			Radius:    18,
			YFraction: 0.76,
			MaxSpeedX: 780,
			AccelX:    2200,
			Friction:  0.0008,
			Margin:    26,
			MaxTilt:   0.35,
			HitLift:   2,
		},
		Health: HealthTuning{
			MaxHP:        1,
			Invulnerable: 0,
			Knockback:    0,
			HealChance:   0,
		},
		Speed: SpeedTuning{
			Base:         520,
			ProgressGain: 80,
			BoostBonus:   140,
			Smoothing:    0.001,
			BoostCharge:  1.8,
			BoostDecay:   2.2,
		},
		Spawn: SpawnTuning{
			Interval:        Ramp{Start: 0.90, End: 0.70},
			InitialInterval: 0.85,
			JitterMin:       0.8,
			JitterMax:       1.2,
			DoubleChance:    0.12,
			DoubleSpeed:     0.95,
			FallJitterMin:   0.85,
			FallJitterMax:   1.10,
			RockBelow:       0.18,
			FlagBelow:       0.26,
			TopOffset:       20,
			CullMargin:      140,
		},
		Obstacles: ObstacleTuning{
			Tree:       Range{Min: 28, Max: 44},
			Rock:       Range{Min: 24, Max: 36},
			Flag:       Range{Min: 18, Max: 26},
			DriftMax:   50,
			Drift:      Ramp{Start: 0.12, End: 0.30},
			EdgeFactor: 0.4,
		},
		Collision: CollisionTuning{
			HitboxFactor: 0.92,
			FlagBonus:    18,
		},
		Effects: EffectTuning{
			FlagPuff:         14,
			HitPuff:          12,
			CrashPuff:        28,
			Debris:           18,
			FlashDecay:       1.6,
			ShakeDecay:       1.8,
			FinishFlashDecay: 2.0,
		},
	}
}

// Hardy returns the three-hit variant with invulnerability, knockback and
// flag healing. Flags pay less and the spawn rate climbs faster, with no
// double spawns.
func Hardy() Tuning {
	t := Classic()
	t.Name = VariantHardy
	t.Title = "Snow Dodge: Hardy"
	t.Health = HealthTuning{
		MaxHP:        3,
		Invulnerable: 1.4,
		Knockback:    420,
		HealChance:   0.35,
	}
	t.Spawn.Interval = Ramp{Start: 0.85, End: 0.55}
	t.Spawn.InitialInterval = 0.80
	t.Spawn.DoubleChance = 0
	t.Collision.FlagBonus = 12
	t.Effects.Debris = 0
	return t
}

// VariantNames lists the built-in variants, canonical first.
func VariantNames() []string {
	return []string{VariantClassic, VariantHardy}
}

// TuningFor returns the built-in tuning for a variant name.
func TuningFor(name string) (Tuning, error) {
	switch name {
	case VariantClassic:
		return Classic(), nil
	case VariantHardy:
		return Hardy(), nil
	default:
		return Tuning{}, fmt.Errorf("config: %w %q", ErrUnknownVariant, name)
	}
}
