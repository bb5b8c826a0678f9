// Package snowdodge implements a downhill obstacle-dodging game.
// The rider steers across a lane while trees, rocks and flags fall toward
// them; the run ends at the goal distance or on a fatal crash.
//
// The Engine is a pure simulation: it never reads the clock, owns no
// goroutines and draws its randomness from an injected Source.
package snowdodge

// Phase is the control state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseFinished
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Kind is the obstacle type.
type Kind int

const (
	KindTree Kind = iota
	KindRock
	KindFlag
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Hazard reports whether touching the obstacle hurts.
func (k Kind) Hazard() bool {
	return k != KindFlag
}

// Play-field size limits in virtual pixels.
const (
	MinWorldW = 240
	MinWorldH = 240
)

// World is the fixed geometry of one session.
type World struct {
	W, H      float64
	LaneLeft  float64
	LaneRight float64
	LaneWidth float64
}

// LaneFraction is the share of the field width taken by the lane.
const LaneFraction = 0.58

// NewWorld builds the geometry for a w×h field with a centred lane.
func NewWorld(w, h float64) World {
	w = max(w, MinWorldW)
	h = max(h, MinWorldH)
	lane := w * LaneFraction
	left := (w - lane) / 2
	return World{
		W:         w,
		H:         h,
		LaneLeft:  left,
		LaneRight: left + lane,
		LaneWidth: lane,
	}
}

// Player is the rider.
type Player struct {
	X, Y      float64
	VX        float64
	Radius    float64
	MaxSpeedX float64
	HP        int
	MaxHP     int
	Invuln    float64 // Seconds of immunity left
	Tilt      float64 // Radians, cosmetic
}

// Obstacle is a falling tree, rock or flag. Hit is sticky.
type Obstacle struct {
	ID     uint64
	Kind   Kind
	X, Y   float64
	Size   float64
	Radius float64
	Drift  float64 // Horizontal px/s before the progress multiplier
	VY     float64
	Hit    bool
}

// Particle is a cosmetic puff or debris piece.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Radius float64
	Rot    float64 // Debris only
	Spin   float64 // Debris only
}

// Stats counts events of the current run.
type Stats struct {
	Spawned int
	Flags   int
	Hits    int
}

// Session is the mutable run state besides the player and the pools.
type Session struct {
	Phase         Phase
	Time          float64 // Gameplay seconds
	Clock         float64 // Cosmetic seconds, runs in terminal phases too
	Distance      float64 // Meters
	Goal          float64 // Meters
	Speed         float64 // px/s
	BaseSpeed     float64 // Smoothed speed
	Boost         float64 // 0..1
	SpawnTimer    float64
	SpawnInterval float64
	CrashClock    float64
	CrashX        float64
	CrashY        float64
	Flash         float64
	Shake         float64
	Stats         Stats
}

// Progress returns Distance / Goal in [0, 1].
func (s Session) Progress() float64 {
	if s.Goal <= 0 {
		return 1
	}
	return min(max(s.Distance/s.Goal, 0), 1)
}
