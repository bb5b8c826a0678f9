package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Host frames per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Cues     CueSink // Audio collaborator; nil means silent
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// CueSink returns the configured sink, falling back to NopCues.
func (c RuntimeConfig) CueSink() CueSink {
	if c.Cues == nil {
		return NopCues
	}
	return c.Cues
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Meters travelled
	HP       int  // Remaining hit points
	Running  bool // A run is in progress (possibly paused)
	Paused   bool // Whether the game is paused
	Finished bool // Goal reached
	GameOver bool // Run ended by a crash
}

// Ended reports whether the run reached a terminal phase.
func (s GameState) Ended() bool {
	return s.Finished || s.GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
