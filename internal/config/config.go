// Package config provides YAML-based host settings and the built-in gameplay
// tuning variants for Snow Dodge.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings contains everything the host reads from the settings file.
type Settings struct {
	Display DisplaySettings `yaml:"display"`
	Game    GameSettings    `yaml:"game"`
	Input   InputSettings   `yaml:"input"`
	Audio   AudioSettings   `yaml:"audio"`
	Log     LogSettings     `yaml:"log"`
}

// DisplaySettings controls the frame loop.
type DisplaySettings struct {
	FPS      int     `yaml:"fps"`
	MaxDelta float64 `yaml:"max_delta"` // Upper bound on dt handed to the simulation
}

// GameSettings selects the variant and seed.
type GameSettings struct {
	Variant string `yaml:"variant"`
	Seed    int64  `yaml:"seed"`
}

// InputSettings controls key hold emulation.
type InputSettings struct {
	HoldMS int `yaml:"hold_ms"`
}

// AudioSettings controls cue playback.
type AudioSettings struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
	Queue      int     `yaml:"queue"` // Pending cues before new ones are dropped
}

// LogSettings controls the file logger.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// HoldDuration returns the key hold window.
func (s Settings) HoldDuration() time.Duration {
	return time.Duration(s.Input.HoldMS) * time.Millisecond
}

// Validate checks that every value is usable.
func (s Settings) Validate() error {
	var problems []string

	if s.Display.FPS < 1 || s.Display.FPS > 240 {
		problems = append(problems, fmt.Sprintf("display.fps %d out of range [1, 240]", s.Display.FPS))
	}
	if s.Display.MaxDelta <= 0 || s.Display.MaxDelta > 0.25 {
		problems = append(problems, fmt.Sprintf("display.max_delta %g out of range (0, 0.25]", s.Display.MaxDelta))
	}
	if _, err := TuningFor(s.Game.Variant); err != nil {
		problems = append(problems, fmt.Sprintf("game.variant %q unknown", s.Game.Variant))
	}
	if s.Input.HoldMS < 30 || s.Input.HoldMS > 1000 {
		problems = append(problems, fmt.Sprintf("input.hold_ms %d out of range [30, 1000]", s.Input.HoldMS))
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		problems = append(problems, fmt.Sprintf("audio.volume %g out of range [0, 1]", s.Audio.Volume))
	}
	if s.Audio.SampleRate < 8000 || s.Audio.SampleRate > 192000 {
		problems = append(problems, fmt.Sprintf("audio.sample_rate %d out of range [8000, 192000]", s.Audio.SampleRate))
	}
	if s.Audio.Queue < 1 || s.Audio.Queue > 1024 {
		problems = append(problems, fmt.Sprintf("audio.queue %d out of range [1, 1024]", s.Audio.Queue))
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q must be debug, info, warn or error", s.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(problems, "; "))
	}
	return nil
}
