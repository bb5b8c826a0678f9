package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
// Must match defaults/settings.yaml.
func DefaultSettings() Settings {
	return Settings{
		Display: DisplaySettings{
			FPS:      60,
			MaxDelta: 0.033,
		},
		Game: GameSettings{
			Variant: VariantClassic,
			Seed:    0,
		},
		Input: InputSettings{
			HoldMS: 180,
		},
		Audio: AudioSettings{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
			Queue:      32,
		},
		Log: LogSettings{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
