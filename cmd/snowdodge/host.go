package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snow-dodge/internal/audio"
	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
	"github.com/vovakirdan/snow-dodge/internal/games/snowdodge"
	"github.com/vovakirdan/snow-dodge/internal/platform/tui"
)

// host bundles what every interactive command needs.
type host struct {
	settings config.Settings
	logger   *log.Logger
	sound    *audio.Player
	closeLog func()
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() (config.Settings, string, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return settings, source, err
	}

	if flagFPS != 0 {
		settings.Display.FPS = flagFPS
	}
	if flagSeed != 0 {
		settings.Game.Seed = flagSeed
	}
	if flagLogFile != "" {
		settings.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	if err := settings.Validate(); err != nil {
		return settings, source, err
	}
	return settings, source, nil
}

// newLogger returns a logger writing to the configured file.
// The terminal belongs to the TUI, so without a file logs are discarded.
func newLogger(s config.LogSettings) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if s.File != "" {
		f, err := os.OpenFile(config.ExpandHome(s.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snowdodge",
	})
	level, err := log.ParseLevel(s.Level)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// openHost loads settings, the logger and the audio device.
func openHost() (*host, error) {
	settings, source, err := loadSettings()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := newLogger(settings.Log)
	if err != nil {
		return nil, err
	}
	logger.Info("settings loaded", "source", source)

	sound, err := audio.Open(settings.Audio, audio.Speaker{})
	if err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
	}

	return &host{
		settings: settings,
		logger:   logger,
		sound:    sound,
		closeLog: closeLog,
	}, nil
}

func (h *host) Close() {
	h.sound.Close()
	if d := h.sound.Dropped(); d > 0 {
		h.logger.Debug("audio cues dropped", "count", d)
	}
	h.closeLog()
}

// runtimeConfig builds the game config from the terminal size and settings.
func (h *host) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, hh, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, hh
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: h.settings.Display.FPS,
		Seed:     h.settings.Game.Seed,
	}
}

func (h *host) options() tui.Options {
	return tui.Options{
		Settings: h.settings,
		Logger:   h.logger,
		Sound:    h.sound,
		MuteCue:  snowdodge.CueConfirm,
	}
}
