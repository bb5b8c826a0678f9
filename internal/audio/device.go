package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Device is an output that plays a single long-lived streamer.
// Lock and Unlock guard changes to streamers the device is reading.
type Device interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// Speaker is the system audio output. Every method forwards to the
// package-level speaker, so only one Speaker may be open at a time.
type Speaker struct{}

// Init opens the output device.
func (Speaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

// Play starts streaming s.
func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }

// Lock pauses the output callback so streamers can be changed safely.
func (Speaker) Lock() { speaker.Lock() }

// Unlock resumes the output callback.
func (Speaker) Unlock() { speaker.Unlock() }

// Close releases the device.
func (Speaker) Close() { speaker.Close() }
