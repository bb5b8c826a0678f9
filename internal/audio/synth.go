// Package audio plays game cues through the system speaker.
//
// Each cue becomes a short oscillator note with an exponential fade, mixed
// into a single beep.Mixer. Playback is best effort: without a device the
// player stays silent and the game runs unchanged.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/snow-dodge/internal/core"
)

// releaseFloor is the gain a cue fades to by the end of its duration.
const releaseFloor = 0.0001

// oscillator generates one waveform for a fixed number of samples.
type oscillator struct {
	wave     core.Waveform
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	duration int
}

// NewOscillator creates a streamer producing wave at freq for duration.
func NewOscillator(wave core.Waveform, freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:     wave,
		freq:     freq,
		rate:     rate,
		duration: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveAt evaluates a unit-amplitude waveform at phase in [0, 1).
func waveAt(w core.Waveform, phase float64) float64 {
	switch w {
	case core.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case core.WaveSawtooth:
		return 2*phase - 1
	case core.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// fade scales a stream from gain down to releaseFloor along an exponential curve.
type fade struct {
	streamer beep.Streamer
	gain     float64
	ratio    float64 // Per-sample multiplier
}

// NewFade wraps s with an exponential release lasting duration.
func NewFade(s beep.Streamer, gain float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	n := max(rate.N(duration), 1)
	ratio := 1.0
	if gain > releaseFloor {
		ratio = math.Pow(releaseFloor/gain, 1/float64(n))
	}
	return &fade{streamer: s, gain: gain, ratio: ratio}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
		f.gain *= f.ratio
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// CueStreamer renders a cue at the given master volume.
func CueStreamer(c core.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	d := time.Duration(c.Duration * float64(time.Second))
	osc := NewOscillator(c.Wave, c.Freq, d, rate)
	return newVolume(NewFade(osc, c.Gain, d, rate), volume)
}

// newVolume applies a linear volume. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
