package core

// Waveform selects the oscillator shape of an audio cue.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Cue is a discrete sound request: one oscillator note with a decaying gain.
type Cue struct {
	Wave     Waveform
	Freq     float64 // Hz
	Duration float64 // seconds
	Gain     float64 // peak linear gain
}

// CueSink receives cue requests. Play must not block and may drop cues.
type CueSink interface {
	Play(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(c Cue)

// Play calls f(c).
func (f CueFunc) Play(c Cue) { f(c) }

// NopCues discards every cue.
var NopCues CueSink = CueFunc(func(Cue) {})
