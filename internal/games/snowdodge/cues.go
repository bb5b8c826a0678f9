package snowdodge

import "github.com/vovakirdan/snow-dodge/internal/core"

// Sound cues emitted by the engine.
var (
	CueStart  = core.Cue{Wave: core.WaveTriangle, Freq: 660, Duration: 0.08, Gain: 0.05}
	CuePause  = core.Cue{Wave: core.WaveSquare, Freq: 240, Duration: 0.06, Gain: 0.04}
	CueResume = core.Cue{Wave: core.WaveSquare, Freq: 360, Duration: 0.06, Gain: 0.04}
	CueFlag   = core.Cue{Wave: core.WaveSine, Freq: 740, Duration: 0.07, Gain: 0.05}
	CueHit    = core.Cue{Wave: core.WaveSquare, Freq: 200, Duration: 0.09, Gain: 0.06}

	// CueKnockout ends a multi-hit run.
	CueKnockout = core.Cue{Wave: core.WaveSawtooth, Freq: 110, Duration: 0.30, Gain: 0.07}

	// CueConfirm is played by hosts when sound is switched back on.
	CueConfirm = core.Cue{Wave: core.WaveSine, Freq: 520, Duration: 0.06, Gain: 0.04}
)

// CueGoal is played when the finish line is crossed.
var CueGoal = []core.Cue{
	{Wave: core.WaveTriangle, Freq: 880, Duration: 0.12, Gain: 0.06},
	{Wave: core.WaveTriangle, Freq: 990, Duration: 0.10, Gain: 0.05},
}

// CueCrash is played on a one-hit wipeout.
var CueCrash = []core.Cue{
	{Wave: core.WaveSawtooth, Freq: 160, Duration: 0.10, Gain: 0.07},
	{Wave: core.WaveSquare, Freq: 90, Duration: 0.14, Gain: 0.06},
	{Wave: core.WaveTriangle, Freq: 60, Duration: 0.22, Gain: 0.05},
}

func (e *Engine) play(cues ...core.Cue) {
	for _, c := range cues {
		e.cues.Play(c)
	}
}
