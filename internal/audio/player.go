package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
)

// ErrNoDevice is wrapped when the audio output cannot be opened.
var ErrNoDevice = errors.New("no audio device")

// bufferLatency is the speaker buffer length.
const bufferLatency = 100 * time.Millisecond

// Player is a core.CueSink that synthesizes cues on a background goroutine.
// Play never blocks; cues are dropped when the queue is full.
type Player struct {
	rate   beep.SampleRate
	volume float64
	device Device
	mixer  *beep.Mixer
	queue  chan core.Cue
	done   chan struct{}
	wg     sync.WaitGroup

	silent  bool
	muted   atomic.Bool
	closed  atomic.Bool
	dropped atomic.Uint64
}

// Silent returns a player that discards everything.
func Silent() *Player {
	return &Player{silent: true}
}

// Open starts playback on dev. Disabled settings yield a silent player.
// When the device fails, Open returns a silent player and an error
// wrapping ErrNoDevice, so callers may log and carry on.
func Open(s config.AudioSettings, dev Device) (*Player, error) {
	if !s.Enabled {
		return Silent(), nil
	}
	if dev == nil {
		return Silent(), fmt.Errorf("audio: %w", ErrNoDevice)
	}

	rate := beep.SampleRate(s.SampleRate)
	if err := dev.Init(rate, rate.N(bufferLatency)); err != nil {
		return Silent(), fmt.Errorf("audio: %w: %v", ErrNoDevice, err)
	}

	p := &Player{
		rate:   rate,
		volume: s.Volume,
		device: dev,
		mixer:  &beep.Mixer{},
		queue:  make(chan core.Cue, max(s.Queue, 1)),
		done:   make(chan struct{}),
	}
	dev.Play(p.mixer)

	p.wg.Add(1)
	go p.loop()
	return p, nil
}

// loop owns the mixer: it turns queued cues into streamers.
func (p *Player) loop() {
	defer p.wg.Done()
	for {
		select {
		case c := <-p.queue:
			s := CueStreamer(c, p.volume, p.rate)
			p.device.Lock()
			p.mixer.Add(s)
			p.device.Unlock()
		case <-p.done:
			return
		}
	}
}

// Play queues a cue. Implements core.CueSink.
func (p *Player) Play(c core.Cue) {
	if p.silent || p.muted.Load() || p.closed.Load() {
		return
	}
	select {
	case p.queue <- c:
	default:
		p.dropped.Add(1)
	}
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	on := p.muted.Load()
	p.muted.Store(!on)
	return on
}

// Muted reports whether cues are being discarded by request.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// IsSilent reports whether the player has no output.
func (p *Player) IsSilent() bool {
	return p.silent
}

// Dropped returns how many cues were discarded because the queue was full.
func (p *Player) Dropped() uint64 {
	return p.dropped.Load()
}

// Close stops playback and releases the device. Safe to call more than once.
func (p *Player) Close() {
	if p.silent || !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.done)
	p.wg.Wait()

	p.device.Lock()
	p.mixer.Clear()
	p.device.Unlock()
	p.device.Close()
}
