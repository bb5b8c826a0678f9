package core

import "time"

// HoldTracker turns key-press events into held state.
//
// Terminals report presses and auto-repeats but no releases, so an action is
// considered held for a fixed window after its most recent press. The caller
// supplies timestamps; the tracker never reads the clock.
type HoldTracker struct {
	window time.Duration
	until  map[Action]time.Time
}

// NewHoldTracker creates a tracker that keeps actions held for window after each press.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		until:  make(map[Action]time.Time),
	}
}

// Press records a press of a at time now.
// Steering is exclusive: pressing one direction releases the other.
func (h *HoldTracker) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Held reports whether a is still held at time now.
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply sets every action still held at now on the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	for k := range h.until {
		delete(h.until, k)
	}
}
