// Package core provides fundamental types and utilities for the snow-dodge
// platform. It has no external dependencies (especially no Bubble Tea) so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells, used for HUD panels and banners.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly from a to b by t (t is not clamped).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Decay scales v by k^dt: the remaining fraction after dt seconds when a
// fraction k survives each second. Splitting dt into smaller steps yields the
// same result, which keeps the simulation independent of frame rate.
func Decay(v, k, dt float64) float64 {
	return v * math.Pow(k, dt)
}

// Approach moves v toward target, closing all but k^dt of the gap.
// Like Decay, it is frame-rate independent for a fixed target.
func Approach(v, target, k, dt float64) float64 {
	return v + (target-v)*(1-math.Pow(k, dt))
}

// CirclesOverlap reports whether two circles, with their combined radius
// scaled by factor, strictly overlap.
func CirclesOverlap(ax, ay, ar, bx, by, br, factor float64) bool {
	dx := bx - ax
	dy := by - ay
	rr := (ar + br) * factor
	return dx*dx+dy*dy < rr*rr
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
