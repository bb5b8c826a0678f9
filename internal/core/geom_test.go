package core

import (
	"math"
	"testing"
)

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestApproachIsFrameRateIndependent(t *testing.T) {
	const k = 0.001
	steps := []float64{1.0 / 30, 1.0 / 60, 1.0 / 144, 0.2}

	for _, dt := range steps {
		once := Approach(520, 740, k, dt)
		twice := Approach(Approach(520, 740, k, dt/2), 740, k, dt/2)
		if math.Abs(once-twice) > 1e-9 {
			t.Errorf("dt=%f: one step %f, two half steps %f", dt, once, twice)
		}
	}
}

func TestDecayIsFrameRateIndependent(t *testing.T) {
	const k = 0.0008
	v := 780.0

	once := Decay(v, k, 0.5)
	stepped := v
	for i := 0; i < 50; i++ {
		stepped = Decay(stepped, k, 0.01)
	}
	if math.Abs(once-stepped) > 1e-9 {
		t.Errorf("Decay over 0.5s: one step %f, fifty steps %f", once, stepped)
	}
}

func TestApproachConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 600; i++ {
		v = Approach(v, 100, 0.001, 1.0/60)
	}
	if math.Abs(v-100) > 1e-6 {
		t.Errorf("Approach after 10s = %f, expected ~100", v)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		dist     float64
		expected bool
	}{
		{"centres coincide", 0, true},
		{"inside shrunk radius", 40, true},
		{"between shrunk and full radius", 45, false},
		{"far apart", 200, false},
	}

	// Combined radius 48, shrunk to 44.16
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(0, 0, 18, tc.dist, 0, 30, 0.92); got != tc.expected {
				t.Errorf("CirclesOverlap at %f = %v, expected %v", tc.dist, got, tc.expected)
			}
		})
	}
}

func TestSignAndLerp(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Error("Sign returned unexpected values")
	}
	if got := Lerp(0.9, 0.7, 0.5); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("Lerp(0.9, 0.7, 0.5) = %f, expected 0.8", got)
	}
}
