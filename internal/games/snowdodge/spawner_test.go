package snowdodge

import (
	"math"
	"testing"

	"github.com/vovakirdan/snow-dodge/internal/config"
)

func TestSpawnKindRoll(t *testing.T) {
	tun := config.Classic()
	w := NewWorld(960, 576)

	tests := []struct {
		roll float64
		kind Kind
		size config.Range
	}{
		{0.00, KindRock, tun.Obstacles.Rock},
		{0.17, KindRock, tun.Obstacles.Rock},
		{0.18, KindFlag, tun.Obstacles.Flag},
		{0.25, KindFlag, tun.Obstacles.Flag},
		{0.26, KindTree, tun.Obstacles.Tree},
		{0.99, KindTree, tun.Obstacles.Tree},
	}

	for _, tt := range tests {
		src := &fixedSource{values: []float64{tt.roll, 0.5, 0.5, 0.5, 0.5}}
		sp := NewSpawner(&tun, config.NewDifficulty(tun), src)
		o := sp.Spawn(w, 600)

		if o.Kind != tt.kind {
			t.Errorf("roll %v: kind = %v, expected %v", tt.roll, o.Kind, tt.kind)
		}
		wantSize := (tt.size.Min + tt.size.Max) / 2
		if o.Size != wantSize || o.Radius != wantSize/2 {
			t.Errorf("roll %v: size %v radius %v, expected %v and %v", tt.roll, o.Size, o.Radius, wantSize, wantSize/2)
		}
		if math.Abs(o.X-w.W/2) > 1e-9 {
			t.Errorf("roll %v: x = %v, expected lane centre %v", tt.roll, o.X, w.W/2)
		}
		if o.Y != -wantSize-20 {
			t.Errorf("roll %v: y = %v, expected %v", tt.roll, o.Y, -wantSize-20)
		}
		if o.Drift != 0 {
			t.Errorf("roll %v: drift = %v, expected 0", tt.roll, o.Drift)
		}
		if want := 600 * 0.975; math.Abs(o.VY-want) > 1e-9 {
			t.Errorf("roll %v: vy = %v, expected %v", tt.roll, o.VY, want)
		}
	}
}

func TestSpawnIDsIncrease(t *testing.T) {
	tun := config.Classic()
	sp := NewSpawner(&tun, config.NewDifficulty(tun), NewSource(5))
	w := NewWorld(960, 576)

	var last uint64
	for range 20 {
		o := sp.Spawn(w, 520)
		if o.ID <= last {
			t.Fatalf("ID %d not greater than %d", o.ID, last)
		}
		last = o.ID
	}

	sp.Reset()
	if o := sp.Spawn(w, 520); o.ID != 1 {
		t.Errorf("ID after Reset = %d, expected 1", o.ID)
	}
}

func TestSpawnTimer(t *testing.T) {
	tun := config.Classic()
	w := NewWorld(960, 576)

	tests := []struct {
		name      string
		double    float64
		wantCount int
	}{
		{"single", 0.5, 1},
		{"double", 0.05, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// jitter, kind, size, x, drift, vy, double roll, then a second obstacle
			src := &fixedSource{values: []float64{1, 0.5, 0.5, 0.5, 0.5, 0.5, tt.double, 0.5, 0.5, 0.5, 0.5, 0.5}}
			sp := NewSpawner(&tun, config.NewDifficulty(tun), src)
			s := &Session{Speed: 520, SpawnInterval: tun.Spawn.InitialInterval}

			obs := sp.Update(nil, s, w, 0, 0.01)
			if len(obs) != tt.wantCount {
				t.Fatalf("spawned %d, expected %d", len(obs), tt.wantCount)
			}
			if s.Stats.Spawned != tt.wantCount {
				t.Errorf("Stats.Spawned = %d, expected %d", s.Stats.Spawned, tt.wantCount)
			}
			if s.SpawnInterval != 0.90 {
				t.Errorf("SpawnInterval = %v, expected 0.90", s.SpawnInterval)
			}
			// Jitter roll of 1 maps to the top of the 0.8..1.2 band.
			if want := 0.90 * 1.2; math.Abs(s.SpawnTimer-want) > 1e-9 {
				t.Errorf("SpawnTimer = %v, expected %v", s.SpawnTimer, want)
			}
			if tt.wantCount == 2 {
				if want := 520 * 0.95 * 0.975; math.Abs(obs[1].VY-want) > 1e-9 {
					t.Errorf("second vy = %v, expected %v", obs[1].VY, want)
				}
			}

			// Timer still running: nothing new.
			obs = sp.Update(obs, s, w, 0, 0.5)
			if len(obs) != tt.wantCount {
				t.Errorf("spawned before the timer expired: %d obstacles", len(obs))
			}
		})
	}
}

func TestSpawnIntervalRamp(t *testing.T) {
	d := config.NewDifficulty(config.Classic())

	tests := []struct {
		progress, want float64
	}{
		{0, 0.90},
		{0.5, 0.80},
		{1, 0.70},
		{2, 0.70},
	}
	for _, tt := range tests {
		if got := d.SpawnInterval(tt.progress); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SpawnInterval(%v) = %v, expected %v", tt.progress, got, tt.want)
		}
	}
}
