package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/games/snowdodge"
)

func testOptions() simOptions {
	opts := simFlags
	opts.Seed = 11
	opts.Duration = 30
	return opts
}

func TestSimulateIsDeterministic(t *testing.T) {
	for _, policy := range []string{"idle", "boost", "autopilot"} {
		t.Run(policy, func(t *testing.T) {
			opts := testOptions()
			opts.Policy = policy

			a, err := simulate(opts, nil)
			if err != nil {
				t.Fatal(err)
			}
			b, err := simulate(opts, nil)
			if err != nil {
				t.Fatal(err)
			}
			if a != b {
				t.Errorf("runs differ:\n%v\n%v", a, b)
			}
		})
	}
}

func TestSimulateStopsAtDuration(t *testing.T) {
	opts := testOptions()
	opts.Duration = 0.5
	opts.DT = 0.0625

	res, err := simulate(opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Phase != snowdodge.PhaseRunning {
		t.Fatalf("phase = %v, want running after half a second", res.Phase)
	}
	if math.Abs(res.Time-0.5) > 1e-9 {
		t.Errorf("time = %v, want 0.5", res.Time)
	}
	if res.Distance <= 0 || res.Cues < 1 {
		t.Errorf("distance = %v cues = %d, want progress and a start cue", res.Distance, res.Cues)
	}
}

func TestSimulateEndsRun(t *testing.T) {
	opts := testOptions()
	opts.Policy = "boost"
	opts.Duration = 600

	res, err := simulate(opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Phase != snowdodge.PhaseFinished && res.Phase != snowdodge.PhaseGameOver {
		t.Errorf("phase = %v after %s, want a terminal phase", res.Phase, snowdodge.FormatTime(res.Time))
	}
}

func TestSimulateTrace(t *testing.T) {
	opts := testOptions()
	opts.Duration = 2.5
	opts.DT = 0.1

	var buf bytes.Buffer
	if _, err := simulate(opts, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("trace has %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "t=  0.10 phase=running") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestSimulateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*simOptions)
		is     error
	}{
		{"zero dt", func(o *simOptions) { o.DT = 0 }, nil},
		{"nan dt", func(o *simOptions) { o.DT = math.NaN() }, nil},
		{"dt above step limit", func(o *simOptions) { o.DT = snowdodge.MaxStep * 2 }, nil},
		{"variant", func(o *simOptions) { o.Variant = "luge" }, config.ErrUnknownVariant},
		{"policy", func(o *simOptions) { o.Policy = "random" }, errBadPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			_, err := simulate(opts, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestSimResultString(t *testing.T) {
	res := simResult{
		Options:  testOptions(),
		Phase:    snowdodge.PhaseFinished,
		Time:     95.25,
		Distance: 1000,
		HP:       1,
	}
	out := res.String()
	for _, want := range []string{"outcome  finished", "time     1:35.2", "distance 1000.0m"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func capture(run func(cmd *cobra.Command)) string {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	run(cmd)
	return buf.String()
}

func TestListShowsVariants(t *testing.T) {
	out := capture(func(cmd *cobra.Command) { runList(cmd, nil) })
	for _, id := range config.VariantNames() {
		if !strings.Contains(out, id) {
			t.Errorf("list missing %q:\n%s", id, out)
		}
	}
}

func TestVariantsDumpsTuning(t *testing.T) {
	var err error
	out := capture(func(cmd *cobra.Command) { err = runVariants(cmd, []string{config.VariantHardy}) })
	if err != nil {
		t.Fatal(err)
	}

	var got config.Tuning
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if got != config.Hardy() {
		t.Errorf("decoded tuning differs from Hardy()")
	}
}

func TestVariantsUnknown(t *testing.T) {
	var err error
	capture(func(cmd *cobra.Command) { err = runVariants(cmd, []string{"luge"}) })
	if !errors.Is(err, config.ErrUnknownVariant) {
		t.Errorf("err = %v, want ErrUnknownVariant", err)
	}
}

func TestLoadSettingsAppliesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() { flagFPS, flagSeed, flagLogLevel = 0, 0, "" })

	flagFPS, flagSeed, flagLogLevel = 30, 99, "debug"
	s, source, err := loadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if source != config.SourceEmbedded {
		t.Errorf("source = %q", source)
	}
	if s.Display.FPS != 30 || s.Game.Seed != 99 || s.Log.Level != "debug" {
		t.Errorf("settings = %+v, want flag values", s)
	}

	flagFPS = 1000
	if _, _, err := loadSettings(); !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("err = %v, want ErrInvalidSettings", err)
	}
}
