package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snow-dodge/internal/config"
	"github.com/vovakirdan/snow-dodge/internal/core"
	"github.com/vovakirdan/snow-dodge/internal/games/snowdodge"
)

var errBadPolicy = errors.New("unknown policy")

// simOptions configures a headless run.
type simOptions struct {
	Variant  string
	Seed     int64
	Duration float64 // Simulated seconds
	DT       float64
	Policy   string
	Cols     int
	Rows     int
	Trace    bool
}

var simFlags = simOptions{
	Variant:  config.VariantClassic,
	Seed:     1,
	Duration: 180,
	DT:       1.0 / 60,
	Policy:   "autopilot",
	Cols:     80,
	Rows:     23,
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Runs one run without a terminal UI and prints the outcome.
The same variant, seed, step and policy always produce the same result.

Policies:
  idle       - No input
  boost      - Hold boost, never steer
  autopilot  - Dodge hazards and chase flags

Examples:
  snowdodge sim
  snowdodge sim --variant snowdodge_hardy --seed 7 --trace`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := simFlags
		if cmd.Flags().Changed("seed") {
			opts.Seed = flagSeed
		}
		res, err := simulate(opts, traceWriter(cmd, opts.Trace))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	f := simCmd.Flags()
	f.StringVar(&simFlags.Variant, "variant", simFlags.Variant, "Variant to simulate")
	f.Float64Var(&simFlags.Duration, "duration", simFlags.Duration, "Simulated seconds before giving up")
	f.Float64Var(&simFlags.DT, "dt", simFlags.DT, "Step length in seconds")
	f.StringVar(&simFlags.Policy, "policy", simFlags.Policy, "Input policy: idle, boost, autopilot")
	f.IntVar(&simFlags.Cols, "cols", simFlags.Cols, "Screen columns the field is built for")
	f.IntVar(&simFlags.Rows, "rows", simFlags.Rows, "Screen rows the field is built for")
	f.BoolVar(&simFlags.Trace, "trace", false, "Print one line per simulated second")
}

func traceWriter(cmd *cobra.Command, on bool) io.Writer {
	if !on {
		return nil
	}
	return cmd.OutOrStdout()
}

// simResult is the outcome of a headless run.
type simResult struct {
	Options  simOptions
	Phase    snowdodge.Phase
	Time     float64
	Distance float64
	HP       int
	Stats    snowdodge.Stats
	Cues     int
}

func (r simResult) String() string {
	return fmt.Sprintf(
		"variant  %s\nseed     %d\npolicy   %s\noutcome  %s\ntime     %s\ndistance %.1fm\nhp       %d\nflags    %d\nhits     %d\nspawned  %d\ncues     %d\n",
		r.Options.Variant, r.Options.Seed, r.Options.Policy, r.Phase,
		snowdodge.FormatTime(r.Time), r.Distance, r.HP,
		r.Stats.Flags, r.Stats.Hits, r.Stats.Spawned, r.Cues,
	)
}

func pilotFor(name string) (snowdodge.Pilot, error) {
	switch name {
	case "idle":
		return snowdodge.IdlePilot, nil
	case "boost":
		return snowdodge.BoostPilot, nil
	case "autopilot":
		return snowdodge.NewAutopilot(), nil
	default:
		return nil, fmt.Errorf("%w %q", errBadPolicy, name)
	}
}

// simulate runs one run to its end or until the duration elapses.
// trace, when non-nil, receives a line per simulated second.
func simulate(opts simOptions, trace io.Writer) (simResult, error) {
	if opts.DT <= 0 || math.IsNaN(opts.DT) {
		return simResult{}, fmt.Errorf("dt must be positive, got %g", opts.DT)
	}
	if opts.DT > snowdodge.MaxStep {
		return simResult{}, fmt.Errorf("dt %g exceeds the engine step limit %g", opts.DT, snowdodge.MaxStep)
	}
	t, err := config.TuningFor(opts.Variant)
	if err != nil {
		return simResult{}, err
	}
	pilot, err := pilotFor(opts.Policy)
	if err != nil {
		return simResult{}, err
	}

	cues := 0
	sink := core.CueFunc(func(core.Cue) { cues++ })
	e := snowdodge.New(t, snowdodge.WorldFor(opts.Cols, opts.Rows), snowdodge.NewSource(opts.Seed), sink)
	e.Reset()

	steps := int(math.Ceil(opts.Duration / opts.DT))
	nextTrace := 0.0
	for range steps {
		if e.Phase() != snowdodge.PhaseRunning {
			break
		}
		e.Update(opts.DT, pilot.Next(e))

		if s := e.Session(); trace != nil && s.Time >= nextTrace {
			p := e.Player()
			fmt.Fprintf(trace, "t=%6.2f phase=%-8s dist=%7.1f speed=%4.0f x=%6.1f hp=%d obstacles=%d\n",
				s.Time, s.Phase, s.Distance, s.Speed, p.X, p.HP, len(e.Obstacles()))
			nextTrace += 1
		}
	}

	s := e.Session()
	return simResult{
		Options:  opts,
		Phase:    s.Phase,
		Time:     s.Time,
		Distance: s.Distance,
		HP:       e.Player().HP,
		Stats:    s.Stats,
		Cues:     cues,
	}, nil
}
