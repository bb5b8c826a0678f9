package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snow-dodge/internal/platform/tui"
	"github.com/vovakirdan/snow-dodge/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a run of the given variant, or the one named in settings.

Controls:
  Left/A, Right/D  - Steer
  Space            - Boost
  Enter/R          - Start or restart
  P/Esc            - Pause
  M                - Toggle sound
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  snowdodge play
  snowdodge play snowdodge_hardy
  snowdodge play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	h, err := openHost()
	if err != nil {
		return err
	}
	defer h.Close()

	gameID := h.settings.Game.Variant
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snowdodge list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	results, err := tui.Run(game, h.runtimeConfig(), h.options())
	if err != nil {
		return err
	}
	printResults(cmd, results)
	return nil
}

// printResults writes a summary of the session after the TUI exits.
func printResults(cmd *cobra.Command, results []tui.RunResult) {
	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%-20s %-9s %5dm  %s\n",
			r.Title, r.Outcome(), r.State.Score, r.Duration.Round(100*time.Millisecond))
	}
}
