// snowdodge is a downhill skiing game for the terminal.
//
// Usage:
//
//	snowdodge play [variant]   - Play a variant (default from settings)
//	snowdodge menu             - Pick variants interactively
//	snowdodge list             - List available variants
//	snowdodge variants [name]  - Print variant tuning as YAML
//	snowdodge sim              - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from settings)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Settings file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/snow-dodge/internal/games/snowdodge"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snowdodge",
	Short: "Snow Dodge - ski down the slope in your terminal",
	Long: `Snow Dodge is a downhill skiing game for the terminal.
Steer between trees and rocks, grab flags and reach the finish line.

Available commands:
  play      - Play a variant directly
  menu      - Interactive variant picker
  list      - Show all variants
  variants  - Print variant tuning
  sim       - Headless simulation

Examples:
  snowdodge play
  snowdodge play snowdodge_hardy --seed 42
  snowdodge menu
  snowdodge sim --policy autopilot --duration 120`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from settings, then time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides settings)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(simCmd)
}
