package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snow-dodge/internal/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants [name]",
	Short: "Print variant tuning as YAML",
	Long: `Prints the built-in tuning of one variant, or of every variant
separated by YAML document markers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVariants,
}

func runVariants(cmd *cobra.Command, args []string) error {
	names := config.VariantNames()
	if len(args) == 1 {
		names = args
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()

	for _, name := range names {
		t, err := config.TuningFor(name)
		if err != nil {
			return err
		}
		if err := enc.Encode(t); err != nil {
			return err
		}
	}
	return nil
}
