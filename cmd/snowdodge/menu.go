package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snow-dodge/internal/platform/tui"
	"github.com/vovakirdan/snow-dodge/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start interactive variant picker",
	Long:  `Pick a variant, play it, and come back to the picker when you quit.`,
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	h, err := openHost()
	if err != nil {
		return err
	}
	defer h.Close()

	cfg := h.runtimeConfig()
	var history []tui.RunResult // Newest first

	for {
		result, err := tui.RunMenu(cfg, history)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			break
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		runs, err := tui.Run(game, cfg, h.options())
		if err != nil {
			return err
		}
		for _, r := range runs {
			history = append([]tui.RunResult{r}, history...)
		}
	}

	return nil
}
