package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/germ-smash/internal/games/germsmash"
	"github.com/vovakirdan/germ-smash/internal/platform/tui"
	"github.com/vovakirdan/germ-smash/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from a menu",
	Long: `Start Germ Smash in interactive menu mode.

Use arrow keys or j/k to navigate and Enter or a click to pick a variant.
Press B or Esc after a session to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Click  - Play variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  germsmash menu
  germsmash menu --difficulty hard
  germsmash menu --fps 30 --mute`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	germsmash.SetDifficultyPreset(flagDifficulty)

	player := startAudio()
	defer player.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
