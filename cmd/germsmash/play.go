package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/germ-smash/internal/audio"
	"github.com/vovakirdan/germ-smash/internal/core"
	"github.com/vovakirdan/germ-smash/internal/games/germsmash"
	"github.com/vovakirdan/germ-smash/internal/platform/tui"
	"github.com/vovakirdan/germ-smash/internal/registry"
	"github.com/vovakirdan/germ-smash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Mouse click  - Smash a germ / grab a vaccine / press a button
  Enter        - Begin, or play again after a session
  P            - Pause
  R            - Play again (after a session)
  B/Esc        - Back (when paused or after a session)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Slower germs that spawn less often
  normal  - The variant's own tuning
  hard    - Faster germs that spawn more often

Examples:
  germsmash play flu
  germsmash play measles --difficulty easy
  germsmash play booster --config ./my-booster.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'germsmash list')", gameID)
	}

	germsmash.SetConfigPath(flagConfig)
	germsmash.SetDifficultyPreset(flagDifficulty)

	player := startAudio()
	defer player.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if _, err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// startAudio starts the sound player and routes game effects to it.
func startAudio() *audio.Player {
	cfg := audio.DefaultConfig()
	cfg.Enabled = !flagMute
	player := audio.NewPlayer(cfg)
	germsmash.SetSounder(player)
	tui.SetMuter(player)
	log.Debug("audio ready", "enabled", player.Enabled())
	return player
}
