// germsmash is a terminal minigame: smash the germs closing in on your
// classmate and grab the vaccines before they vanish.
//
// Usage:
//
//	germsmash list              - List available variants
//	germsmash play <variant>    - Play a variant
//	germsmash menu              - Pick variants interactively
//	germsmash scores <variant>  - Show high scores and history
//	germsmash serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible sessions
//	--db <path>         - Set database path (default: ~/.germsmash/scores.db)
//	--log-file <path>   - Write logs here (default: ~/.germsmash/germsmash.log)
//	--log-level <lvl>   - debug, info, warn or error
//	--mute              - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	err := rootCmd.Execute()
	closeLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "germsmash",
	Short: "Germ Smash - protect your classmate from germs in your terminal",
	Long: `Germ Smash is a terminal minigame. Germs crawl in from the edges of the
screen toward your classmate. Click them to smash them, and click the
vaccines that pop up to collect them. Collect enough vaccines to win;
let a single germ through and you lose.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  scores   - View high scores and recent games
  serve    - Start SSH server for remote play

Examples:
  germsmash list
  germsmash play flu
  germsmash play measles --difficulty hard
  germsmash menu
  germsmash serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(flagLogFile, flagLogLevel)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.germsmash/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "~/.germsmash/germsmash.log", "Log file path (\"-\" for stderr)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
