package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/germ-smash/internal/registry"
	"github.com/vovakirdan/germ-smash/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores and recent games",
	Long: `Display the top scores, overall statistics and the most recent games
for the specified variant.

Examples:
  germsmash scores flu
  germsmash scores measles --limit 20
  germsmash scores booster --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and history for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'germsmash list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'germsmash play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-5s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-5s  %-10s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-5s  %-10s  %s\n",
			humanize.Ordinal(i+1), humanize.Comma(int64(e.Score)), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Played > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Played %d, won %d (%.0f%%), lost %d, average score %.1f\n",
			stats.Played, stats.Wins, stats.WinRate()*100, stats.Losses, stats.AvgScore)
	}

	recent, err := store.RecentSessions(gameID, flagScoresLimit)
	if err != nil || len(recent) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent games:")
	for _, s := range recent {
		fmt.Fprintf(out, "  %-14s  %-8s  %-4s  %6s  %d/%d vaccines  %s\n",
			humanize.Time(s.CreatedAt), s.Player, s.Outcome,
			humanize.Comma(int64(s.Score)), s.Collected, s.Goal,
			s.Duration.Round(100*time.Millisecond))
	}
	return nil
}
