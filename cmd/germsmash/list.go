package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/germ-smash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered Germ Smash variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", idWidth, g.ID, g.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'germsmash play <id>' to play.")
}
