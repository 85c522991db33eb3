package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sweepster/internal/config"
	"github.com/vovakirdan/sweepster/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games and board presets",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Difficulty presets:")
	fmt.Fprintln(out)
	for _, p := range config.Presets() {
		cfg := config.DefaultMinesweeperConfig()
		//nolint:errcheck // Presets() only returns known presets
		config.ApplyPreset(&cfg, p)
		fmt.Fprintf(out, "  %-13s %3d x %-3d %4d mines\n", p, cfg.Board.Rows, cfg.Board.Columns, cfg.Board.Mines)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sweepster play --difficulty <preset>' to play.")
}
