package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sweepster/internal/config"
	"github.com/vovakirdan/sweepster/internal/core"
	"github.com/vovakirdan/sweepster/internal/games/minesweeper"
	"github.com/vovakirdan/sweepster/internal/platform/tui"
	"github.com/vovakirdan/sweepster/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minesweeper",
	Long: `Start a round with the configured board.

Controls:
  Arrows/hjkl   - Move the cursor
  Space/Enter   - Reveal (on a number: reveal around it if its flags are complete)
  F             - Flag / unflag
  C             - Chord
  Shift+F       - Toggle auto-flag
  Shift+R       - Toggle auto-reveal
  R             - New board
  P/Esc         - Pause
  ?             - Full help
  Q/Ctrl+C      - Quit

Mouse: left click reveals, right click flags.

Examples:
  sweepster play
  sweepster play --difficulty expert --auto-flag
  sweepster play --config ./my-board.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	if err := play(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// play runs one TUI session with the given configuration.
func play(cfg config.MinesweeperConfig, logger *log.Logger) error {
	minesweeper.Configure(cfg, logger)

	game, err := registry.Create("minesweeper")
	if err != nil {
		return err
	}

	width, height := terminalSize()
	logger.Info("starting", "rows", cfg.Board.Rows, "columns", cfg.Board.Columns,
		"mines", cfg.Board.Mines, "auto_flag", cfg.Assist.AutoFlag, "auto_reveal", cfg.Assist.AutoReveal)

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, logger)
}

func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
