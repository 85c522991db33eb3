package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sweepster/internal/board"
	"github.com/vovakirdan/sweepster/internal/config"
)

var (
	flagExpose   []string
	flagFlag     []string
	flagSolution bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a seeded board without the TUI",
	Long: `Build a board, apply the given flags and reveals, and print the player's
view. Flags are applied before reveals. Without --expose the center cell is
revealed. Positions are "row,col", zero-based.

Symbols: # covered, F flagged, * detonated, . empty, 1-8 mine counts.

Examples:
  sweepster board --seed 7 --difficulty beginner
  sweepster board --seed 7 --rows 8 --columns 8 --mines 10 --expose 0,0 --solution
  sweepster board --seed 3 --auto-flag --auto-reveal --expose 4,4 --expose 0,8`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().StringArrayVar(&flagExpose, "expose", nil, "Reveal the cell at row,col (repeatable)")
	boardCmd.Flags().StringArrayVar(&flagFlag, "flag", nil, "Toggle a flag at row,col (repeatable)")
	boardCmd.Flags().BoolVar(&flagSolution, "solution", false, "Also print the mine layout")
}

func runBoard(cmd *cobra.Command, _ []string) {
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

	if err := printBoard(cmd.OutOrStdout(), cfg, flagSeed, flagFlag, flagExpose, flagSolution, board.WithLogger(logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// printBoard plays the given moves on a fresh board and writes the result.
func printBoard(out io.Writer, cfg config.MinesweeperConfig, seed int64, flags, exposes []string, solution bool, opts ...board.Option) error {
	opts = append(opts, board.WithMaxPlacementAttempts(cfg.Board.MaxPlacementAttempts))
	if seed != 0 {
		opts = append(opts, board.WithSeed(uint64(seed)))
	}

	b, err := board.New(cfg.Board.Rows, cfg.Board.Columns, cfg.Board.Mines, cfg.Assist.Policy(), opts...)
	if err != nil {
		return err
	}

	flagged, err := parsePositions(b, flags)
	if err != nil {
		return err
	}
	exposed, err := parsePositions(b, exposes)
	if err != nil {
		return err
	}
	if len(exposed) == 0 {
		exposed = []board.Position{board.P(b.Rows()/2, b.Columns()/2)}
	}

	for _, p := range flagged {
		b.ToggleFlag(p)
	}
	for _, p := range exposed {
		b.Expose(p)
	}

	fmt.Fprintln(out, b.String())
	counts := b.Counts()
	fmt.Fprintf(out, "\ncovered %d  empty %d  flagged %d  detonated %d  mines left %d\n",
		counts.Covered, counts.Empty, counts.Flagged, counts.Detonated, b.MinesRemaining())

	if solution {
		fmt.Fprintln(out)
		fmt.Fprintln(out, solutionString(b))
	}
	return nil
}

// solutionString renders the hidden layout: * for mines, counts elsewhere.
func solutionString(b *board.Board) string {
	var sb strings.Builder
	for r := range b.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.Columns() {
			mine, n := b.Solution(board.P(r, c))
			switch {
			case mine:
				sb.WriteRune(board.SymbolDetonated)
			case n == 0:
				sb.WriteRune(board.SymbolZero)
			default:
				sb.WriteByte(byte('0' + n))
			}
		}
	}
	return sb.String()
}

func parsePositions(b *board.Board, specs []string) ([]board.Position, error) {
	out := make([]board.Position, 0, len(specs))
	for _, s := range specs {
		p, err := parsePosition(s)
		if err != nil {
			return nil, err
		}
		if !b.Contains(p) {
			return nil, fmt.Errorf("position %v is outside the %dx%d board", p, b.Rows(), b.Columns())
		}
		out = append(out, p)
	}
	return out, nil
}

// parsePosition parses "row,col".
func parsePosition(s string) (board.Position, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return board.Position{}, fmt.Errorf("invalid position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return board.P(row, col), nil
}
