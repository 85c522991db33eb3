// sweepster is minesweeper for the terminal.
//
// Usage:
//
//	sweepster                - Play with the configured board
//	sweepster play           - Same as above
//	sweepster menu           - Pick a board size, then play
//	sweepster board          - Print a seeded board without the TUI
//	sweepster config         - Print the default configuration
//	sweepster list           - List available games
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible boards
//	--config <path>       - Config file (default search: ~/.sweepster/configs, ./configs)
//	--difficulty <name>   - beginner, intermediate, expert or classic
//	--rows/--columns/--mines, --auto-flag/--auto-reveal - override the config
//	--log-file <path>     - Log destination, "-" for stderr
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sweepster/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/sweepster/internal/games/minesweeper"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagRows       int
	flagColumns    int
	flagMines      int
	flagAutoFlag   bool
	flagAutoReveal bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweepster",
	Short: "Sweepster - minesweeper in your terminal",
	Long: `Sweepster is minesweeper for the terminal. The first reveal is always
safe, and optional assists flag and reveal cells that are logically certain.

Available commands:
  play     - Play with the configured board (default)
  menu     - Pick a board size interactively
  board    - Print a seeded board without the TUI
  config   - Print the default configuration
  list     - Show all available games

Examples:
  sweepster
  sweepster --difficulty expert
  sweepster play --rows 20 --columns 40 --mines 120 --auto-flag
  sweepster board --seed 7 --expose 4,4 --difficulty beginner`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a minesweeper config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Board preset: beginner, intermediate, expert, classic")
	pf.IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	pf.IntVar(&flagColumns, "columns", 0, "Board columns (overrides config)")
	pf.IntVar(&flagMines, "mines", 0, "Mine count (overrides config)")
	pf.BoolVar(&flagAutoFlag, "auto-flag", false, "Flag cells that can only be mines")
	pf.BoolVar(&flagAutoReveal, "auto-reveal", false, "Reveal around numbers whose flags are complete")
	pf.StringVar(&flagLogFile, "log-file", defaultLogFile(), `Log file ("-" for stderr)`)
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "-"
	}
	return filepath.Join(home, ".sweepster", "sweepster.log")
}

// newLogger opens the log destination. The returned close function is
// always safe to call.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "sweepster",
		Level:           level,
	}

	if flagLogFile == "-" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// loadConfig resolves the configuration: file search, then the difficulty
// preset, then any board or assist flag the user set explicitly.
func loadConfig(cmd *cobra.Command, logger *log.Logger) (config.MinesweeperConfig, error) {
	cfg, src, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		//nolint:errcheck // ParsePreset only returns known presets
		config.ApplyPreset(&cfg, preset)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("columns") {
		cfg.Board.Columns = flagColumns
	}
	if flags.Changed("mines") {
		cfg.Board.Mines = flagMines
	}
	if flags.Changed("auto-flag") {
		cfg.Assist.AutoFlag = flagAutoFlag
	}
	if flags.Changed("auto-reveal") {
		cfg.Assist.AutoReveal = flagAutoReveal
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
