package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sweepster/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration. Save it to
~/.sweepster/configs/minesweeper.yaml or ./configs/minesweeper.yaml and edit
it to change the defaults.

With --effective, print the configuration after the config file, the
difficulty preset and the command line flags are applied.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	if !flagEffective {
		//nolint:errcheck // Best-effort write to stdout
		out.Write(config.GetDefaultYAML("minesweeper"))
		return
	}

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

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort write to stdout
	out.Write(data)
}
