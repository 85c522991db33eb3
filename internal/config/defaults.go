package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the hardcoded minesweeper configuration,
// used when even the embedded YAML cannot be parsed.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board: BoardConfig{
			Rows:    32,
			Columns: 32,
			Mines:   50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
