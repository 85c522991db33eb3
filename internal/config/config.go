// Package config provides YAML-based configuration loading for the
// minesweeper game and its difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sweepster/internal/board"
)

// Board size limits accepted from configuration and flags.
const (
	MinSide = 1
	MaxSide = 128
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid minesweeper config")

// MinesweeperConfig contains all configuration for the minesweeper game.
type MinesweeperConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Assist AssistConfig `yaml:"assist"`
}

// BoardConfig defines the shape and mine count of a new round.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Mines   int `yaml:"mines"`

	// MaxPlacementAttempts caps mine placement sampling. 0 uses the
	// engine default.
	MaxPlacementAttempts int `yaml:"max_placement_attempts,omitempty"`
}

// AssistConfig defines which assists are on when a round starts.
type AssistConfig struct {
	AutoFlag   bool `yaml:"auto_flag"`
	AutoReveal bool `yaml:"auto_reveal"`
}

// Policy converts the assist section to the engine's policy.
func (a AssistConfig) Policy() board.AssistPolicy {
	return board.AssistPolicy{
		AutoFlag:   a.AutoFlag,
		AutoReveal: a.AutoReveal,
	}
}

// Validate checks the board section against the engine limits.
func (c MinesweeperConfig) Validate() error {
	b := c.Board
	if b.Rows < MinSide || b.Rows > MaxSide {
		return fmt.Errorf("%w: rows %d not in [%d, %d]", ErrInvalidConfig, b.Rows, MinSide, MaxSide)
	}
	if b.Columns < MinSide || b.Columns > MaxSide {
		return fmt.Errorf("%w: columns %d not in [%d, %d]", ErrInvalidConfig, b.Columns, MinSide, MaxSide)
	}
	if b.Mines < 0 {
		return fmt.Errorf("%w: mines %d is negative", ErrInvalidConfig, b.Mines)
	}
	if limit := board.MaxMines(b.Rows, b.Columns); b.Mines > limit {
		return fmt.Errorf("%w: %d mines on %dx%d (max %d)", ErrInvalidConfig, b.Mines, b.Rows, b.Columns, limit)
	}
	if b.MaxPlacementAttempts < 0 {
		return fmt.Errorf("%w: max_placement_attempts %d is negative", ErrInvalidConfig, b.MaxPlacementAttempts)
	}
	return nil
}
