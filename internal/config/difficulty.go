package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset names a standard board size.
type DifficultyPreset string

const (
	DifficultyBeginner     DifficultyPreset = "beginner"
	DifficultyIntermediate DifficultyPreset = "intermediate"
	DifficultyExpert       DifficultyPreset = "expert"
	DifficultyClassic      DifficultyPreset = "classic" // the 32x32 default
)

var presetBoards = map[DifficultyPreset]BoardConfig{
	DifficultyBeginner:     {Rows: 9, Columns: 9, Mines: 10},
	DifficultyIntermediate: {Rows: 16, Columns: 16, Mines: 40},
	DifficultyExpert:       {Rows: 16, Columns: 30, Mines: 99},
	DifficultyClassic:      {Rows: 32, Columns: 32, Mines: 50},
}

// Presets returns the known presets, smallest board first.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyExpert,
		DifficultyClassic,
	}
}

// ParsePreset resolves a preset name, ignoring case.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presetBoards[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want one of %v)", name, Presets())
	}
	return p, nil
}

// ApplyPreset replaces the board shape and mine count with the preset's.
// The placement cap and assist settings are kept.
func ApplyPreset(cfg *MinesweeperConfig, preset DifficultyPreset) error {
	b, ok := presetBoards[preset]
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	cfg.Board.Rows = b.Rows
	cfg.Board.Columns = b.Columns
	cfg.Board.Mines = b.Mines
	return nil
}
