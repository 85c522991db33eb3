package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// isolate points the search path at empty directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parseMinesweeper(defaultMinesweeperYAML)
	if err != nil {
		t.Fatalf("embedded default does not load: %v", err)
	}
	if cfg != DefaultMinesweeperConfig() {
		t.Errorf("embedded default = %+v, builtin = %+v", cfg, DefaultMinesweeperConfig())
	}
}

func TestLoadMinesweeperFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadMinesweeper("")
	if err != nil {
		t.Fatalf("LoadMinesweeper: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.Board.Rows != 32 || cfg.Board.Columns != 32 || cfg.Board.Mines != 50 {
		t.Errorf("unexpected default board %+v", cfg.Board)
	}
}

func TestLoadMinesweeperSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "minesweeper.yaml"), "board: {rows: 9, columns: 9, mines: 10}\n")
	cfg, src, err := LoadMinesweeper("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceLocal || cfg.Board.Rows != 9 {
		t.Errorf("expected local config, got %q %+v", src, cfg.Board)
	}

	writeFile(t, filepath.Join(home, ".sweepster", "configs", "minesweeper.yaml"), "board: {rows: 16, columns: 30, mines: 99}\n")
	cfg, src, err = LoadMinesweeper("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceUser || cfg.Board.Columns != 30 {
		t.Errorf("expected user config, got %q %+v", src, cfg.Board)
	}
}

func TestLoadMinesweeperSkipsInvalidSearchPathFiles(t *testing.T) {
	home, _ := isolate(t)

	writeFile(t, filepath.Join(home, ".sweepster", "configs", "minesweeper.yaml"), "board: {rows: 2, columns: 2, mines: 3}\n")

	_, src, err := LoadMinesweeper("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded {
		t.Errorf("invalid user file should be skipped, got source %q", src)
	}
}

func TestLoadMinesweeperCustomPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		writeFile(t, path, "assist:\n  auto_flag: true\n")

		cfg, src, err := LoadMinesweeper(path)
		if err != nil {
			t.Fatal(err)
		}
		if src != SourceCustom {
			t.Errorf("source = %q", src)
		}
		if !cfg.Assist.AutoFlag || cfg.Assist.AutoReveal {
			t.Errorf("assist = %+v", cfg.Assist)
		}
		if cfg.Board != DefaultMinesweeperConfig().Board {
			t.Errorf("board = %+v, expected defaults", cfg.Board)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadMinesweeper(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "board: [1, 2\n")

		if _, _, err := LoadMinesweeper(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		writeFile(t, path, "board: {rows: 9, columns: 9, mines: 80}\n")

		_, _, err := LoadMinesweeper(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		board BoardConfig
		ok    bool
	}{
		{"default", DefaultMinesweeperConfig().Board, true},
		{"single cell", BoardConfig{Rows: 1, Columns: 1}, true},
		{"largest", BoardConfig{Rows: 128, Columns: 128, Mines: 128*128 - 9}, true},
		{"zero rows", BoardConfig{Rows: 0, Columns: 5}, false},
		{"too wide", BoardConfig{Rows: 5, Columns: 129}, false},
		{"negative mines", BoardConfig{Rows: 5, Columns: 5, Mines: -1}, false},
		{"too many mines", BoardConfig{Rows: 5, Columns: 5, Mines: 17}, false},
		{"negative attempts", BoardConfig{Rows: 5, Columns: 5, MaxPlacementAttempts: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := MinesweeperConfig{Board: tc.board}.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultMinesweeperConfig()
	cfg.Assist.AutoReveal = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parseMinesweeper(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, expected %+v", got, cfg)
	}
}

func TestAssistPolicy(t *testing.T) {
	p := AssistConfig{AutoFlag: true}.Policy()
	if !p.AutoFlag || p.AutoReveal {
		t.Errorf("Policy() = %+v", p)
	}
}
