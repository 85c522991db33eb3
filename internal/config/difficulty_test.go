package config

import "testing"

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets() {
		cfg := DefaultMinesweeperConfig()
		if err := ApplyPreset(&cfg, p); err != nil {
			t.Fatalf("ApplyPreset(%q): %v", p, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q does not validate: %v", p, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"beginner", DifficultyBeginner, false},
		{"  Expert ", DifficultyExpert, false},
		{"CLASSIC", DifficultyClassic, false},
		{"nightmare", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPresetKeepsAssist(t *testing.T) {
	cfg := DefaultMinesweeperConfig()
	cfg.Assist.AutoFlag = true
	cfg.Board.MaxPlacementAttempts = 500

	if err := ApplyPreset(&cfg, DifficultyExpert); err != nil {
		t.Fatal(err)
	}

	want := BoardConfig{Rows: 16, Columns: 30, Mines: 99, MaxPlacementAttempts: 500}
	if cfg.Board != want {
		t.Errorf("board = %+v, expected %+v", cfg.Board, want)
	}
	if !cfg.Assist.AutoFlag {
		t.Error("assist settings should survive a preset")
	}

	if err := ApplyPreset(&cfg, "bogus"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
