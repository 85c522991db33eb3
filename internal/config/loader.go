package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source tells where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadMinesweeper loads the minesweeper configuration.
// Search order: customPath -> ~/.sweepster/configs/minesweeper.yaml ->
// ./configs/minesweeper.yaml -> embedded default -> hardcoded default.
//
// A custom path must exist, parse and validate. Files found on the search
// path are skipped when they fail to parse or validate.
func LoadMinesweeper(customPath string) (MinesweeperConfig, Source, error) {
	if customPath != "" {
		cfg, err := readMinesweeper(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("minesweeper.yaml"); userCfgPath != "" {
		if cfg, err := readMinesweeper(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := readMinesweeper(filepath.Join("configs", "minesweeper.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := parseMinesweeper(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func readMinesweeper(path string) (MinesweeperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MinesweeperConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseMinesweeper(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parseMinesweeper decodes YAML over the hardcoded defaults, so a file only
// needs the keys it changes.
func parseMinesweeper(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweepster", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg MinesweeperConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}
