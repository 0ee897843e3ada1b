package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in beginner board.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board: BoardConfig{
			Rows:    9,
			Columns: 9,
			Mines:   10,
		},
		Generator: GeneratorConfig{
			Placement: "rejection",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesweeperYAML
}
