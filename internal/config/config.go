// Package config provides YAML-based board configuration loading for the
// minesweeper game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// MinesweeperConfig contains all configuration for a minesweeper game.
type MinesweeperConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Generator GeneratorConfig `yaml:"generator"`
}

// BoardConfig defines the grid size and mine count.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Mines   int `yaml:"mines"`
}

// GeneratorConfig selects how mines are placed.
type GeneratorConfig struct {
	Placement string `yaml:"placement"` // "rejection" or "shuffle"
}

// Cells returns the number of cells on the board.
func (b BoardConfig) Cells() int {
	return b.Rows * b.Columns
}

// String returns the board as "ROWSxCOLUMNS/MINES".
func (b BoardConfig) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Rows, b.Columns, b.Mines)
}

// Adjustment records a value that Normalize clamped.
type Adjustment struct {
	Field string
	From  int
	To    int
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s %d adjusted to %d", a.Field, a.From, a.To)
}

// Normalize clamps the board into the playable range: rows and columns
// into [2, 200], mines into [1, rows*columns-1]. It returns every change
// made, in field order.
func (c *MinesweeperConfig) Normalize() []Adjustment {
	var adj []Adjustment

	clamp := func(field string, v *int, lo, hi int) {
		if clamped := core.Clamp(*v, lo, hi); clamped != *v {
			adj = append(adj, Adjustment{Field: field, From: *v, To: clamped})
			*v = clamped
		}
	}

	clamp("rows", &c.Board.Rows, mines.MinDimension, mines.MaxDimension)
	clamp("columns", &c.Board.Columns, mines.MinDimension, mines.MaxDimension)
	clamp("mines", &c.Board.Mines, 1, c.Board.Cells()-1)

	return adj
}

// Placement parses the configured placement strategy.
func (c MinesweeperConfig) Placement() (mines.Placement, error) {
	p, err := mines.ParsePlacement(c.Generator.Placement)
	if err != nil {
		return p, fmt.Errorf("config: generator.placement: %w", err)
	}
	return p, nil
}
