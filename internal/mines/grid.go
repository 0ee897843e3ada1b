// Package mines implements the minesweeper board engine: mine placement,
// neighbor counting, flagging, cascading reveals and the end-of-game sweep
// that classifies every cell for display.
//
// Cells are addressed by 1-indexed Coord values. Internally the grid is a
// flat row-major arena; the 1-indexed linear index of a cell is
// (row-1)*columns + col.
package mines

import (
	"fmt"
)

// Grid dimension limits, inclusive.
const (
	MinDimension = 2
	MaxDimension = 200
)

// Coord addresses a cell by 1-indexed row and column.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single square of the grid.
type Cell struct {
	Mine          bool
	Revealed      bool
	Flagged       bool
	NeighborMines int
	Class         Classification
}

// Grid is the rectangular field of cells with its mine layout.
// Dimensions and mine layout never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
	mines MineSet
}

func newGrid(rows, cols int) (*Grid, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// GridFromMines builds a grid with mines at the given 1-indexed linear
// indices. It is the deterministic counterpart of Generate.
func GridFromMines(rows, cols int, indices []int) (*Grid, error) {
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := validateMineCount(g.Size(), len(indices)); err != nil {
		return nil, err
	}

	set := newMineSet()
	for _, i := range indices {
		if i < 1 || i > g.Size() {
			return nil, fmt.Errorf("mines: mine index %d: %w", i, ErrOutOfBounds)
		}
		if set.Has(i) {
			return nil, fmt.Errorf("mines: duplicate mine index %d: %w", i, ErrInvalidMineCount)
		}
		set.put(i)
	}

	g.layMines(set)
	return g, nil
}

// layMines marks the mined cells and caches every neighbor count.
func (g *Grid) layMines(set MineSet) {
	g.mines = set
	set.Each(func(i int) {
		g.cells[i-1].Mine = true
	})
	for i := range g.cells {
		g.cells[i].NeighborMines = g.NeighborMineCount(g.CoordOf(i + 1))
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.cols
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// MineCount returns the number of mines on the grid.
func (g *Grid) MineCount() int {
	return g.mines.Len()
}

// Mines returns the mine layout.
func (g *Grid) Mines() MineSet {
	return g.mines
}

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 1 && c.Row <= g.rows && c.Col >= 1 && c.Col <= g.cols
}

// Index returns the 1-indexed linear index of c.
func (g *Grid) Index(c Coord) int {
	return (c.Row-1)*g.cols + c.Col
}

// CoordOf is the inverse of Index.
func (g *Grid) CoordOf(i int) Coord {
	return Coord{
		Row: (i + g.cols - 1) / g.cols,
		Col: (i-1)%g.cols + 1,
	}
}

// Cell returns a copy of the cell at c. The zero Cell is returned for
// coordinates outside the grid.
func (g *Grid) Cell(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{}
	}
	return *g.at(c)
}

func (g *Grid) at(c Coord) *Cell {
	return &g.cells[g.Index(c)-1]
}

func validateDimensions(rows, cols int) error {
	if rows < MinDimension || rows > MaxDimension || cols < MinDimension || cols > MaxDimension {
		return fmt.Errorf("mines: %dx%d grid: %w", rows, cols, ErrInvalidDimensions)
	}
	return nil
}

func validateMineCount(size, mines int) error {
	if mines < 1 || mines > size-1 {
		return fmt.Errorf("mines: %d mines on %d cells: %w", mines, size, ErrInvalidMineCount)
	}
	return nil
}
