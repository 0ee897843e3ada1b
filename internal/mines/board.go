package mines

import (
	"fmt"
	"math/rand"
)

// Status is the lifecycle phase of a game.
type Status int

const (
	Active Status = iota
	Won
	Lost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState tracks progress. SafeRevealed counts non-mine reveals only.
type GameState struct {
	Status       Status
	SafeRevealed int
}

// Board is a single game: a grid plus its lifecycle state.
// A Board is not safe for concurrent use.
type Board struct {
	grid  *Grid
	state GameState
	flags int
}

// CellState is the externally visible view of one cell.
type CellState struct {
	Coord    Coord
	Class    Classification
	Revealed bool
	Flagged  bool
	// NeighborMines is reported for Numbered cells only.
	NeighborMines int
}

// NewGame generates a grid and starts an active game on it.
func NewGame(rows, cols, mineCount int, rng *rand.Rand) (*Board, error) {
	g, err := Generate(rows, cols, mineCount, rng)
	if err != nil {
		return nil, err
	}
	return NewBoard(g), nil
}

// NewBoard starts an active game on an already generated grid.
func NewBoard(g *Grid) *Board {
	return &Board{
		grid:  g,
		state: GameState{Status: Active},
	}
}

// Grid returns the underlying grid.
func (b *Board) Grid() *Grid {
	return b.grid
}

// State returns a copy of the game state.
func (b *Board) State() GameState {
	return b.state
}

// Status returns the lifecycle phase.
func (b *Board) Status() Status {
	return b.state.Status
}

// IsWon reports whether every safe cell has been revealed.
func (b *Board) IsWon() bool {
	return b.state.Status == Won
}

// IsLost reports whether a mine was revealed.
func (b *Board) IsLost() bool {
	return b.state.Status == Lost
}

// SafeRevealed returns the number of revealed non-mine cells.
func (b *Board) SafeRevealed() int {
	return b.state.SafeRevealed
}

// RemainingSafeCells returns how many safe cells are still unrevealed.
func (b *Board) RemainingSafeCells() int {
	return b.grid.Size() - b.grid.MineCount() - b.state.SafeRevealed
}

// FlagCount returns the number of flags currently placed.
func (b *Board) FlagCount() int {
	return b.flags
}

// CellState returns the visible state of the cell at c.
func (b *Board) CellState(c Coord) (CellState, error) {
	if !b.grid.InBounds(c) {
		return CellState{}, fmt.Errorf("mines: cell %v: %w", c, ErrOutOfBounds)
	}

	cell := b.grid.at(c)
	cs := CellState{
		Coord:    c,
		Class:    cell.Class,
		Revealed: cell.Revealed,
		Flagged:  cell.Flagged,
	}
	if cell.Class == Numbered {
		cs.NeighborMines = cell.NeighborMines
	}
	return cs, nil
}
