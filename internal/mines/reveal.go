package mines

import (
	"fmt"

	"github.com/zyedidia/generic/queue"
)

// Change records a cell whose display class changed during a call.
type Change struct {
	Coord Coord
	Class Classification
}

// Result is the outcome of a Reveal call.
type Result struct {
	Status  Status
	Changes []Change
}

// Reveal uncovers the cell at c and cascades through blank regions.
//
// The worklist holds batches: each batch is the neighbor list of one blank
// cell. Flagged and already revealed cells are skipped, so flags act as
// walls. Revealing a mine marks the game lost but the worklist is still
// drained. When the game ends during the call, every unrevealed cell is
// classified for display and those changes follow the cascade changes.
//
// Reveal is a no-op on a finished game.
func (b *Board) Reveal(c Coord) (Result, error) {
	if !b.grid.InBounds(c) {
		return Result{Status: b.state.Status}, fmt.Errorf("mines: reveal %v: %w", c, ErrOutOfBounds)
	}
	if b.state.Status != Active {
		return Result{Status: b.state.Status}, nil
	}

	var changes []Change
	work := queue.New[[]Coord]()
	work.Enqueue([]Coord{c})

	for !work.Empty() {
		batch := work.Dequeue()
		for _, at := range batch {
			cell := b.grid.at(at)
			if cell.Revealed || cell.Flagged {
				continue
			}
			cell.Revealed = true

			if cell.Mine {
				cell.Class = Mine
				b.state.Status = Lost
				changes = append(changes, Change{Coord: at, Class: Mine})
				continue
			}

			b.state.SafeRevealed++
			if cell.NeighborMines > 0 {
				cell.Class = Numbered
			} else {
				cell.Class = Blank
				if next := b.pending(at); len(next) > 0 {
					work.Enqueue(next)
				}
			}
			changes = append(changes, Change{Coord: at, Class: cell.Class})
		}
	}

	if b.state.Status == Active && b.state.SafeRevealed == b.grid.Size()-b.grid.MineCount() {
		b.state.Status = Won
	}
	if b.state.Status != Active {
		changes = append(changes, b.revealAll()...)
	}

	return Result{Status: b.state.Status, Changes: changes}, nil
}

// pending returns the neighbors of c that a cascade may still uncover.
func (b *Board) pending(c Coord) []Coord {
	neighbors := b.grid.Neighbors(c)
	out := neighbors[:0]
	for _, n := range neighbors {
		cell := b.grid.at(n)
		if !cell.Revealed && !cell.Flagged {
			out = append(out, n)
		}
	}
	return out
}
