package mines

// revealAll classifies every unrevealed cell once the game has ended.
// Revealed cells keep the class they were given during play. Only the
// display class is written; revealed and flagged bits are untouched.
func (b *Board) revealAll() []Change {
	won := b.state.Status == Won

	var changes []Change
	for i := range b.grid.cells {
		cell := &b.grid.cells[i]
		if cell.Revealed {
			continue
		}
		class := terminalClass(*cell, won)
		if class == cell.Class {
			continue
		}
		cell.Class = class
		changes = append(changes, Change{Coord: b.grid.CoordOf(i + 1), Class: class})
	}
	return changes
}

func terminalClass(cell Cell, won bool) Classification {
	switch {
	case cell.Mine && cell.Flagged:
		return CorrectFlag
	case cell.Mine && won:
		return NeutralMine
	case cell.Mine:
		return UntouchedMine
	case cell.Flagged:
		return IncorrectFlag
	case cell.NeighborMines > 0:
		return Numbered
	default:
		return Blank
	}
}
