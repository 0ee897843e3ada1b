package mines

import "fmt"

// ToggleFlag flips the flag on an unrevealed cell and returns the new flag
// state. Revealed cells and finished games are left unchanged.
func (b *Board) ToggleFlag(c Coord) (bool, error) {
	if !b.grid.InBounds(c) {
		return false, fmt.Errorf("mines: flag %v: %w", c, ErrOutOfBounds)
	}

	cell := b.grid.at(c)
	if b.state.Status != Active || cell.Revealed {
		return cell.Flagged, nil
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		cell.Class = Flagged
		b.flags++
	} else {
		cell.Class = Covered
		b.flags--
	}
	return cell.Flagged, nil
}
