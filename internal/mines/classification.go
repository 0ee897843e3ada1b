package mines

// Classification is the display class of a cell.
type Classification int

const (
	// Covered is an unrevealed, unflagged cell during play.
	Covered Classification = iota
	// Flagged is an unrevealed cell carrying a flag during play.
	Flagged
	// Blank is a revealed safe cell with no adjacent mines.
	Blank
	// Numbered is a revealed safe cell with at least one adjacent mine.
	Numbered
	// Mine is the mine whose reveal ended the game.
	Mine
	// UntouchedMine is an unflagged mine shown after a loss.
	UntouchedMine
	// NeutralMine is an unflagged mine shown after a win.
	NeutralMine
	// CorrectFlag is a flag that sat on a mine.
	CorrectFlag
	// IncorrectFlag is a flag that sat on a safe cell.
	IncorrectFlag
)

// String returns a short lowercase name.
func (c Classification) String() string {
	switch c {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Blank:
		return "blank"
	case Numbered:
		return "numbered"
	case Mine:
		return "mine"
	case UntouchedMine:
		return "untouched-mine"
	case NeutralMine:
		return "neutral-mine"
	case CorrectFlag:
		return "correct-flag"
	case IncorrectFlag:
		return "incorrect-flag"
	default:
		return "unknown"
	}
}

// IsMine reports whether the class marks a mined cell.
func (c Classification) IsMine() bool {
	return c == Mine || c == UntouchedMine || c == NeutralMine || c == CorrectFlag
}
