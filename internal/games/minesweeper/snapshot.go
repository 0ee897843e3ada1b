package minesweeper

import "github.com/vovakirdan/tui-mines/internal/mines"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	ElapsedTicks  uint64
	Rows          int
	Columns       int
	MineLayout    []int // 1-indexed linear indices, ascending
	Cursor        mines.Coord
	SafeRevealed  int
	RemainingSafe int
	Flags         int
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.IsWon():
		state = StateWon
	case g.board.IsLost():
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	grid := g.board.Grid()
	return Snapshot{
		Tick:          g.tick,
		ElapsedTicks:  g.elapsedTicks,
		Rows:          grid.Rows(),
		Columns:       grid.Columns(),
		MineLayout:    grid.Mines().Indices(),
		Cursor:        g.cursor,
		SafeRevealed:  g.board.SafeRevealed(),
		RemainingSafe: g.board.RemainingSafeCells(),
		Flags:         g.board.FlagCount(),
		State:         state,
	}
}
