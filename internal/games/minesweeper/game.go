// Package minesweeper hosts the board engine as a playable terminal game:
// a keyboard/mouse cursor, a scrolling viewport for large boards, the game
// clock and the HUD.
package minesweeper

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Layout constants
const (
	cellWidth    = 2 // glyph + gap
	hudHeight    = 3 // title, counters, status line
	footerHeight = 1
	minScreenW   = 30
	minScreenH   = hudHeight + footerHeight + 2
)

// Game is a single-player minesweeper session.
type Game struct {
	cfg       config.MinesweeperConfig
	placement mines.Placement
	rng       *rand.Rand
	board     *mines.Board
	gameID    string

	tick         uint64
	elapsedTicks uint64 // ticks spent active and unpaused
	tickRate     int

	cursor  mines.Coord
	viewRow int // first visible row, 1-indexed
	viewCol int // first visible column, 1-indexed

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	lastChanges int // cells changed by the most recent reveal
}

// New creates a game for the given configuration. The board is clamped
// into the playable range; an unknown placement strategy is an error.
func New(cfg config.MinesweeperConfig) (*Game, error) {
	cfg.Normalize()
	placement, err := cfg.Placement()
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:       cfg,
		placement: placement,
		tickRate:  core.DefaultConfig().TickRate,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Config returns the normalized configuration.
func (g *Game) Config() config.MinesweeperConfig {
	return g.cfg
}

// Reset starts a new game on a freshly generated board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if cfg.TickRate > 0 {
		g.tickRate = cfg.TickRate
	}

	gen := mines.Generator{Placement: g.placement, Rand: g.rng}
	b := g.cfg.Board
	grid, err := gen.Generate(b.Rows, b.Columns, b.Mines)
	if err != nil {
		// New normalizes the board, so generation cannot reject it.
		panic(fmt.Sprintf("minesweeper: %v", err))
	}

	g.start(mines.NewBoard(grid))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// start resets per-game state around a new board.
func (g *Game) start(board *mines.Board) {
	g.board = board
	g.gameID = uuid.NewString()
	g.tick = 0
	g.elapsedTicks = 0
	g.paused = false
	g.lastChanges = 0
	g.cursor = mines.Coord{Row: 1, Col: 1}
	g.viewRow = 1
	g.viewCol = 1
}

// Resize adapts the viewport to new screen dimensions without touching
// the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.scrollToCursor()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.board.Status() != mines.Active

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	g.elapsedTicks++

	g.moveCursor(in)

	// A press outside the board moves nothing and acts on nothing.
	if in.Pointer != nil {
		at, ok := g.CellAt(in.Pointer.X, in.Pointer.Y)
		if !ok {
			return core.StepResult{State: g.State()}
		}
		g.cursor = at
	}

	changed := false
	switch {
	case in.Has(core.ActionReveal):
		res, err := g.board.Reveal(g.cursor)
		if err == nil {
			g.lastChanges = len(res.Changes)
			changed = g.lastChanges > 0
		}
	case in.Has(core.ActionFlag):
		before := g.board.FlagCount()
		if _, err := g.board.ToggleFlag(g.cursor); err == nil {
			changed = g.board.FlagCount() != before
		}
	}

	g.scrollToCursor()
	return core.StepResult{State: g.State(), Changed: changed}
}

// moveCursor applies directional input, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	grid := g.board.Grid()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 1, grid.Rows())
	g.cursor.Col = core.Clamp(g.cursor.Col, 1, grid.Columns())
}

// visibleRows returns how many board rows fit on screen.
func (g *Game) visibleRows() int {
	return core.Clamp(g.screenH-hudHeight-footerHeight, 1, g.board.Grid().Rows())
}

// visibleCols returns how many board columns fit on screen. Each column
// takes cellWidth characters plus one trailing character for the cursor.
func (g *Game) visibleCols() int {
	return core.Clamp((g.screenW-1)/cellWidth, 1, g.board.Grid().Columns())
}

// scrollToCursor keeps the cursor inside the viewport.
func (g *Game) scrollToCursor() {
	if g.board == nil {
		return
	}
	grid := g.board.Grid()
	vr, vc := g.visibleRows(), g.visibleCols()

	if g.cursor.Row < g.viewRow {
		g.viewRow = g.cursor.Row
	}
	if g.cursor.Row >= g.viewRow+vr {
		g.viewRow = g.cursor.Row - vr + 1
	}
	if g.cursor.Col < g.viewCol {
		g.viewCol = g.cursor.Col
	}
	if g.cursor.Col >= g.viewCol+vc {
		g.viewCol = g.cursor.Col - vc + 1
	}

	g.viewRow = core.Clamp(g.viewRow, 1, grid.Rows()-vr+1)
	g.viewCol = core.Clamp(g.viewCol, 1, grid.Columns()-vc+1)
}

// boardRect returns the screen area occupied by the visible board.
func (g *Game) boardRect() core.Rect {
	w := g.visibleCols()*cellWidth + 1
	h := g.visibleRows()
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// CellAt maps a screen position to the board cell drawn there.
func (g *Game) CellAt(x, y int) (mines.Coord, bool) {
	r := g.boardRect()
	if !r.Contains(x, y) || x == r.X {
		return mines.Coord{}, false
	}
	at := mines.Coord{
		Row: g.viewRow + (y - r.Y),
		Col: g.viewCol + (x-r.X-1)/cellWidth,
	}
	if !g.board.Grid().InBounds(at) {
		return mines.Coord{}, false
	}
	return at, true
}

// cellOrigin returns the screen position of the glyph for c.
func (g *Game) cellOrigin(c mines.Coord) (int, int) {
	r := g.boardRect()
	return r.X + 1 + (c.Col-g.viewCol)*cellWidth, r.Y + (c.Row - g.viewRow)
}

// Elapsed returns the game clock.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.elapsedTicks) * time.Second / time.Duration(g.tickRate)
}

// MinesLeft returns the mine count minus placed flags. It goes negative
// when the player over-flags.
func (g *Game) MinesLeft() int {
	return g.board.Grid().MineCount() - g.board.FlagCount()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.SafeRevealed(),
		GameOver: g.board.Status() != mines.Active,
		Won:      g.board.IsWon(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary describes the game for the results ledger.
func (g *Game) Summary() core.Summary {
	grid := g.board.Grid()
	return core.Summary{
		ID:           g.gameID,
		Rows:         grid.Rows(),
		Columns:      grid.Columns(),
		Mines:        grid.MineCount(),
		Won:          g.board.IsWon(),
		SafeRevealed: g.board.SafeRevealed(),
		Elapsed:      g.Elapsed(),
	}
}

// FormatClock renders a duration as mm:ss. Minutes grow past two digits
// instead of wrapping.
func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
