package minesweeper

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// numberColors colors neighbor counts 1 through 8.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// Glyph returns the rune and color used to draw a cell.
func Glyph(cs mines.CellState) (rune, core.Color) {
	switch cs.Class {
	case mines.Flagged:
		return '⚑', core.ColorBrightRed
	case mines.Blank:
		return ' ', core.ColorDefault
	case mines.Numbered:
		n := core.Clamp(cs.NeighborMines, 1, 8)
		return rune('0' + n), numberColors[n]
	case mines.Mine:
		return '*', core.ColorBrightRed
	case mines.UntouchedMine:
		return '*', core.ColorRed
	case mines.NeutralMine:
		return '*', core.ColorGreen
	case mines.CorrectFlag:
		return '⚑', core.ColorBrightGreen
	case mines.IncorrectFlag:
		return '⚐', core.ColorOrange
	default:
		return '·', core.ColorGray
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	if g.paused {
		g.renderPaused(dst)
	} else {
		g.renderBoard(dst)
	}
	g.renderFooter(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, counters and status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "MINESWEEPER", core.ColorBrightYellow)

	grid := g.board.Grid()
	left := fmt.Sprintf("⚑ %d", g.MinesLeft())
	clock := FormatClock(g.Elapsed())
	right := fmt.Sprintf("%dx%d  safe %d", grid.Rows(), grid.Columns(), g.board.RemainingSafeCells())

	dst.DrawTextColored(1, 1, left, core.ColorBrightRed)
	dst.DrawTextCentered(1, clock)
	dst.DrawText(g.screenW-len(right)-1, 1, right)

	switch g.board.Status() {
	case mines.Won:
		dst.DrawTextCenteredColored(2, fmt.Sprintf("CLEARED in %s!", clock), core.ColorBrightGreen)
	case mines.Lost:
		dst.DrawTextCenteredColored(2, "BOOM! You hit a mine.", core.ColorBrightRed)
	}
}

// renderBoard draws the visible part of the grid and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.board.Grid()
	vr, vc := g.visibleRows(), g.visibleCols()

	for dr := 0; dr < vr; dr++ {
		for dc := 0; dc < vc; dc++ {
			at := mines.Coord{Row: g.viewRow + dr, Col: g.viewCol + dc}
			if !grid.InBounds(at) {
				continue
			}
			cs, err := g.board.CellState(at)
			if err != nil {
				continue
			}
			x, y := g.cellOrigin(at)
			r, c := Glyph(cs)
			dst.SetColored(x, y, r, c)
		}
	}

	if g.board.Status() == mines.Active {
		x, y := g.cellOrigin(g.cursor)
		dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
		dst.SetColored(x+1, y, ']', core.ColorBrightYellow)
	}

	g.renderScrollHints(dst)
}

// renderScrollHints marks board edges that continue off screen.
func (g *Game) renderScrollHints(dst *core.Screen) {
	grid := g.board.Grid()
	r := g.boardRect()

	if g.viewCol > 1 {
		dst.SetColored(r.X-1, r.Y+r.H/2, '◀', core.ColorGray)
	}
	if g.viewCol+g.visibleCols()-1 < grid.Columns() {
		dst.SetColored(r.Right(), r.Y+r.H/2, '▶', core.ColorGray)
	}
	if g.viewRow > 1 {
		dst.SetColored(r.X+r.W/2, r.Y-1, '▲', core.ColorGray)
	}
	if g.viewRow+g.visibleRows()-1 < grid.Rows() {
		dst.SetColored(r.X+r.W/2, r.Bottom(), '▼', core.ColorGray)
	}
}

// renderPaused hides the board behind a pause box.
func (g *Game) renderPaused(dst *core.Screen) {
	boxW := 24
	boxH := 5
	box := core.NewRect((g.screenW-boxW)/2, hudHeight+(g.screenH-hudHeight-footerHeight-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorYellow)
	dst.DrawTextCenteredColored(box.Y+1, "PAUSED", core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, "P to resume")
}

// renderFooter draws the key hints.
func (g *Game) renderFooter(dst *core.Screen) {
	hint := "←↑↓→ move  space reveal  f flag  p pause  q quit"
	if g.board.Status() != mines.Active {
		hint = "r new game  tab scores  q quit"
	}
	dst.DrawTextCenteredColored(g.screenH-1, hint, core.ColorGray)

	if g.board.Status() == mines.Active && !g.paused {
		pos := strconv.Itoa(g.cursor.Row) + "," + strconv.Itoa(g.cursor.Col)
		dst.DrawTextColored(g.screenW-len(pos)-1, g.screenH-1, pos, core.ColorGray)
	}
}
