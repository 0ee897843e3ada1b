package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

var flagReveal string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a generated board",
	Long: `Generate a board and print it without starting the TUI.

With --reveal the cell is revealed first and the resulting view is printed.
While the game is still running the mine layout is printed below it.

Examples:
  mines show --seed 42
  mines show --seed 42 --reveal 1,1
  mines show --rows 5 --columns 5 --mines 3 --reveal 3,3`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagReveal, "reveal", "", "Reveal this cell first (row,col, 1-indexed)")
	addBoardFlags(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) {
	boardCfg, err := loadBoardConfig(cmd)
	exitOnError("loading config", err)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	exitOnError("showing board", showBoard(cmd.OutOrStdout(), boardCfg, seed, flagReveal))
}

// showBoard generates a board from cfg and seed, optionally reveals one
// cell, and writes the result to w.
func showBoard(w io.Writer, cfg config.MinesweeperConfig, seed int64, reveal string) error {
	placement, err := cfg.Placement()
	if err != nil {
		return err
	}

	gen := mines.Generator{Placement: placement, Rand: rand.New(rand.NewSource(seed))}
	grid, err := gen.Generate(cfg.Board.Rows, cfg.Board.Columns, cfg.Board.Mines)
	if err != nil {
		return err
	}
	board := mines.NewBoard(grid)

	fmt.Fprintf(w, "%s  seed %d  %s\n", cfg.Board, seed, placement)

	if reveal != "" {
		at, err := parseCoord(reveal)
		if err != nil {
			return err
		}
		res, err := board.Reveal(at)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "reveal %s: %d cells changed, %s, %d safe cells left\n",
			at, len(res.Changes), res.Status, board.RemainingSafeCells())
	}

	fmt.Fprintln(w)
	writeCells(w, grid, func(c mines.Coord) mines.CellState {
		cs, _ := board.CellState(c)
		return cs
	})

	if board.Status() == mines.Active {
		fmt.Fprintln(w)
		writeCells(w, grid, layoutCell(grid))
	}

	shown := 0
	for row := 1; row <= grid.Rows(); row++ {
		for col := 1; col <= grid.Columns(); col++ {
			if cs, _ := board.CellState(mines.Coord{Row: row, Col: col}); cs.Class.IsMine() {
				shown++
			}
		}
	}
	if shown > 0 {
		fmt.Fprintf(w, "\n%d of %d mines shown\n", shown, grid.MineCount())
	}
	return nil
}

// layoutCell classifies cells by what they hold, ignoring play state.
func layoutCell(grid *mines.Grid) func(mines.Coord) mines.CellState {
	return func(c mines.Coord) mines.CellState {
		cell := grid.Cell(c)
		cs := mines.CellState{Coord: c, Class: mines.Blank}
		switch {
		case cell.Mine:
			cs.Class = mines.UntouchedMine
		case cell.NeighborMines > 0:
			cs.Class = mines.Numbered
			cs.NeighborMines = cell.NeighborMines
		}
		return cs
	}
}

// writeCells prints one line per row using the game's glyphs. Colors are
// only emitted when w is a terminal.
func writeCells(w io.Writer, grid *mines.Grid, view func(mines.Coord) mines.CellState) {
	renderer := lipgloss.NewRenderer(w)
	for row := 1; row <= grid.Rows(); row++ {
		var line strings.Builder
		for col := 1; col <= grid.Columns(); col++ {
			if col > 1 {
				line.WriteByte(' ')
			}
			r, color := minesweeper.Glyph(view(mines.Coord{Row: row, Col: col}))
			style := renderer.NewStyle()
			if code := color.ANSI(); code != "" {
				style = style.Foreground(lipgloss.Color(code))
			}
			line.WriteString(style.Render(string(r)))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

// parseCoord parses "row,col".
func parseCoord(s string) (mines.Coord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return mines.Coord{}, fmt.Errorf("invalid cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return mines.Coord{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return mines.Coord{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return mines.Coord{Row: row, Col: col}, nil
}
