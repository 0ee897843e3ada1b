package minesweeper

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

var eightByEight = []int{16, 22, 28, 35, 39, 43, 44, 53, 63, 64}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 42}
}

// newFixtureGame returns a game running on a fixed mine layout.
func newFixtureGame(t *testing.T, rows, cols int, layout []int) *Game {
	t.Helper()
	g, err := New(config.DefaultMinesweeperConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testRuntime())

	grid, err := mines.GridFromMines(rows, cols, layout)
	if err != nil {
		t.Fatalf("GridFromMines() failed: %v", err)
	}
	g.start(mines.NewBoard(grid))
	g.Resize(80, 24)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Board = config.BoardConfig{Rows: 16, Columns: 16, Mines: 40}

	inputs := []core.InputFrame{
		frame(core.ActionRight), frame(core.ActionRight), frame(core.ActionDown),
		frame(core.ActionFlag), frame(core.ActionDown), frame(core.ActionReveal),
		frame(), frame(core.ActionLeft), frame(core.ActionReveal),
	}

	run := func() Snapshot {
		g, err := New(cfg)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		g.Reset(testRuntime())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshots differ with same seed:\n%+v\n%+v", snap1, snap2)
	}
	if len(snap1.MineLayout) != 40 {
		t.Errorf("MineLayout has %d mines, want 40", len(snap1.MineLayout))
	}
}

func TestDifferentSeedsDifferentBoards(t *testing.T) {
	layout := func(seed int64) []int {
		g, err := New(config.DefaultMinesweeperConfig())
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		rc := testRuntime()
		rc.Seed = seed
		g.Reset(rc)
		return g.Snapshot().MineLayout
	}

	if reflect.DeepEqual(layout(1), layout(2)) {
		t.Error("different seeds produced the same mine layout")
	}
}

func TestNewNormalizesBoard(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Board = config.BoardConfig{Rows: 1, Columns: 300, Mines: 0}

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	got := g.Config().Board
	if got.Rows != 2 || got.Columns != 200 || got.Mines != 1 {
		t.Errorf("Config().Board = %+v, want 2x200/1", got)
	}

	cfg.Generator.Placement = "spiral"
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject an unknown placement")
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	if g.cursor != (mines.Coord{Row: 1, Col: 1}) {
		t.Errorf("cursor = %v, want (1,1)", g.cursor)
	}

	for i := 0; i < 3; i++ {
		g.Step(frame(core.ActionRight))
	}
	g.Step(frame(core.ActionDown))
	if g.cursor != (mines.Coord{Row: 2, Col: 4}) {
		t.Errorf("cursor = %v, want (2,4)", g.cursor)
	}

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionDown))
		g.Step(frame(core.ActionRight))
	}
	if g.cursor != (mines.Coord{Row: 8, Col: 8}) {
		t.Errorf("cursor = %v, want (8,8)", g.cursor)
	}
}

func TestRevealCascadeViaInput(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	res := g.Step(frame(core.ActionReveal))
	if !res.Changed {
		t.Error("Step() should report a change after revealing")
	}
	if res.State.Score != 34 {
		t.Errorf("Score = %d, want 34", res.State.Score)
	}
	if res.State.GameOver {
		t.Error("game should still be active")
	}

	// Revealing an open cell again changes nothing.
	res = g.Step(frame(core.ActionReveal))
	if res.Changed {
		t.Error("second reveal of the same cell should not change the board")
	}
}

func TestFlagViaInput(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	res := g.Step(frame(core.ActionFlag))
	if !res.Changed {
		t.Error("placing a flag should report a change")
	}
	if g.MinesLeft() != 9 {
		t.Errorf("MinesLeft() = %d, want 9", g.MinesLeft())
	}

	// Flagged cell blocks reveal.
	res = g.Step(frame(core.ActionReveal))
	if res.State.Score != 0 {
		t.Errorf("Score = %d, want 0 with flagged cursor cell", res.State.Score)
	}

	g.Step(frame(core.ActionFlag))
	if g.MinesLeft() != 10 {
		t.Errorf("MinesLeft() = %d, want 10", g.MinesLeft())
	}
}

func TestPointerReveal(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	target := mines.Coord{Row: 5, Col: 4}
	x, y := g.cellOrigin(target)

	at, ok := g.CellAt(x, y)
	if !ok || at != target {
		t.Fatalf("CellAt(%d, %d) = %v, %v; want %v", x, y, at, ok, target)
	}
	if at, ok := g.CellAt(x+1, y); !ok || at != target {
		t.Errorf("gap after a glyph should map to the same cell, got %v, %v", at, ok)
	}

	in := frame(core.ActionReveal)
	in.SetPointer(x, y)
	res := g.Step(in)

	if g.cursor != target {
		t.Errorf("cursor = %v, want %v", g.cursor, target)
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, want 1 (numbered cell)", res.State.Score)
	}
}

func TestPointerOutsideBoardIgnored(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	in := frame(core.ActionReveal)
	in.SetPointer(0, 0)
	res := g.Step(in)

	if res.Changed || res.State.Score != 0 {
		t.Error("press outside the board should not reveal anything")
	}
	if _, ok := g.CellAt(0, 0); ok {
		t.Error("CellAt(0, 0) should be outside the board")
	}
}

func TestLossStopsClock(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	for i := 0; i < 10; i++ {
		g.Step(frame())
	}

	x, y := g.cellOrigin(mines.Coord{Row: 6, Col: 4})
	in := frame(core.ActionReveal)
	in.SetPointer(x, y)
	res := g.Step(in)

	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, want lost game", res.State)
	}

	elapsed := g.Snapshot().ElapsedTicks
	if elapsed != 11 {
		t.Errorf("ElapsedTicks = %d, want 11", elapsed)
	}
	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionReveal))
	}
	if g.Snapshot().ElapsedTicks != elapsed {
		t.Error("clock should stop once the game is over")
	}
	if g.Snapshot().State != StateLost {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StateLost)
	}
}

func TestWin(t *testing.T) {
	g := newFixtureGame(t, 2, 2, []int{1})

	g.Step(frame(core.ActionRight, core.ActionReveal))
	g.Step(frame(core.ActionDown, core.ActionReveal))
	res := g.Step(frame(core.ActionLeft, core.ActionReveal))

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("State = %+v, want won game", res.State)
	}

	sum := g.Summary()
	if !sum.Won || sum.SafeRevealed != 3 || sum.Rows != 2 || sum.Mines != 1 {
		t.Errorf("Summary() = %+v", sum)
	}
	if sum.Elapsed != 3*time.Second/30 {
		t.Errorf("Summary().Elapsed = %v, want 3 ticks", sum.Elapsed)
	}
	if sum.ID == "" {
		t.Error("Summary().ID should be set")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionReveal))
	}
	if g.Snapshot().ElapsedTicks != 0 || g.board.SafeRevealed() != 0 {
		t.Error("paused game should ignore input and freeze the clock")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	g := newFixtureGame(t, 60, 60, []int{3600})

	for i := 0; i < 40; i++ {
		g.Step(frame(core.ActionDown))
		g.Step(frame(core.ActionRight))
	}

	if g.viewRow == 1 || g.viewCol == 1 {
		t.Errorf("viewport did not scroll: viewRow=%d viewCol=%d", g.viewRow, g.viewCol)
	}

	x, y := g.cellOrigin(g.cursor)
	at, ok := g.CellAt(x, y)
	if !ok || at != g.cursor {
		t.Errorf("cursor %v not visible, CellAt = %v, %v", g.cursor, at, ok)
	}
	if y >= 24-footerHeight || y < hudHeight {
		t.Errorf("cursor row drawn at y=%d, outside board area", y)
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)
	g.Step(frame(core.ActionReveal))

	g.Resize(20, 5)
	if !g.State().Paused {
		t.Error("tiny window should pause the game")
	}
	g.Resize(100, 40)
	if g.State().Score != 34 {
		t.Errorf("Score = %d after resize, want 34", g.State().Score)
	}
}

func TestRender(t *testing.T) {
	g := newFixtureGame(t, 8, 8, eightByEight)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "MINESWEEPER") || !strings.Contains(out, "00:00") {
		t.Errorf("HUD missing title or clock:\n%s", out)
	}

	x, y := g.cellOrigin(mines.Coord{Row: 1, Col: 1})
	if screen.Get(x-1, y) != '[' || screen.Get(x+1, y) != ']' {
		t.Error("cursor brackets not drawn around (1,1)")
	}
	if screen.Get(x, y) != '·' {
		t.Errorf("covered cell glyph = %q, want '·'", screen.Get(x, y))
	}

	mx, my := g.cellOrigin(mines.Coord{Row: 6, Col: 4})
	in := frame(core.ActionReveal)
	in.SetPointer(mx, my)
	g.Step(in)
	g.Render(screen)

	if !strings.Contains(screen.String(), "BOOM") {
		t.Error("loss banner not rendered")
	}
	if cell := screen.GetCell(mx, my); cell.Rune != '*' || cell.Color != core.ColorBrightRed {
		t.Errorf("triggering mine = %+v, want bright red '*'", cell)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		cs   mines.CellState
		want rune
	}{
		{mines.CellState{Class: mines.Covered}, '·'},
		{mines.CellState{Class: mines.Flagged}, '⚑'},
		{mines.CellState{Class: mines.Blank}, ' '},
		{mines.CellState{Class: mines.Numbered, NeighborMines: 3}, '3'},
		{mines.CellState{Class: mines.Mine}, '*'},
		{mines.CellState{Class: mines.CorrectFlag}, '⚑'},
		{mines.CellState{Class: mines.IncorrectFlag}, '⚐'},
	}

	for _, tt := range tests {
		got, _ := Glyph(tt.cs)
		if got != tt.want {
			t.Errorf("Glyph(%s) = %q, want %q", tt.cs.Class, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{75 * time.Second, "01:15"},
		{59*time.Minute + 59*time.Second + 900*time.Millisecond, "59:59"},
		{125 * time.Minute, "125:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
