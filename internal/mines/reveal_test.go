package mines

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T, rows, cols int, mines []int) *Board {
	t.Helper()
	g, err := GridFromMines(rows, cols, mines)
	require.NoError(t, err)
	return NewBoard(g)
}

// countClass returns how many changes carry the given class.
func countClass(changes []Change, class Classification) int {
	n := 0
	for _, c := range changes {
		if c.Class == class {
			n++
		}
	}
	return n
}

func TestRevealCascadeFromCorner(t *testing.T) {
	b := newFixture(t, 8, 8, eightByEight)

	res, err := b.Reveal(Coord{1, 1})
	require.NoError(t, err)

	assert.Equal(t, Active, res.Status)
	assert.Equal(t, 34, b.SafeRevealed())
	assert.Len(t, res.Changes, 34)
	assert.Equal(t, 54-34, b.RemainingSafeCells())
	assert.Equal(t, Change{Coord: Coord{1, 1}, Class: Blank}, res.Changes[0])

	seen := make(map[Coord]bool)
	for _, c := range res.Changes {
		assert.False(t, seen[c.Coord], "cell %v changed twice", c.Coord)
		seen[c.Coord] = true
		assert.Contains(t, []Classification{Blank, Numbered}, c.Class)
	}

	cs, err := b.CellState(Coord{4, 3})
	require.NoError(t, err)
	assert.Equal(t, Numbered, cs.Class)
	assert.Equal(t, 2, cs.NeighborMines)

	cs, err = b.CellState(Coord{8, 8})
	require.NoError(t, err)
	assert.Equal(t, Covered, cs.Class)
	assert.False(t, cs.Revealed)
}

func TestRevealNumberedStopsCascade(t *testing.T) {
	b := newFixture(t, 8, 8, eightByEight)

	res, err := b.Reveal(Coord{5, 4})
	require.NoError(t, err)

	assert.Equal(t, Active, res.Status)
	assert.Equal(t, []Change{{Coord: Coord{5, 4}, Class: Numbered}}, res.Changes)
	assert.Equal(t, 1, b.SafeRevealed())
}

func TestRevealMineLoses(t *testing.T) {
	b := newFixture(t, 8, 8, eightByEight)

	_, err := b.ToggleFlag(Coord{2, 8}) // mine
	require.NoError(t, err)
	_, err = b.ToggleFlag(Coord{1, 1}) // safe
	require.NoError(t, err)

	res, err := b.Reveal(Coord{6, 4})
	require.NoError(t, err)

	assert.Equal(t, Lost, res.Status)
	assert.True(t, b.IsLost())
	assert.False(t, b.IsWon())
	assert.Equal(t, 0, b.SafeRevealed())
	assert.Equal(t, Change{Coord: Coord{6, 4}, Class: Mine}, res.Changes[0])

	// Every cell is classified once the game is over.
	assert.Len(t, res.Changes, 64)
	assert.Equal(t, 1, countClass(res.Changes, Mine))
	assert.Equal(t, 1, countClass(res.Changes, CorrectFlag))
	assert.Equal(t, 1, countClass(res.Changes, IncorrectFlag))
	assert.Equal(t, 8, countClass(res.Changes, UntouchedMine))
	assert.Equal(t, 0, countClass(res.Changes, NeutralMine))

	tests := []struct {
		at   Coord
		want Classification
	}{
		{Coord{6, 4}, Mine},
		{Coord{2, 8}, CorrectFlag},
		{Coord{1, 1}, IncorrectFlag},
		{Coord{8, 8}, UntouchedMine},
		{Coord{5, 4}, Numbered},
		{Coord{2, 2}, Blank},
	}
	for _, tt := range tests {
		cs, err := b.CellState(tt.at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, cs.Class, "class at %v", tt.at)
	}

	// The sweep does not reveal cells or clear flags.
	cs, err := b.CellState(Coord{2, 8})
	require.NoError(t, err)
	assert.True(t, cs.Flagged)
	assert.False(t, cs.Revealed)
}

func TestRevealAfterLossKeepsRevealedClasses(t *testing.T) {
	b := newFixture(t, 8, 8, eightByEight)

	first, err := b.Reveal(Coord{1, 1})
	require.NoError(t, err)
	require.Len(t, first.Changes, 34)

	res, err := b.Reveal(Coord{3, 6})
	require.NoError(t, err)
	require.Equal(t, Lost, res.Status)

	// Revealed cells are not re-reported by the sweep.
	assert.Len(t, res.Changes, 64-34)
	assert.Equal(t, 34, b.SafeRevealed())

	for _, c := range first.Changes {
		cs, err := b.CellState(c.Coord)
		require.NoError(t, err)
		assert.Equal(t, c.Class, cs.Class, "class at %v", c.Coord)
	}
}

func TestRevealFlagsActAsWalls(t *testing.T) {
	tests := []struct {
		name  string
		flags []Coord
		want  int
	}{
		{"no flags", nil, 22},
		{"flag inside region", []Coord{{2, 2}}, 21},
		{"flag on region border", []Coord{{1, 3}}, 21},
		{"wall", []Coord{{1, 3}, {2, 3}, {3, 3}, {4, 3}}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFixture(t, 10, 10, tenByTen)
			for _, f := range tt.flags {
				flagged, err := b.ToggleFlag(f)
				require.NoError(t, err)
				require.True(t, flagged)
			}

			res, err := b.Reveal(Coord{1, 1})
			require.NoError(t, err)

			assert.Equal(t, Active, res.Status)
			assert.Equal(t, tt.want, b.SafeRevealed())
			assert.Len(t, res.Changes, tt.want)

			for _, f := range tt.flags {
				cs, err := b.CellState(f)
				require.NoError(t, err)
				assert.False(t, cs.Revealed, "flagged %v revealed", f)
				assert.Equal(t, Flagged, cs.Class)
			}
		})
	}
}

func TestRevealWallBoundary(t *testing.T) {
	b := newFixture(t, 10, 10, tenByTen)
	for _, f := range []Coord{{1, 3}, {2, 3}, {3, 3}, {4, 3}} {
		_, err := b.ToggleFlag(f)
		require.NoError(t, err)
	}

	res, err := b.Reveal(Coord{1, 1})
	require.NoError(t, err)

	got := make(map[Coord]bool)
	for _, c := range res.Changes {
		got[c.Coord] = true
	}
	for r := 1; r <= 6; r++ {
		for c := 1; c <= 2; c++ {
			assert.True(t, got[Coord{r, c}], "expected %v revealed", Coord{r, c})
		}
	}
	assert.Len(t, got, 12)
}

func TestRevealSeparateRegions(t *testing.T) {
	b := newFixture(t, 10, 10, tenByTen)

	res, err := b.Reveal(Coord{8, 7})
	require.NoError(t, err)
	assert.Len(t, res.Changes, 37)

	res, err = b.Reveal(Coord{1, 1})
	require.NoError(t, err)
	// The two regions share two numbered cells.
	assert.Len(t, res.Changes, 20)
	assert.Equal(t, 57, b.SafeRevealed())
	assert.Equal(t, 89-57, b.RemainingSafeCells())

	res, err = b.Reveal(Coord{10, 10})
	require.NoError(t, err)
	assert.Empty(t, res.Changes, "region already open")
}

func TestRevealWin(t *testing.T) {
	b := newFixture(t, 2, 2, []int{1})

	for _, at := range []Coord{{1, 2}, {2, 1}} {
		res, err := b.Reveal(at)
		require.NoError(t, err)
		assert.Equal(t, Active, res.Status)
		assert.Equal(t, []Change{{Coord: at, Class: Numbered}}, res.Changes)
	}

	res, err := b.Reveal(Coord{2, 2})
	require.NoError(t, err)

	assert.Equal(t, Won, res.Status)
	assert.True(t, b.IsWon())
	assert.Equal(t, 0, b.RemainingSafeCells())
	assert.Equal(t, []Change{
		{Coord: Coord{2, 2}, Class: Numbered},
		{Coord: Coord{1, 1}, Class: NeutralMine},
	}, res.Changes)
}

func TestRevealWinWithFlaggedMine(t *testing.T) {
	b := newFixture(t, 2, 2, []int{4})

	_, err := b.ToggleFlag(Coord{2, 2})
	require.NoError(t, err)

	var res Result
	for _, at := range []Coord{{1, 1}, {1, 2}, {2, 1}} {
		res, err = b.Reveal(at)
		require.NoError(t, err)
	}

	assert.Equal(t, Won, res.Status)
	cs, err := b.CellState(Coord{2, 2})
	require.NoError(t, err)
	assert.Equal(t, CorrectFlag, cs.Class)
}

func TestRevealNoOps(t *testing.T) {
	b := newFixture(t, 8, 8, eightByEight)

	t.Run("flagged cell", func(t *testing.T) {
		_, err := b.ToggleFlag(Coord{1, 1})
		require.NoError(t, err)

		res, err := b.Reveal(Coord{1, 1})
		require.NoError(t, err)
		assert.Empty(t, res.Changes)
		assert.Equal(t, 0, b.SafeRevealed())

		_, err = b.ToggleFlag(Coord{1, 1})
		require.NoError(t, err)
	})

	t.Run("already revealed", func(t *testing.T) {
		_, err := b.Reveal(Coord{5, 4})
		require.NoError(t, err)

		res, err := b.Reveal(Coord{5, 4})
		require.NoError(t, err)
		assert.Empty(t, res.Changes)
		assert.Equal(t, 1, b.SafeRevealed())
	})

	t.Run("out of bounds", func(t *testing.T) {
		res, err := b.Reveal(Coord{9, 1})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, Active, res.Status)
		assert.Empty(t, res.Changes)

		_, err = b.Reveal(Coord{0, 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("finished game", func(t *testing.T) {
		_, err := b.Reveal(Coord{6, 4})
		require.NoError(t, err)
		require.True(t, b.IsLost())

		res, err := b.Reveal(Coord{1, 1})
		require.NoError(t, err)
		assert.Equal(t, Lost, res.Status)
		assert.Empty(t, res.Changes)
		assert.Equal(t, 1, b.SafeRevealed())
	})
}

func TestRevealInvariantsRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 50; game++ {
		b, err := NewGame(12, 15, 30, rng)
		require.NoError(t, err)
		safe := b.Grid().Size() - b.Grid().MineCount()

		for b.Status() == Active {
			at := Coord{Row: rng.Intn(12) + 1, Col: rng.Intn(15) + 1}
			before := b.SafeRevealed()

			if rng.Intn(5) == 0 {
				_, err := b.ToggleFlag(at)
				require.NoError(t, err)
				continue
			}

			res, err := b.Reveal(at)
			require.NoError(t, err)

			require.GreaterOrEqual(t, b.SafeRevealed(), before)
			require.LessOrEqual(t, b.SafeRevealed(), safe)
			require.Equal(t, safe-b.SafeRevealed(), b.RemainingSafeCells())
			if res.Status == Won {
				require.Equal(t, safe, b.SafeRevealed())
			}
		}

		// Flagged cells are never revealed.
		for i := 1; i <= b.Grid().Size(); i++ {
			cell := b.Grid().Cell(b.Grid().CoordOf(i))
			require.False(t, cell.Flagged && cell.Revealed)
			require.NotEqual(t, Covered, cell.Class)
			require.NotEqual(t, Flagged, cell.Class)
		}
	}
}
