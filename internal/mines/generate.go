package mines

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Placement selects how mine positions are drawn.
type Placement int

const (
	// PlacementRejection draws uniform indices in [1, size] and discards
	// repeats until the set is full.
	PlacementRejection Placement = iota
	// PlacementShuffle takes the first mineCount entries of a partial
	// Fisher-Yates shuffle of [1, size]. Its running time does not depend
	// on density.
	PlacementShuffle
)

// String returns the configuration name of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementRejection:
		return "rejection"
	case PlacementShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// ParsePlacement parses a configuration name. The empty string selects
// rejection sampling.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rejection":
		return PlacementRejection, nil
	case "shuffle":
		return PlacementShuffle, nil
	default:
		return PlacementRejection, fmt.Errorf("mines: unknown placement %q", s)
	}
}

// Generator produces randomized grids.
type Generator struct {
	Placement Placement
	// Rand is the randomness source. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// Generate validates the parameters, places mineCount mines and computes
// every neighbor count.
func (gen Generator) Generate(rows, cols, mineCount int) (*Grid, error) {
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := validateMineCount(g.Size(), mineCount); err != nil {
		return nil, err
	}

	rng := gen.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var set MineSet
	switch gen.Placement {
	case PlacementShuffle:
		set = shuffleMines(g.Size(), mineCount, rng)
	default:
		set = rejectMines(g.Size(), mineCount, rng)
	}

	g.layMines(set)
	return g, nil
}

// Generate builds a grid using rejection sampling.
func Generate(rows, cols, mineCount int, rng *rand.Rand) (*Grid, error) {
	return Generator{Placement: PlacementRejection, Rand: rng}.Generate(rows, cols, mineCount)
}

func rejectMines(size, count int, rng *rand.Rand) MineSet {
	set := newMineSet()
	for set.Len() < count {
		set.put(rng.Intn(size) + 1)
	}
	return set
}

func shuffleMines(size, count int, rng *rand.Rand) MineSet {
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i + 1
	}

	set := newMineSet()
	for i := 0; i < count; i++ {
		j := i + rng.Intn(size-i)
		indices[i], indices[j] = indices[j], indices[i]
		set.put(indices[i])
	}
	return set
}
