package mines

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// MineSet holds the distinct 1-indexed linear indices of mined cells.
type MineSet struct {
	set mapset.Set[int]
}

func newMineSet() MineSet {
	return MineSet{set: mapset.New[int]()}
}

func (m MineSet) put(i int) {
	m.set.Put(i)
}

// Has reports whether linear index i holds a mine.
func (m MineSet) Has(i int) bool {
	return m.set.Has(i)
}

// Len returns the number of mines.
func (m MineSet) Len() int {
	return m.set.Size()
}

// Each calls fn for every mined index in unspecified order.
func (m MineSet) Each(fn func(i int)) {
	m.set.Each(fn)
}

// Indices returns the mined indices in ascending order.
func (m MineSet) Indices() []int {
	out := make([]int, 0, m.Len())
	m.set.Each(func(i int) {
		out = append(out, i)
	})
	sort.Ints(out)
	return out
}
