package mines

// neighborOffsets lists the eight directions clockwise from upper-left.
var neighborOffsets = [8]Coord{
	{Row: -1, Col: -1},
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
}

// Neighbors returns the in-bounds cells adjacent to c, in clockwise order
// starting at the upper-left. Corners have 3, edges 5 and interior cells 8.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborMineCount returns how many of the neighbors of c are mines.
func (g *Grid) NeighborMineCount(c Coord) int {
	count := 0
	for _, n := range g.Neighbors(c) {
		if g.mines.Has(g.Index(n)) {
			count++
		}
	}
	return count
}
