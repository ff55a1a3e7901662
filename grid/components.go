package grid

// Components finds all contiguous regions of open (non-wall) cells under
// 4-connectivity. Each component is a slice of row-major indices in BFS
// discovery order; components are ordered by their first cell in row-major
// order.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int
	for i, n := range g.nodes {
		if n.wall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}
	return comps
}

// Reachable returns the number of open cells in the component containing c,
// c included. Walls and out-of-range cells report 0.
func (g *Grid) Reachable(c Cell) int {
	n, ok := g.At(c)
	if !ok || n.wall {
		return 0
	}
	return len(g.flood(g.Index(n), make([]bool, len(g.nodes))))
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// flood collects the component of index i0 with a queue-backed BFS.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.nodes[queue[qi]]
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
