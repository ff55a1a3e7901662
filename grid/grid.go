package grid

import (
	"fmt"
	"iter"
	"math"
)

// neighborOffsets enumerates south, north, east, west as (dRow, dCol).
// The order is fixed; frontier tie-breaks depend on it.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rows×cols array of nodes. Its dimensions and node identities are
// fixed at construction. A Grid is not safe for concurrent mutation; callers
// serialize runs and edits (see package engine).
type Grid struct {
	rows, cols int
	nodes      []*Node // row-major
	start, end *Node
}

// New builds a rows×cols grid with every node at the scratch baseline, then
// places endpoints and walls according to opts.
// Returns ErrEmptyGrid when rows or cols is below 1, ErrOutOfBounds when an
// endpoint or wall cell lies outside the grid, ErrEndpointConflict when start
// and end coincide.
// Complexity: O(rows×cols).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		nodes: make([]*Node, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := &Node{row: r, col: c}
			n.resetScratch()
			g.nodes[r*cols+c] = n
		}
	}

	start, end := o.Start, o.End
	if o.DefaultEndpoints {
		if start == nil {
			start = &Cell{Row: rows / 2, Col: cols / 4}
		}
		if end == nil {
			end = &Cell{Row: rows / 2, Col: 3 * cols / 4}
		}
	}
	if start != nil {
		if err := g.SetStart(*start); err != nil {
			return nil, err
		}
	}
	if end != nil {
		if err := g.SetEnd(*end); err != nil {
			return nil, err
		}
	}
	if o.Walls != nil {
		g.ApplyWalls(o.Walls)
	}
	for _, c := range o.WallCells {
		if err := g.SetWall(c, true); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.nodes) }

// Start returns the start node, or nil when none is placed.
func (g *Grid) Start() *Node { return g.start }

// End returns the end node, or nil when none is placed.
func (g *Grid) End() *Node { return g.end }

// InBounds reports whether (row, col) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the node at c, or false when c is out of bounds.
func (g *Grid) At(c Cell) (*Node, bool) {
	if !g.InBounds(c.Row, c.Col) {
		return nil, false
	}
	return g.nodes[c.Row*g.cols+c.Col], true
}

// Index maps n to its row-major index row*cols + col.
// Search code uses it to key per-run membership slices.
func (g *Grid) Index(n *Node) int {
	return n.row*g.cols + n.col
}

// Nodes iterates every node in row-major order.
func (g *Grid) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range g.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Neighbors returns the up-to-4 orthogonally adjacent, in-bounds, non-wall
// nodes of n in the order south, north, east, west. Out-of-range positions
// are skipped, never reported.
// Complexity: O(1).
func (g *Grid) Neighbors(n *Node) []*Node {
	res := make([]*Node, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := n.row+d[0], n.col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		nb := g.nodes[r*g.cols+c]
		if nb.wall {
			continue
		}
		res = append(res, nb)
	}
	return res
}

// StepCost returns the Euclidean distance between a and b. For adjacent
// cells this is the unit edge weight; otherwise it is the straight-line
// distance used as heuristic.
func StepCost(a, b *Node) float64 {
	return math.Hypot(float64(a.row-b.row), float64(a.col-b.col))
}

// StepCost is the method form of the package-level StepCost.
func (g *Grid) StepCost(a, b *Node) float64 {
	return StepCost(a, b)
}

// ResetScratch sets G=+Inf, H=0, F=+Inf, Parent=nil on every node.
// Walls and endpoints are untouched.
// Complexity: O(rows×cols).
func (g *Grid) ResetScratch() {
	for _, n := range g.nodes {
		n.resetScratch()
	}
}
