package search

import (
	"slices"

	"github.com/katalvlaran/gridsearch/grid"
)

// Path is a start→end node chain and its Euclidean cost.
type Path struct {
	Nodes []*grid.Node
	Cost  float64
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Cells returns the coordinates of the path nodes in order.
func (p Path) Cells() []grid.Cell {
	cells := make([]grid.Cell, len(p.Nodes))
	for i, n := range p.Nodes {
		cells[i] = n.Cell()
	}
	return cells
}

// Path reconstructs the route to the end node. It returns false, and an
// empty Path, unless the outcome is Found. The grid's scratch state must
// still be the one left by the run that produced o.
func (o Outcome) Path() (Path, bool) {
	if !o.Found || o.end == nil {
		return Path{}, false
	}
	return reconstruct(o.g, o.end), true
}

// reconstruct follows Parent links from end to the parentless start node,
// reverses them into start→end order and sums the step costs. The walk is
// bounded by the grid size.
func reconstruct(g *grid.Grid, end *grid.Node) Path {
	limit := g.Size()
	nodes := make([]*grid.Node, 0, 16)
	for cur := end; cur != nil && len(nodes) < limit; cur = cur.Parent {
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)

	cost := 0.0
	for i := 0; i+1 < len(nodes); i++ {
		cost += grid.StepCost(nodes[i], nodes[i+1])
	}
	return Path{Nodes: nodes, Cost: cost}
}
