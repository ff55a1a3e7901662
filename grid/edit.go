package grid

import "fmt"

// node resolves c or returns ErrOutOfBounds.
func (g *Grid) node(c Cell) (*Node, error) {
	n, ok := g.At(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return n, nil
}

// SetStart moves the start flag to c. The target cell's wall is cleared and
// the previous start node, if any, loses its flag.
// Returns ErrOutOfBounds or ErrEndpointConflict when c is the end node.
func (g *Grid) SetStart(c Cell) error {
	n, err := g.node(c)
	if err != nil {
		return err
	}
	if n.end {
		return fmt.Errorf("%w: start %s", ErrEndpointConflict, c)
	}
	if g.start != nil {
		g.start.start = false
	}
	n.start = true
	n.wall = false
	g.start = n
	return nil
}

// SetEnd moves the end flag to c. The target cell's wall is cleared and the
// previous end node, if any, loses its flag.
// Returns ErrOutOfBounds or ErrEndpointConflict when c is the start node.
func (g *Grid) SetEnd(c Cell) error {
	n, err := g.node(c)
	if err != nil {
		return err
	}
	if n.start {
		return fmt.Errorf("%w: end %s", ErrEndpointConflict, c)
	}
	if g.end != nil {
		g.end.end = false
	}
	n.end = true
	n.wall = false
	g.end = n
	return nil
}

// ClearStart removes the start flag.
func (g *Grid) ClearStart() {
	if g.start != nil {
		g.start.start = false
		g.start = nil
	}
}

// ClearEnd removes the end flag.
func (g *Grid) ClearEnd() {
	if g.end != nil {
		g.end.end = false
		g.end = nil
	}
}

// SetWall paints (wall=true) or erases (wall=false) the wall at c.
// Returns ErrOutOfBounds, or ErrEndpointWall when painting over an endpoint.
// Erasing an endpoint is a no-op.
func (g *Grid) SetWall(c Cell, wall bool) error {
	n, err := g.node(c)
	if err != nil {
		return err
	}
	if n.start || n.end {
		if wall {
			return fmt.Errorf("%w: %s", ErrEndpointWall, c)
		}
		return nil
	}
	n.wall = wall
	return nil
}

// ApplyWalls replaces the wall of every non-endpoint cell with fn(row, col).
// Cells are visited in row-major order so a stateful fn (RandomWalls) is
// deterministic for a given seed.
func (g *Grid) ApplyWalls(fn WallFunc) {
	for _, n := range g.nodes {
		if n.start || n.end {
			n.wall = false
			continue
		}
		n.wall = fn(n.row, n.col)
	}
}

// ClearWalls erases every wall.
func (g *Grid) ClearWalls() {
	for _, n := range g.nodes {
		n.wall = false
	}
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	count := 0
	for _, n := range g.nodes {
		if n.wall {
			count++
		}
	}
	return count
}
