// Package grid defines the cell, node and option types together with the
// sentinel errors of the grid model.
package grid

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrEndpointWall indicates an attempt to place a wall on the start or end node.
	ErrEndpointWall = errors.New("grid: start and end cells cannot be walls")

	// ErrEndpointConflict indicates start and end were placed on the same cell.
	ErrEndpointConflict = errors.New("grid: start and end must be distinct cells")

	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")

	// ErrBadLayout indicates an unknown rune or a duplicated endpoint in a layout.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// Layout runes used by Parse and String.
const (
	RuneFree  = '.'
	RuneWall  = '#'
	RuneStart = 'S'
	RuneEnd   = 'E'
)

// Cell is a (row, column) coordinate.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Node is one grid cell.
//
// Row/Col and the wall/start/end flags belong to the Grid and change only
// through its methods. G, H, F and Parent are search scratch: meaningful only
// for nodes touched by the most recent run, and reset by Grid.ResetScratch.
type Node struct {
	row, col int
	wall     bool
	start    bool
	end      bool

	// G is the best known cost from the start node (+Inf when unknown).
	G float64
	// H is the heuristic estimate to the end node (0 when unused).
	H float64
	// F is G + H.
	F float64
	// Parent is the predecessor on the best known route; nil for the start
	// node and for nodes not reached. Always a node of the same Grid.
	Parent *Node
}

// Row returns the node's row.
func (n *Node) Row() int { return n.row }

// Col returns the node's column.
func (n *Node) Col() int { return n.col }

// Cell returns the node's coordinate.
func (n *Node) Cell() Cell { return Cell{Row: n.row, Col: n.col} }

// IsWall reports whether the node is an obstacle.
func (n *Node) IsWall() bool { return n.wall }

// IsStart reports whether the node is the current start node.
func (n *Node) IsStart() bool { return n.start }

// IsEnd reports whether the node is the current end node.
func (n *Node) IsEnd() bool { return n.end }

// String formats the node by its coordinate.
func (n *Node) String() string { return n.Cell().String() }

// resetScratch restores the scratch baseline.
func (n *Node) resetScratch() {
	n.G = math.Inf(1)
	n.H = 0
	n.F = math.Inf(1)
	n.Parent = nil
}

// WallFunc reports whether the cell at (row, col) should be a wall.
// It is never consulted for the start or end cell.
type WallFunc func(row, col int) bool

// RandomWalls returns a WallFunc that marks each cell as a wall with
// probability p, drawing from rng. A nil rng uses a fixed seed of 1.
func RandomWalls(p float64, rng *rand.Rand) WallFunc {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return func(_, _ int) bool {
		return rng.Float64() < p
	}
}

// Option configures grid construction.
type Option func(*Options)

// Options holds the construction parameters consumed by New.
type Options struct {
	// Walls, if non-nil, decides the initial wall of every non-endpoint cell.
	Walls WallFunc
	// WallCells lists explicit wall cells, applied after Walls.
	WallCells []Cell
	// Start and End, if non-nil, place the endpoints before walls are applied.
	Start, End *Cell
	// DefaultEndpoints places start at (rows/2, cols/4) and end at
	// (rows/2, 3*cols/4) unless Start/End are given explicitly.
	DefaultEndpoints bool
}

// DefaultOptions returns Options with no walls and no endpoints.
func DefaultOptions() Options {
	return Options{}
}

// WithWalls sets the wall predicate used at construction.
func WithWalls(fn WallFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Walls = fn
		}
	}
}

// WithWallCells marks the given cells as walls at construction.
func WithWallCells(cells ...Cell) Option {
	return func(o *Options) {
		o.WallCells = append(o.WallCells, cells...)
	}
}

// WithStart places the start node.
func WithStart(c Cell) Option {
	return func(o *Options) {
		o.Start = &c
	}
}

// WithEnd places the end node.
func WithEnd(c Cell) Option {
	return func(o *Options) {
		o.End = &c
	}
}

// WithDefaultEndpoints places start and end at the classic default cells
// (rows/2, cols/4) and (rows/2, 3*cols/4).
func WithDefaultEndpoints() Option {
	return func(o *Options) {
		o.DefaultEndpoints = true
	}
}
