package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII layout, one line per row:
// '#' wall, 'S' start, 'E' end, '.' free. Leading and trailing blank lines
// and surrounding spaces on each line are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadLayout (unknown rune,
// more than one start or end).
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(line), cols)
		}
	}

	var (
		walls      []Cell
		start, end *Cell
	)
	for r, line := range lines {
		for c, ch := range line {
			cell := Cell{Row: r, Col: c}
			switch ch {
			case RuneFree:
			case RuneWall:
				walls = append(walls, cell)
			case RuneStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second start at %s", ErrBadLayout, cell)
				}
				start = &cell
			case RuneEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: second end at %s", ErrBadLayout, cell)
				}
				end = &cell
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at %s", ErrBadLayout, ch, cell)
			}
		}
	}

	opts := []Option{WithWallCells(walls...)}
	if start != nil {
		opts = append(opts, WithStart(*start))
	}
	if end != nil {
		opts = append(opts, WithEnd(*end))
	}
	return New(len(lines), cols, opts...)
}

// String renders the grid in the layout format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.nodes[r*g.cols+c].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rune returns the layout rune of n.
func (n *Node) Rune() rune {
	switch {
	case n.start:
		return RuneStart
	case n.end:
		return RuneEnd
	case n.wall:
		return RuneWall
	default:
		return RuneFree
	}
}
