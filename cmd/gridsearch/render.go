package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
)

// Marks drawn over free cells.
const (
	runeVisited = 'o'
	runePath    = '*'
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\033[H\033[2J"

// renderer draws the grid as text. It is an engine.Observer.
type renderer struct {
	mu      sync.Mutex
	out     io.Writer
	g       *grid.Grid
	live    bool
	visited map[grid.Cell]bool
	path    map[grid.Cell]bool
}

func newRenderer(out io.Writer, g *grid.Grid, live bool) *renderer {
	return &renderer{
		out:     out,
		g:       g,
		live:    live,
		visited: make(map[grid.Cell]bool),
		path:    make(map[grid.Cell]bool),
	}
}

func (r *renderer) OnVisit(n *grid.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visited[n.Cell()] = true
	if r.live {
		r.frame(clearScreen)
	}
}

func (r *renderer) OnPathStep(n *grid.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path[n.Cell()] = true
	if r.live {
		r.frame(clearScreen)
	}
}

func (r *renderer) OnRunComplete(metrics.PathResult) {}

func (r *renderer) OnComparisonComplete([]compare.Row, int, int) {}

// Frame writes the current picture.
func (r *renderer) Frame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame("")
}

func (r *renderer) frame(prefix string) {
	var sb strings.Builder
	sb.WriteString(prefix)
	for row := 0; row < r.g.Rows(); row++ {
		for col := 0; col < r.g.Cols(); col++ {
			c := grid.Cell{Row: row, Col: col}
			n, _ := r.g.At(c)
			ch := n.Rune()
			if ch == grid.RuneFree {
				switch {
				case r.path[c]:
					ch = runePath
				case r.visited[c]:
					ch = runeVisited
				}
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out, sb.String())
}
