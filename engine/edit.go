package engine

import "github.com/katalvlaran/gridsearch/grid"

// edit applies fn to the grid unless a run is active.
func (e *Engine) edit(fn func(g *grid.Grid) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.log.Debug().Msg("edit rejected: busy")
		return ErrBusy
	}
	return fn(e.g)
}

// SetStart moves the start node. Returns ErrBusy while running.
func (e *Engine) SetStart(c grid.Cell) error {
	return e.edit(func(g *grid.Grid) error { return g.SetStart(c) })
}

// SetEnd moves the end node. Returns ErrBusy while running.
func (e *Engine) SetEnd(c grid.Cell) error {
	return e.edit(func(g *grid.Grid) error { return g.SetEnd(c) })
}

// SetWall paints or erases a wall. Returns ErrBusy while running.
func (e *Engine) SetWall(c grid.Cell, wall bool) error {
	return e.edit(func(g *grid.Grid) error { return g.SetWall(c, wall) })
}

// ApplyWalls sets every non-endpoint wall from fn; nil fn is a no-op.
// Returns ErrBusy while running.
func (e *Engine) ApplyWalls(fn grid.WallFunc) error {
	return e.edit(func(g *grid.Grid) error {
		if fn == nil {
			return nil
		}
		g.ApplyWalls(fn)
		return nil
	})
}

// ClearWalls removes every wall. Returns ErrBusy while running.
func (e *Engine) ClearWalls() error {
	return e.edit(func(g *grid.Grid) error {
		g.ClearWalls()
		return nil
	})
}
