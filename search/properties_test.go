package search_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// randomGrid builds a rows×cols grid with walls of probability p and
// endpoints at opposite corners.
func randomGrid(t testing.TB, rows, cols int, p float64, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols,
		grid.WithStart(grid.Cell{Row: 0, Col: 0}),
		grid.WithEnd(grid.Cell{Row: rows - 1, Col: cols - 1}),
		grid.WithWalls(grid.RandomWalls(p, rand.New(rand.NewSource(seed)))),
	)
	require.NoError(t, err)
	return g
}

// TestProperty_PathShape checks adjacency validity and acyclicity of every
// found path on random grids.
func TestProperty_PathShape(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGrid(t, 12, 18, 0.25, seed)
		for _, alg := range search.Algorithms() {
			out, err := search.Run(g, alg)
			require.NoError(t, err)
			if !out.Found {
				continue
			}
			p, ok := out.Path()
			require.True(t, ok)
			name := fmt.Sprintf("seed=%d alg=%s", seed, alg)

			require.LessOrEqual(t, p.Len(), g.Size(), name)
			assert.Same(t, g.Start(), p.Nodes[0], name)
			assert.Same(t, g.End(), p.Nodes[p.Len()-1], name)

			seen := make(map[grid.Cell]bool, p.Len())
			for i, n := range p.Nodes {
				assert.False(t, n.IsWall(), name)
				assert.False(t, seen[n.Cell()], "%s: cycle at %s", name, n)
				seen[n.Cell()] = true
				if i == 0 {
					continue
				}
				prev := p.Nodes[i-1]
				dr, dc := n.Row()-prev.Row(), n.Col()-prev.Col()
				assert.Equal(t, 1, dr*dr+dc*dc, "%s: %s→%s not adjacent", name, prev, n)
			}
			assert.InDelta(t, float64(p.Len()-1), p.Cost, 1e-9, name)
		}
	}
}

// TestProperty_AStarMatchesDijkstra compares optimal costs on random grids.
func TestProperty_AStarMatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := randomGrid(t, 15, 15, 0.3, seed)

		dj, err := search.Run(g, search.Dijkstra)
		require.NoError(t, err)
		djPath, djOK := dj.Path()

		as, err := search.Run(g, search.AStar)
		require.NoError(t, err)
		asPath, asOK := as.Path()

		bf, err := search.Run(g, search.BFS)
		require.NoError(t, err)
		bfPath, _ := bf.Path()

		require.Equal(t, dj.Found, as.Found, "seed=%d", seed)
		require.Equal(t, dj.Found, bf.Found, "seed=%d", seed)
		if djOK && asOK {
			assert.Equal(t, djPath.Cost, asPath.Cost, "seed=%d", seed)
			assert.Equal(t, djPath.Cost, bfPath.Cost, "seed=%d", seed)
		}
	}
}

// TestProperty_AStarVisitsNoMoreThanDijkstra runs wall-free grids with
// varied endpoints.
func TestProperty_AStarVisitsNoMoreThanDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 30; i++ {
		rows, cols := 4+rng.Intn(12), 4+rng.Intn(12)
		start := grid.Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		end := grid.Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if start == end {
			continue
		}
		g := openGrid(t, rows, cols, start, end)

		dj, err := search.Run(g, search.Dijkstra)
		require.NoError(t, err)
		djPath, _ := dj.Path()
		as, err := search.Run(g, search.AStar)
		require.NoError(t, err)
		asPath, _ := as.Path()

		name := fmt.Sprintf("%dx%d %s→%s", rows, cols, start, end)
		require.True(t, dj.Found, name)
		require.True(t, as.Found, name)
		assert.Equal(t, djPath.Cost, asPath.Cost, name)
		assert.LessOrEqual(t, as.Visited, dj.Visited, name)
	}
}

// TestProperty_Exhaustiveness: when start and end are in different
// components every variant drains start's component and reports no path.
func TestProperty_Exhaustiveness(t *testing.T) {
	checked := 0
	for seed := int64(1); seed <= 60 && checked < 10; seed++ {
		g := randomGrid(t, 10, 10, 0.45, seed)
		if reaches(t, g) {
			continue
		}
		checked++
		want := g.Reachable(g.Start().Cell()) - 1
		for _, alg := range search.Algorithms() {
			out, err := search.Run(g, alg)
			require.NoError(t, err)
			assert.False(t, out.Found, "seed=%d alg=%s", seed, alg)
			assert.Equal(t, want, out.Visited, "seed=%d alg=%s", seed, alg)
		}
	}
	require.Positive(t, checked, "no disconnected layouts generated")
}

// reaches reports whether the end lies in the start's component.
func reaches(t testing.TB, g *grid.Grid) bool {
	t.Helper()
	endIdx := g.Index(g.End())
	for _, comp := range g.Components() {
		hasStart, hasEnd := false, false
		for _, idx := range comp {
			hasStart = hasStart || idx == g.Index(g.Start())
			hasEnd = hasEnd || idx == endIdx
		}
		if hasStart {
			return hasEnd
		}
	}
	return false
}
