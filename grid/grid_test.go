package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty sizes and bad endpoints.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []grid.Option
		err        error
	}{
		{"ZeroRows", 0, 3, nil, grid.ErrEmptyGrid},
		{"NegativeCols", 3, -1, nil, grid.ErrEmptyGrid},
		{"StartOutside", 3, 3, []grid.Option{grid.WithStart(grid.Cell{Row: 3, Col: 0})}, grid.ErrOutOfBounds},
		{"EndOutside", 3, 3, []grid.Option{grid.WithEnd(grid.Cell{Row: 0, Col: -1})}, grid.ErrOutOfBounds},
		{"SameEndpoints", 3, 3, []grid.Option{
			grid.WithStart(grid.Cell{Row: 1, Col: 1}),
			grid.WithEnd(grid.Cell{Row: 1, Col: 1}),
		}, grid.ErrEndpointConflict},
		{"WallOnStart", 3, 3, []grid.Option{
			grid.WithStart(grid.Cell{Row: 0, Col: 0}),
			grid.WithWallCells(grid.Cell{Row: 0, Col: 0}),
		}, grid.ErrEndpointWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Baseline checks dimensions and the scratch baseline of fresh nodes.
func TestNew_Baseline(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Size())
	assert.Nil(t, g.Start())
	assert.Nil(t, g.End())

	count := 0
	for n := range g.Nodes() {
		assert.True(t, math.IsInf(n.G, 1), "G of %s", n)
		assert.True(t, math.IsInf(n.F, 1), "F of %s", n)
		assert.Zero(t, n.H)
		assert.Nil(t, n.Parent)
		assert.False(t, n.IsWall())
		assert.Equal(t, count, g.Index(n))
		count++
	}
	assert.Equal(t, 12, count)
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	for _, c := range []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}} {
		assert.True(t, g.InBounds(c.Row, c.Col), "InBounds%s", c)
	}
	for _, c := range []grid.Cell{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 1, Col: -1}} {
		assert.False(t, g.InBounds(c.Row, c.Col), "InBounds%s", c)
		_, ok := g.At(c)
		assert.False(t, ok)
	}
}

// TestDefaultEndpoints places start and end at (rows/2, cols/4) and (rows/2, 3*cols/4).
func TestDefaultEndpoints(t *testing.T) {
	g, err := grid.New(25, 45, grid.WithDefaultEndpoints())
	require.NoError(t, err)
	require.NotNil(t, g.Start())
	require.NotNil(t, g.End())
	assert.Equal(t, grid.Cell{Row: 12, Col: 11}, g.Start().Cell())
	assert.Equal(t, grid.Cell{Row: 12, Col: 33}, g.End().Cell())
	assert.True(t, g.Start().IsStart())
	assert.True(t, g.End().IsEnd())
}

//----------------------------------------------------------------------------//
// Neighbors and StepCost Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed south, north, east, west enumeration.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	center, _ := g.At(grid.Cell{Row: 1, Col: 1})

	var got []grid.Cell
	for _, n := range g.Neighbors(center) {
		got = append(got, n.Cell())
	}
	assert.Equal(t, []grid.Cell{{Row: 2, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 0}}, got)
}

// TestNeighbors_EdgesAndWalls verifies out-of-range and wall cells are excluded.
func TestNeighbors_EdgesAndWalls(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithWallCells(grid.Cell{Row: 1, Col: 0}))
	require.NoError(t, err)
	corner, _ := g.At(grid.Cell{Row: 0, Col: 0})

	nbs := g.Neighbors(corner)
	require.Len(t, nbs, 1)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, nbs[0].Cell())
}

// TestStepCost checks unit steps and the straight-line fallback.
func TestStepCost(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	a, _ := g.At(grid.Cell{Row: 0, Col: 0})
	b, _ := g.At(grid.Cell{Row: 0, Col: 1})
	c, _ := g.At(grid.Cell{Row: 3, Col: 4})

	assert.Equal(t, 1.0, grid.StepCost(a, b))
	assert.Equal(t, 5.0, g.StepCost(a, c))
	assert.Equal(t, g.StepCost(c, a), g.StepCost(a, c))
}

// TestResetScratch restores the baseline without touching walls or endpoints.
func TestResetScratch(t *testing.T) {
	g, err := grid.New(2, 2,
		grid.WithStart(grid.Cell{Row: 0, Col: 0}),
		grid.WithEnd(grid.Cell{Row: 1, Col: 1}),
		grid.WithWallCells(grid.Cell{Row: 0, Col: 1}),
	)
	require.NoError(t, err)
	for n := range g.Nodes() {
		n.G, n.H, n.F, n.Parent = 1, 2, 3, g.Start()
	}

	g.ResetScratch()

	for n := range g.Nodes() {
		assert.True(t, math.IsInf(n.G, 1))
		assert.Zero(t, n.H)
		assert.True(t, math.IsInf(n.F, 1))
		assert.Nil(t, n.Parent)
	}
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, g.Start().Cell())
	assert.Equal(t, grid.Cell{Row: 1, Col: 1}, g.End().Cell())
	assert.Equal(t, 1, g.WallCount())
}

//----------------------------------------------------------------------------//
// Editing Tests
//----------------------------------------------------------------------------//

// TestSetStart_MovesFlagAndClearsWall checks that endpoints move rather than multiply.
func TestSetStart_MovesFlagAndClearsWall(t *testing.T) {
	g, err := grid.New(3, 3,
		grid.WithStart(grid.Cell{Row: 0, Col: 0}),
		grid.WithWallCells(grid.Cell{Row: 2, Col: 2}),
	)
	require.NoError(t, err)
	old := g.Start()

	require.NoError(t, g.SetStart(grid.Cell{Row: 2, Col: 2}))
	assert.False(t, old.IsStart())
	assert.True(t, g.Start().IsStart())
	assert.False(t, g.Start().IsWall())
	assert.Zero(t, g.WallCount())

	starts := 0
	for n := range g.Nodes() {
		if n.IsStart() {
			starts++
		}
	}
	assert.Equal(t, 1, starts)
}

// TestEditing_Errors covers out-of-range edits and endpoint conflicts.
func TestEditing_Errors(t *testing.T) {
	g, err := grid.New(3, 3,
		grid.WithStart(grid.Cell{Row: 0, Col: 0}),
		grid.WithEnd(grid.Cell{Row: 2, Col: 2}),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetStart(grid.Cell{Row: 2, Col: 2}), grid.ErrEndpointConflict)
	assert.ErrorIs(t, g.SetEnd(grid.Cell{Row: 0, Col: 0}), grid.ErrEndpointConflict)
	assert.ErrorIs(t, g.SetWall(grid.Cell{Row: 0, Col: 0}, true), grid.ErrEndpointWall)
	assert.ErrorIs(t, g.SetWall(grid.Cell{Row: 9, Col: 9}, true), grid.ErrOutOfBounds)
	assert.NoError(t, g.SetWall(grid.Cell{Row: 2, Col: 2}, false))
	assert.False(t, g.End().IsWall())
}

// TestClearEndpoints drops the flags so a run can detect missing endpoints.
func TestClearEndpoints(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithDefaultEndpoints())
	require.NoError(t, err)
	start, end := g.Start(), g.End()

	g.ClearStart()
	g.ClearEnd()
	assert.Nil(t, g.Start())
	assert.Nil(t, g.End())
	assert.False(t, start.IsStart())
	assert.False(t, end.IsEnd())
}

// TestApplyWalls_SkipsEndpoints verifies random walls never cover start or end.
func TestApplyWalls_SkipsEndpoints(t *testing.T) {
	g, err := grid.New(10, 10, grid.WithDefaultEndpoints())
	require.NoError(t, err)

	g.ApplyWalls(func(_, _ int) bool { return true })
	assert.Equal(t, 98, g.WallCount())
	assert.False(t, g.Start().IsWall())
	assert.False(t, g.End().IsWall())

	g.ClearWalls()
	assert.Zero(t, g.WallCount())
}

// TestRandomWalls_Deterministic checks that the same seed yields the same layout.
func TestRandomWalls_Deterministic(t *testing.T) {
	build := func() string {
		g, err := grid.New(12, 20,
			grid.WithDefaultEndpoints(),
			grid.WithWalls(grid.RandomWalls(0.22, rand.New(rand.NewSource(7)))),
		)
		require.NoError(t, err)
		return g.String()
	}
	assert.Equal(t, build(), build())
}
