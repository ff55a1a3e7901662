package compare_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleCompareAll ranks all five algorithms on a small maze.
func ExampleCompareAll() {
	g, err := grid.Parse(`
S.#.
..#.
....
.#.E
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rep, err := compare.CompareAll(context.Background(), g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range rep.Rows {
		fmt.Printf("%-8s found=%t cost=%.1f shortest=%t\n",
			row.Result.Algorithm, row.Result.Found, row.Result.Cost, row.Shortest)
	}
	// Output:
	// A*       found=true cost=6.0 shortest=true
	// Dijkstra found=true cost=6.0 shortest=false
	// BFS      found=true cost=6.0 shortest=false
	// DFS      found=true cost=6.0 shortest=false
	// Greedy   found=true cost=6.0 shortest=false
}
