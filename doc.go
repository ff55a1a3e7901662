// Package gridsearch is a grid pathfinding playground: build a 2D grid of
// walkable cells and walls, explore it with classic search algorithms one
// frontier pop at a time, and compare how they behave.
//
// 🚀 What is inside?
//
//   - grid/      the Grid model: nodes, walls, start/end, 4-way neighbors, ASCII layouts
//   - search/    BFS, DFS, Greedy best-first, Dijkstra and A* behind one Stepper
//   - scheduler/ paced, pausable, cancellable execution of a Stepper
//   - metrics/   per-run visited count, elapsed time and path cost, Prometheus export
//   - compare/   sequential comparison harness with fastest/shortest winners
//   - engine/    the session object tying a grid, a scheduler and an Observer together
//   - config/    YAML scenarios with environment overrides
//
// ✨ Guarantees
//
//   - Deterministic: neighbor order is fixed (south, north, east, west) and
//     every frontier breaks ties by insertion order, so the same grid always
//     yields the same exploration.
//   - A* and Dijkstra return equal path costs; BFS matches them on a uniform grid.
//   - One run at a time per engine; pausing never loses frontier state.
//
// Quick start:
//
//	g, _ := grid.Parse(`
//	S..#....
//	.#.#.##.
//	.#...#.E
//	`)
//	out, _ := search.Run(g, search.AStar)
//	if p, ok := out.Path(); ok {
//		fmt.Println(p.Cells(), p.Cost)
//	}
//
// See cmd/gridsearch for the terminal front end and examples/ for runnable
// scenarios.
package gridsearch
