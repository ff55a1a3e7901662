// Package search runs the five classic grid searches (breadth-first,
// depth-first, greedy best-first, Dijkstra, A*) over a *grid.Grid as a
// finite sequence of steps.
//
// What
//
//   - One Stepper drives every algorithm. Each variant contributes only a
//     frontier policy and two switches:
//     BFS      – FIFO queue, dequeue head.
//     DFS      – LIFO stack, pop top.
//     Greedy   – unordered set scanned on every pop for the smallest H = dist(n, end).
//     Dijkstra – unordered set scanned for the smallest F = G (H = 0); relaxes.
//     A*       – unordered set scanned for the smallest F = G + H; relaxes.
//     Scans keep the first minimum in insertion order, so ties go to the node
//     discovered first.
//   - Step performs exactly one frontier pop plus the expansion of that node
//     and returns a StepEvent. That boundary is the yield point the scheduler
//     paces, pauses and cancels on.
//   - The start and end nodes are never reported as visited; popping the end
//     node finishes the run with Found = true. An empty frontier finishes it
//     with Found = false. There is no step limit: a finite grid always drains.
//
// Relaxation
//
//	Dijkstra and A* overwrite Parent/G/H/F of a frontier node when a strictly
//	cheaper route appears and never reopen a popped node. BFS, DFS and Greedy
//	admit a node to the frontier at most once; the first parent sticks.
//	The asymmetry is the classic definition of each algorithm.
//
// Admissibility
//
//	H is the Euclidean distance, which never exceeds the remaining cost of an
//	orthogonal route with unit steps, so A* reports the same cost as Dijkstra
//	whenever both find a path.
//
// Paths
//
//	Outcome.Path follows Parent links from the reached end back to the start.
//	It only yields a path alongside Found = true.
//
// Usage
//
//	st, err := search.NewStepper(g, search.AStar)
//	if err != nil {
//		// ErrNilGrid, ErrUnknownAlgorithm or ErrMissingEndpoint
//	}
//	for ev := range st.Events() {
//		if ev.Kind == search.KindVisit { /* draw ev.Node */ }
//	}
//	if p, ok := st.Outcome().Path(); ok {
//		fmt.Println(p.Cost)
//	}
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) time and memory.
//   - Greedy, Dijkstra, A*: O(N²) time worst case (linear scan per pop), O(N) memory.
package search
