// Package compare runs several search algorithms over one grid and ranks them.
//
// CompareAll executes each algorithm strictly sequentially on the same
// *grid.Grid: scratch state is reset before every run, walls and endpoints
// are left alone, and every run is silent so elapsed times reflect
// computation only. The Report marks the fastest row (minimum ElapsedMs) and
// the shortest row (minimum Cost among rows that found a path). Ties go to
// the earlier row in iteration order.
//
// An empty algorithm list compares all five algorithms in the order
// A*, Dijkstra, BFS, DFS, Greedy.
package compare
