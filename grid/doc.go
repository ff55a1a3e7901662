// Package grid owns the rectangular cell model that every search in
// github.com/katalvlaran/gridsearch runs on.
//
// What:
//
//   - Grid is a fixed-size rows×cols array of *Node values, built once by New
//     or Parse and never resized. Rebuilding means constructing a new Grid.
//   - Each Node carries persistent cell attributes (wall, start, end) that only
//     the Grid editing methods may change, plus per-run scratch fields
//     (G, H, F, Parent) that the search algorithms own while a run is active.
//   - Neighbors enumerates the up-to-4 orthogonal, in-bounds, non-wall cells in
//     the fixed order south, north, east, west. That order is part of the
//     contract: it decides tie-breaks in every frontier.
//   - StepCost is the Euclidean distance between two cells; it is both the edge
//     weight for adjacent cells and the straight-line heuristic otherwise.
//
// Invariants:
//
//   - At most one start and one end node; neither is ever a wall.
//   - ResetScratch restores G=+Inf, H=0, F=+Inf, Parent=nil on every node and
//     must run before each new search.
//
// Walls:
//
//	The package never decides where walls go. Callers supply a WallFunc
//	(RandomWalls builds one from a probability and a caller-owned *rand.Rand),
//	an explicit cell list, or an ASCII layout:
//
//	    S..#.
//	    .#.#.
//	    ...#E
//
//	'#' wall, 'S' start, 'E' end, '.' free.
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols below 1.
//   - ErrOutOfBounds: an editing call names a cell outside the grid.
//   - ErrEndpointWall: painting a wall over the start or end node.
//   - ErrEndpointConflict: start and end placed on the same cell.
//   - ErrNonRectangular, ErrBadLayout: malformed ASCII layouts.
//
// Complexity:
//
//   - New, ResetScratch, ApplyWalls, Reachable: O(rows×cols).
//   - Neighbors, StepCost, At: O(1).
package grid
