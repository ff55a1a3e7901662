package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for stepper construction.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoint is returned when the grid has no start or no end node.
	ErrMissingEndpoint = errors.New("search: grid needs both a start and an end node")

	// ErrUnknownAlgorithm is returned for an algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects one of the supported searches.
type Algorithm string

// Supported algorithms.
const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Greedy   Algorithm = "greedy"
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

// Algorithms returns every supported algorithm in the default comparison
// order: A*, Dijkstra, BFS, DFS, Greedy.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, Dijkstra, BFS, DFS, Greedy}
}

// ParseAlgorithm resolves a case-insensitive selector ("bfs", "A*", ...).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "greedy":
		return Greedy, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := policies[a]
	return ok
}

// Label returns the display name of a.
func (a Algorithm) Label() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Greedy:
		return "Greedy"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	}
	return string(a)
}

// Weighted reports whether a relaxes frontier nodes on cheaper routes.
func (a Algorithm) Weighted() bool { return policies[a].relax }

// Informed reports whether a uses the straight-line heuristic.
func (a Algorithm) Informed() bool { return policies[a].heuristic }

// EventKind classifies a StepEvent.
type EventKind int

const (
	// KindStart reports the pop of the start node. Not counted as visited.
	KindStart EventKind = iota
	// KindVisit reports the pop of an intermediate node. Counted as visited.
	KindVisit
	// KindGoal reports the pop of the end node. Terminal, Found = true.
	KindGoal
	// KindExhausted reports an empty frontier. Terminal, Found = false, Node = nil.
	KindExhausted
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindVisit:
		return "visit"
	case KindGoal:
		return "goal"
	case KindExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Terminal reports whether k ends the run.
func (k EventKind) Terminal() bool {
	return k == KindGoal || k == KindExhausted
}

// StepEvent is one element of a run's step sequence.
type StepEvent struct {
	// Index is the 1-based position of the event in the run.
	Index int
	// Kind classifies the event.
	Kind EventKind
	// Node is the popped node; nil for KindExhausted.
	Node *grid.Node
}

// Outcome is the terminal result of a run.
type Outcome struct {
	// Algorithm that produced the outcome.
	Algorithm Algorithm
	// Found reports whether the end node was popped.
	Found bool
	// Visited counts popped nodes other than start and end.
	Visited int
	// Steps counts all frontier pops, start and end included.
	Steps int

	g   *grid.Grid
	end *grid.Node // set only when Found
}
