package search

import (
	"slices"

	"github.com/katalvlaran/gridsearch/grid"
)

// frontier holds discovered, not yet expanded nodes.
type frontier interface {
	push(n *grid.Node)
	pop() *grid.Node
	len() int
}

// queue is a FIFO frontier. Popped slots are released by advancing head.
type queue struct {
	items []*grid.Node
	head  int
}

func newQueue() frontier { return &queue{} }

func (q *queue) push(n *grid.Node) { q.items = append(q.items, n) }

func (q *queue) pop() *grid.Node {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	return n
}

func (q *queue) len() int { return len(q.items) - q.head }

// stack is a LIFO frontier.
type stack []*grid.Node

func newStack() frontier { return &stack{} }

func (s *stack) push(n *grid.Node) { *s = append(*s, n) }

func (s *stack) pop() *grid.Node {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

func (s *stack) len() int { return len(*s) }

// scanSet is an unordered frontier whose pop scans every member for the
// smallest key. The first minimum in insertion order wins, and removal keeps
// the remaining order, so ties always go to the earliest discovered node.
// Keys are read at pop time; relaxing a member needs no fix-up.
type scanSet struct {
	items []*grid.Node
	key   func(*grid.Node) float64
}

// scanBy returns a scanSet constructor ordered by key.
func scanBy(key func(*grid.Node) float64) func() frontier {
	return func() frontier { return &scanSet{key: key} }
}

func (s *scanSet) push(n *grid.Node) { s.items = append(s.items, n) }

func (s *scanSet) pop() *grid.Node {
	best := 0
	for i := 1; i < len(s.items); i++ {
		if s.key(s.items[i]) < s.key(s.items[best]) {
			best = i
		}
	}
	n := s.items[best]
	s.items = slices.Delete(s.items, best, best+1)
	return n
}

func (s *scanSet) len() int { return len(s.items) }

func byH(n *grid.Node) float64 { return n.H }

func byF(n *grid.Node) float64 { return n.F }

// policy is the variant-specific part of a search.
type policy struct {
	// newFrontier builds an empty frontier.
	newFrontier func() frontier
	// relax enables Dijkstra-style relaxation of frontier nodes.
	// Without it a node enters the frontier at most once.
	relax bool
	// heuristic sets H = dist(n, end); otherwise H stays 0.
	heuristic bool
}

var policies = map[Algorithm]policy{
	BFS:      {newFrontier: newQueue},
	DFS:      {newFrontier: newStack},
	Greedy:   {newFrontier: scanBy(byH), heuristic: true},
	Dijkstra: {newFrontier: scanBy(byF), relax: true},
	AStar:    {newFrontier: scanBy(byF), relax: true, heuristic: true},
}
