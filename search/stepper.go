package search

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridsearch/grid"
)

// Stepper runs one algorithm over one grid, one frontier pop per Step.
//
// A Stepper owns the grid's scratch fields (G, H, F, Parent) from
// construction until it is done; callers must not start a second Stepper
// on the same grid in the meantime. A finished Stepper is not reusable;
// build a new one for a fresh run.
type Stepper struct {
	g          *grid.Grid
	alg        Algorithm
	pol        policy
	start, end *grid.Node

	open   frontier
	seen   []bool // ever admitted to the frontier
	inOpen []bool // currently in the frontier
	closed []bool // popped

	events  int
	steps   int
	visited int
	done    bool
	last    StepEvent
}

// NewStepper resets the grid's scratch state and seeds a run of alg from the
// grid's start node towards its end node.
// Returns ErrNilGrid, ErrUnknownAlgorithm or ErrMissingEndpoint.
func NewStepper(g *grid.Grid, alg Algorithm) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	pol, ok := policies[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if g.Start() == nil || g.End() == nil {
		return nil, ErrMissingEndpoint
	}

	g.ResetScratch()
	n := g.Size()
	s := &Stepper{
		g:      g,
		alg:    alg,
		pol:    pol,
		start:  g.Start(),
		end:    g.End(),
		open:   pol.newFrontier(),
		seen:   make([]bool, n),
		inOpen: make([]bool, n),
		closed: make([]bool, n),
	}

	s.start.G = 0
	s.start.H = s.heuristic(s.start)
	s.start.F = s.start.G + s.start.H
	s.admit(s.start)

	return s, nil
}

// Run drives a fresh Stepper to completion and returns its outcome.
func Run(g *grid.Grid, alg Algorithm) (Outcome, error) {
	s, err := NewStepper(g, alg)
	if err != nil {
		return Outcome{}, err
	}
	for _, more := s.Step(); more; _, more = s.Step() {
	}
	return s.Outcome(), nil
}

// Algorithm returns the algorithm being run.
func (s *Stepper) Algorithm() Algorithm { return s.alg }

// Grid returns the grid being searched.
func (s *Stepper) Grid() *grid.Grid { return s.g }

// Done reports whether a terminal event has been produced.
func (s *Stepper) Done() bool { return s.done }

// Visited returns the number of KindVisit events so far.
func (s *Stepper) Visited() int { return s.visited }

// FrontierLen returns the number of nodes waiting in the frontier.
func (s *Stepper) FrontierLen() int { return s.open.len() }

// Step pops one node from the frontier, expands it and reports the event.
// The boolean is false once the event is terminal (KindGoal or
// KindExhausted); further calls repeat the terminal event.
func (s *Stepper) Step() (StepEvent, bool) {
	if s.done {
		return s.last, false
	}
	if s.open.len() == 0 {
		return s.finish(KindExhausted, nil), false
	}

	cur := s.open.pop()
	i := s.g.Index(cur)
	s.inOpen[i] = false
	s.closed[i] = true
	s.steps++

	if cur == s.end {
		return s.finish(KindGoal, cur), false
	}

	kind := KindVisit
	if cur == s.start {
		kind = KindStart
	} else {
		s.visited++
	}
	s.expand(cur)

	s.events++
	s.last = StepEvent{Index: s.events, Kind: kind, Node: cur}
	return s.last, true
}

// Events iterates the remaining step sequence, terminal event included.
func (s *Stepper) Events() iter.Seq[StepEvent] {
	return func(yield func(StepEvent) bool) {
		if s.done {
			return
		}
		for {
			ev, more := s.Step()
			if !yield(ev) || !more {
				return
			}
		}
	}
}

// Outcome returns the run's result. Before Done it reflects progress so far
// with Found = false.
func (s *Stepper) Outcome() Outcome {
	o := Outcome{
		Algorithm: s.alg,
		Visited:   s.visited,
		Steps:     s.steps,
		g:         s.g,
	}
	if s.done && s.last.Kind == KindGoal {
		o.Found = true
		o.end = s.end
	}
	return o
}

func (s *Stepper) finish(kind EventKind, n *grid.Node) StepEvent {
	s.done = true
	s.events++
	s.last = StepEvent{Index: s.events, Kind: kind, Node: n}
	return s.last
}

// admit pushes n onto the frontier.
func (s *Stepper) admit(n *grid.Node) {
	i := s.g.Index(n)
	s.seen[i] = true
	s.inOpen[i] = true
	s.open.push(n)
}

func (s *Stepper) heuristic(n *grid.Node) float64 {
	if !s.pol.heuristic {
		return 0
	}
	return grid.StepCost(n, s.end)
}

// expand discovers the neighbors of cur.
func (s *Stepper) expand(cur *grid.Node) {
	for _, nb := range s.g.Neighbors(cur) {
		j := s.g.Index(nb)
		g := cur.G + grid.StepCost(cur, nb)

		if s.pol.relax {
			if s.closed[j] || g >= nb.G {
				continue
			}
			s.record(nb, cur, g)
			if !s.inOpen[j] {
				s.admit(nb)
			}
			continue
		}

		if s.seen[j] {
			continue
		}
		s.record(nb, cur, g)
		s.admit(nb)
	}
}

func (s *Stepper) record(n, parent *grid.Node, g float64) {
	n.Parent = parent
	n.G = g
	n.H = s.heuristic(n)
	n.F = n.G + n.H
}
