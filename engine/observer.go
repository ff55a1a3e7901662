package engine

import (
	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
)

// Observer receives engine events. Callbacks run on the run's goroutine and
// must not mutate the grid; they may call TogglePause.
type Observer interface {
	OnVisit(n *grid.Node)
	OnPathStep(n *grid.Node)
	OnRunComplete(res metrics.PathResult)
	OnComparisonComplete(rows []compare.Row, fastest, shortest int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnVisit(*grid.Node)                           {}
func (NopObserver) OnPathStep(*grid.Node)                        {}
func (NopObserver) OnRunComplete(metrics.PathResult)             {}
func (NopObserver) OnComparisonComplete([]compare.Row, int, int) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Visit              func(n *grid.Node)
	PathStep           func(n *grid.Node)
	RunComplete        func(res metrics.PathResult)
	ComparisonComplete func(rows []compare.Row, fastest, shortest int)
}

func (f ObserverFuncs) OnVisit(n *grid.Node) {
	if f.Visit != nil {
		f.Visit(n)
	}
}

func (f ObserverFuncs) OnPathStep(n *grid.Node) {
	if f.PathStep != nil {
		f.PathStep(n)
	}
}

func (f ObserverFuncs) OnRunComplete(res metrics.PathResult) {
	if f.RunComplete != nil {
		f.RunComplete(res)
	}
}

func (f ObserverFuncs) OnComparisonComplete(rows []compare.Row, fastest, shortest int) {
	if f.ComparisonComplete != nil {
		f.ComparisonComplete(rows, fastest, shortest)
	}
}
