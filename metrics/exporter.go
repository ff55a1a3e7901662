package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrRegister is returned when the exporter's collectors cannot be registered.
var ErrRegister = errors.New("metrics: cannot register collectors")

// Exporter publishes finished runs as Prometheus metrics.
type Exporter struct {
	runs     *prometheus.CounterVec
	visited  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	cost     *prometheus.GaugeVec
}

// NewExporter creates the run collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewExporter(reg prometheus.Registerer) (*Exporter, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	e := &Exporter{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridsearch_runs_total",
			Help: "Finished search runs by algorithm and outcome.",
		}, []string{"algorithm", "found"}),
		visited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridsearch_visited_nodes",
			Help:    "Nodes expanded per run, start and end excluded.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridsearch_run_duration_ms",
			Help:    "Wall-clock duration of a run in milliseconds.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 12),
		}, []string{"algorithm"}),
		cost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gridsearch_path_cost",
			Help: "Euclidean cost of the last path found per algorithm.",
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{e.runs, e.visited, e.duration, e.cost} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegister, err)
		}
	}
	return e, nil
}

// Observe records r.
func (e *Exporter) Observe(r PathResult) {
	e.runs.WithLabelValues(r.Algorithm, strconv.FormatBool(r.Found)).Inc()
	e.visited.WithLabelValues(r.Algorithm).Observe(float64(r.VisitedCount))
	e.duration.WithLabelValues(r.Algorithm).Observe(r.ElapsedMs)
	if r.Found {
		e.cost.WithLabelValues(r.Algorithm).Set(r.Cost)
	}
}

// Runs returns the gridsearch_runs_total collector.
func (e *Exporter) Runs() *prometheus.CounterVec { return e.runs }

// Cost returns the gridsearch_path_cost collector.
func (e *Exporter) Cost() *prometheus.GaugeVec { return e.cost }
