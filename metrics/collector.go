package metrics

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// PathResult is the measured outcome of one run.
type PathResult struct {
	// Algorithm is the label the run was measured under.
	Algorithm string
	// Found reports whether a path to the end node exists.
	Found bool
	// VisitedCount counts expanded nodes, start and end excluded.
	VisitedCount int
	// ElapsedMs is the wall-clock duration of the run in milliseconds.
	ElapsedMs float64
	// Cost is the Euclidean path length; +Inf when Found is false.
	Cost float64
}

// NotFound returns an empty result for label with Cost = +Inf.
func NotFound(label string) PathResult {
	return PathResult{Algorithm: label, Cost: math.Inf(1)}
}

// String formats the result on one line.
func (r PathResult) String() string {
	cost := "—"
	if r.Found {
		cost = fmt.Sprintf("%.4f", r.Cost)
	}
	return fmt.Sprintf("%s found=%t visited=%d time=%.3fms cost=%s",
		r.Algorithm, r.Found, r.VisitedCount, r.ElapsedMs, cost)
}

// Snapshot is a live view of the collector.
type Snapshot struct {
	Algorithm string
	Visited   int
	ElapsedMs float64
	Cost      float64
	Found     bool
	Running   bool
}

// Option configures a Collector.
type Option func(*Collector)

// WithClock replaces time.Now, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		if now != nil {
			c.now = now
		}
	}
}

// WithExporter mirrors every finished run into e.
func WithExporter(e *Exporter) Option {
	return func(c *Collector) {
		c.exporter = e
	}
}

// Collector records one run at a time. All methods are safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	now      func() time.Time
	exporter *Exporter

	label    string
	visited  int
	begun    time.Time
	finished time.Time
	running  bool
	found    bool
	cost     float64
}

// NewCollector returns a Collector at its reset state.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

// Begin resets the collector and starts timing a run labeled label.
func (c *Collector) Begin(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.label = label
	c.running = true
	c.begun = c.now()
}

// Visit counts one expanded node and returns the running total.
func (c *Collector) Visit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visited++
	return c.visited
}

// Finish stops timing, records the outcome and returns the run's result.
// A cost is kept only when found is true.
func (c *Collector) Finish(found bool, cost float64) PathResult {
	c.mu.Lock()
	c.finished = c.now()
	c.running = false
	c.found = found
	if found {
		c.cost = cost
	}
	res := c.result()
	exp := c.exporter
	c.mu.Unlock()

	if exp != nil {
		exp.Observe(res)
	}
	return res
}

// Reset returns the collector to its idle state.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Result returns the last finished (or in-progress) run as a PathResult.
func (c *Collector) Result() PathResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result()
}

// Snapshot returns the live view.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Algorithm: c.label,
		Visited:   c.visited,
		ElapsedMs: c.elapsedMs(),
		Cost:      c.cost,
		Found:     c.found,
		Running:   c.running,
	}
}

func (c *Collector) reset() {
	c.label = ""
	c.visited = 0
	c.begun = time.Time{}
	c.finished = time.Time{}
	c.running = false
	c.found = false
	c.cost = math.Inf(1)
}

func (c *Collector) result() PathResult {
	return PathResult{
		Algorithm:    c.label,
		Found:        c.found,
		VisitedCount: c.visited,
		ElapsedMs:    c.elapsedMs(),
		Cost:         c.cost,
	}
}

func (c *Collector) elapsedMs() float64 {
	if c.begun.IsZero() {
		return 0
	}
	end := c.finished
	if c.running {
		end = c.now()
	}
	return float64(end.Sub(c.begun)) / float64(time.Millisecond)
}
