package metrics_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/metrics"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func TestCollector_Lifecycle(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), step: 1500 * time.Microsecond}
	c := metrics.NewCollector(metrics.WithClock(clock.Now))

	idle := c.Snapshot()
	assert.False(t, idle.Running)
	assert.True(t, math.IsInf(idle.Cost, 1))
	assert.Zero(t, idle.ElapsedMs)

	c.Begin("A*")
	assert.Equal(t, 1, c.Visit())
	assert.Equal(t, 2, c.Visit())
	live := c.Snapshot()
	assert.True(t, live.Running)
	assert.Equal(t, "A*", live.Algorithm)
	assert.Equal(t, 2, live.Visited)

	res := c.Finish(true, 8)
	assert.Equal(t, metrics.PathResult{
		Algorithm:    "A*",
		Found:        true,
		VisitedCount: 2,
		ElapsedMs:    3.0, // Begin, Snapshot, Finish readings
		Cost:         8,
	}, res)
	assert.Equal(t, res, c.Result())
	assert.False(t, c.Snapshot().Running)
}

func TestCollector_NotFoundKeepsInfiniteCost(t *testing.T) {
	c := metrics.NewCollector()
	c.Begin("BFS")
	c.Visit()
	res := c.Finish(false, 12)
	assert.False(t, res.Found)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Equal(t, 1, res.VisitedCount)
	assert.Contains(t, res.String(), "cost=—")
}

func TestCollector_BeginResetsPreviousRun(t *testing.T) {
	c := metrics.NewCollector()
	c.Begin("DFS")
	c.Visit()
	c.Finish(true, 5)

	c.Begin("Greedy")
	snap := c.Snapshot()
	assert.Equal(t, "Greedy", snap.Algorithm)
	assert.Zero(t, snap.Visited)
	assert.False(t, snap.Found)
	assert.True(t, math.IsInf(snap.Cost, 1))

	c.Reset()
	assert.Equal(t, metrics.Snapshot{Cost: math.Inf(1)}, c.Snapshot())
}

func TestNotFound(t *testing.T) {
	r := metrics.NotFound("Dijkstra")
	assert.Equal(t, "Dijkstra", r.Algorithm)
	assert.False(t, r.Found)
	assert.True(t, math.IsInf(r.Cost, 1))
}

func TestCollector_ConcurrentSnapshots(t *testing.T) {
	c := metrics.NewCollector()
	c.Begin("BFS")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.Visit()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = c.Snapshot()
		}
	}()
	wg.Wait()
	assert.Equal(t, 1000, c.Finish(false, 0).VisitedCount)
}

func TestExporter_ObservesFinishedRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	exp, err := metrics.NewExporter(reg)
	require.NoError(t, err)

	c := metrics.NewCollector(metrics.WithExporter(exp))
	c.Begin("A*")
	c.Visit()
	c.Finish(true, 8)
	c.Begin("A*")
	c.Finish(false, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(exp.Runs().WithLabelValues("A*", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(exp.Runs().WithLabelValues("A*", "false")))
	assert.Equal(t, 8.0, testutil.ToFloat64(exp.Cost().WithLabelValues("A*")))
	n, err := testutil.GatherAndCount(reg,
		"gridsearch_runs_total", "gridsearch_path_cost", "gridsearch_visited_nodes")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = metrics.NewExporter(reg)
	assert.ErrorIs(t, err, metrics.ErrRegister, "duplicate registration")
}
