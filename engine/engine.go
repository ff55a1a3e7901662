package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/scheduler"
	"github.com/katalvlaran/gridsearch/search"
)

// Engine owns a grid and serializes runs, comparisons and edits on it.
type Engine struct {
	mu        sync.Mutex
	g         *grid.Grid
	obs       Observer
	log       zerolog.Logger
	collector *metrics.Collector
	sched     *scheduler.Scheduler

	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	last    metrics.PathResult
}

// New returns an Engine bound to g.
// Returns search.ErrNilGrid or scheduler.ErrOptionViolation for bad pacing.
func New(g *grid.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var copts []metrics.Option
	if o.Exporter != nil {
		copts = append(copts, metrics.WithExporter(o.Exporter))
	}
	c := metrics.NewCollector(copts...)
	sched, err := scheduler.New(c,
		scheduler.WithDelay(o.Delay),
		scheduler.WithPausePoll(o.PausePoll),
		scheduler.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, err
	}
	return &Engine{
		g:         g,
		obs:       o.Observer,
		log:       o.Logger,
		collector: c,
		sched:     sched,
	}, nil
}

// Grid returns the current grid. It is replaced by Rebuild.
func (e *Engine) Grid() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g
}

// Running reports whether a run or comparison is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Metrics returns a live view of the current or last run.
func (e *Engine) Metrics() metrics.Snapshot { return e.collector.Snapshot() }

// LastResult returns the result of the last completed animated run.
func (e *Engine) LastResult() metrics.PathResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// TogglePause flips the pause flag and returns the new state.
func (e *Engine) TogglePause() bool {
	p := e.sched.TogglePause()
	e.log.Debug().Bool("paused", p).Msg("pause toggled")
	return p
}

// Paused reports the pause flag.
func (e *Engine) Paused() bool { return e.sched.Paused() }

// Run performs a blocking animated run of alg from the grid's start to end.
// A cleared pause flag is a precondition of every new run.
// Errors: ErrBusy, search.ErrMissingEndpoint, search.ErrUnknownAlgorithm,
// or the context error when cancelled by ctx or Reset.
func (e *Engine) Run(ctx context.Context, alg search.Algorithm) (metrics.PathResult, error) {
	st, runCtx, done, err := e.beginRun(ctx, alg)
	if err != nil {
		return metrics.PathResult{}, err
	}
	return e.run(runCtx, st, done)
}

// Start is Run on a new goroutine. It returns once the run is admitted;
// completion is reported through Observer.OnRunComplete and Wait.
func (e *Engine) Start(ctx context.Context, alg search.Algorithm) error {
	st, runCtx, done, err := e.beginRun(ctx, alg)
	if err != nil {
		return err
	}
	go func() {
		_, _ = e.run(runCtx, st, done)
	}()
	return nil
}

// Wait blocks until no run or comparison is active.
func (e *Engine) Wait() {
	e.mu.Lock()
	running, done := e.running, e.done
	e.mu.Unlock()
	if running {
		<-done
	}
}

// Compare runs algs silently in order on the current grid and reports the
// rows through Observer.OnComparisonComplete. Empty algs compares all five.
func (e *Engine) Compare(ctx context.Context, algs []search.Algorithm) (compare.Report, error) {
	runCtx, done, err := e.acquire(ctx)
	if err != nil {
		return compare.Report{}, err
	}
	defer e.release(done)

	rep, err := compare.CompareAll(runCtx, e.g, algs,
		compare.WithCollector(e.collector),
		compare.WithLogger(e.log),
	)
	if err != nil {
		e.log.Debug().Err(err).Msg("comparison aborted")
		return compare.Report{}, err
	}
	e.obs.OnComparisonComplete(rep.Rows, rep.Fastest, rep.Shortest)
	return rep, nil
}

// Reset cancels any active run or comparison, waits for it to stop, clears
// the pause flag and restores baseline scratch state and metrics.
// Walls and endpoints are untouched.
func (e *Engine) Reset() {
	for {
		e.mu.Lock()
		if e.running {
			cancel, done := e.cancel, e.done
			e.mu.Unlock()
			cancel()
			<-done
			continue
		}
		e.sched.Resume()
		e.g.ResetScratch()
		e.collector.Reset()
		e.last = metrics.PathResult{}
		e.mu.Unlock()
		e.log.Debug().Msg("engine reset")
		return
	}
}

// Rebuild resets the engine and replaces the grid with a new rows×cols one.
// All node identities, including start and end, are discarded; opts decide
// the new endpoints and walls.
func (e *Engine) Rebuild(rows, cols int, opts ...grid.Option) error {
	e.Reset()
	g, err := grid.New(rows, cols, opts...)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return ErrBusy
	}
	e.g = g
	e.log.Debug().Int("rows", rows).Int("cols", cols).Msg("grid rebuilt")
	return nil
}

func (e *Engine) beginRun(ctx context.Context, alg search.Algorithm) (*search.Stepper, context.Context, chan struct{}, error) {
	if !alg.Valid() {
		return nil, nil, nil, fmt.Errorf("%w: %q", search.ErrUnknownAlgorithm, string(alg))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.log.Debug().Str("algorithm", alg.Label()).Msg("run rejected: busy")
		return nil, nil, nil, ErrBusy
	}
	st, err := search.NewStepper(e.g, alg)
	if err != nil {
		return nil, nil, nil, err
	}
	e.sched.Resume()
	runCtx, done := e.lock(ctx)
	e.log.Info().Str("algorithm", alg.Label()).Msg("run started")
	return st, runCtx, done, nil
}

func (e *Engine) run(ctx context.Context, st *search.Stepper, done chan struct{}) (metrics.PathResult, error) {
	defer e.release(done)
	res, err := e.sched.RunAnimated(ctx, st, e.obs)
	if err != nil {
		e.log.Info().Str("algorithm", res.Algorithm).Err(err).Msg("run cancelled")
		return res, err
	}
	e.mu.Lock()
	e.last = res
	e.mu.Unlock()
	e.log.Info().
		Str("algorithm", res.Algorithm).
		Bool("found", res.Found).
		Int("visited", res.VisitedCount).
		Float64("elapsed_ms", res.ElapsedMs).
		Msg("run finished")
	e.obs.OnRunComplete(res)
	return res, nil
}

// acquire takes the running guard for a comparison.
func (e *Engine) acquire(ctx context.Context) (context.Context, chan struct{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.log.Debug().Msg("comparison rejected: busy")
		return nil, nil, ErrBusy
	}
	runCtx, done := e.lock(ctx)
	return runCtx, done, nil
}

// lock marks the engine running. e.mu must be held.
func (e *Engine) lock(ctx context.Context) (context.Context, chan struct{}) {
	runCtx, cancel := context.WithCancel(ctx)
	e.running = true
	e.cancel = cancel
	e.done = make(chan struct{})
	return runCtx, e.done
}

func (e *Engine) release(done chan struct{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancel()
	e.running = false
	e.cancel = nil
	close(done)
}
