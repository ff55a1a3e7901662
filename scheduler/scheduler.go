package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/search"
)

// silentCheckEvery is how many steps a silent run takes between context checks.
const silentCheckEvery = 256

// Scheduler runs one stepper at a time and records it in its collector.
type Scheduler struct {
	opts      Options
	collector *metrics.Collector
	paused    atomic.Bool
	active    atomic.Bool
}

// New returns a Scheduler recording into c. A nil c gets a fresh collector.
// Returns ErrOptionViolation for invalid options.
func New(c *metrics.Collector, opts ...Option) (*Scheduler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if c == nil {
		c = metrics.NewCollector()
	}
	return &Scheduler{opts: o, collector: c}, nil
}

// Collector returns the scheduler's collector.
func (s *Scheduler) Collector() *metrics.Collector { return s.collector }

// Options returns the effective options.
func (s *Scheduler) Options() Options { return s.opts }

// Pause suspends animated runs at their next yield point.
func (s *Scheduler) Pause() { s.paused.Store(true) }

// Resume lets a paused run continue.
func (s *Scheduler) Resume() { s.paused.Store(false) }

// TogglePause flips the pause flag and returns the new state.
func (s *Scheduler) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports the pause flag.
func (s *Scheduler) Paused() bool { return s.paused.Load() }

// Active reports whether a run is in progress.
func (s *Scheduler) Active() bool { return s.active.Load() }

// RunAnimated drives st to completion with pacing, pause checks and observer
// callbacks, then replays the found path. obs may be nil.
// Returns ErrNilStepper, ErrBusy, or ctx.Err() when cancelled; a cancelled run
// leaves the collector reset.
func (s *Scheduler) RunAnimated(ctx context.Context, st *search.Stepper, obs Observer) (metrics.PathResult, error) {
	if st == nil {
		return metrics.PathResult{}, ErrNilStepper
	}
	if !s.active.CompareAndSwap(false, true) {
		return metrics.PathResult{}, ErrBusy
	}
	defer s.active.Store(false)
	if obs == nil {
		obs = nopObserver{}
	}

	label := st.Algorithm().Label()
	log := s.opts.Logger.With().Str("algorithm", label).Str("mode", "animated").Logger()
	log.Debug().Msg("run started")
	s.collector.Begin(label)

	for {
		if err := ctx.Err(); err != nil {
			return s.abort(label, err)
		}
		ev, more := st.Step()
		if ev.Kind == search.KindVisit {
			s.collector.Visit()
			obs.OnVisit(ev.Node)
			if err := sleep(ctx, s.opts.Delay); err != nil {
				return s.abort(label, err)
			}
		}
		if !more {
			break
		}
		if err := s.waitWhilePaused(ctx); err != nil {
			return s.abort(label, err)
		}
	}

	res, path := s.finish(st)
	log.Debug().
		Bool("found", res.Found).
		Int("visited", res.VisitedCount).
		Float64("elapsed_ms", res.ElapsedMs).
		Msg("run finished")

	for _, n := range path {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		obs.OnPathStep(n)
		if err := sleep(ctx, s.opts.Delay); err != nil {
			return res, err
		}
	}
	return res, nil
}

// RunSilent drives st to completion without pacing, callbacks or pause
// checks. Only cancellation is honored.
func (s *Scheduler) RunSilent(ctx context.Context, st *search.Stepper) (metrics.PathResult, error) {
	if st == nil {
		return metrics.PathResult{}, ErrNilStepper
	}
	if !s.active.CompareAndSwap(false, true) {
		return metrics.PathResult{}, ErrBusy
	}
	defer s.active.Store(false)

	label := st.Algorithm().Label()
	s.collector.Begin(label)
	for i := 1; ; i++ {
		if i%silentCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return s.abort(label, err)
			}
		}
		ev, more := st.Step()
		if ev.Kind == search.KindVisit {
			s.collector.Visit()
		}
		if !more {
			break
		}
	}

	res, _ := s.finish(st)
	s.opts.Logger.Debug().
		Str("algorithm", label).
		Str("mode", "silent").
		Bool("found", res.Found).
		Int("visited", res.VisitedCount).
		Float64("elapsed_ms", res.ElapsedMs).
		Msg("run finished")
	return res, nil
}

// finish reconstructs the path of a done stepper and closes the measurement.
func (s *Scheduler) finish(st *search.Stepper) (metrics.PathResult, []*grid.Node) {
	p, found := st.Outcome().Path()
	return s.collector.Finish(found, p.Cost), p.Nodes
}

func (s *Scheduler) abort(label string, err error) (metrics.PathResult, error) {
	s.collector.Reset()
	s.opts.Logger.Debug().Str("algorithm", label).Err(err).Msg("run cancelled")
	return metrics.NotFound(label), err
}

// waitWhilePaused blocks, polling every PausePoll, until the pause flag
// clears or ctx is done.
func (s *Scheduler) waitWhilePaused(ctx context.Context) error {
	if !s.paused.Load() {
		return nil
	}
	s.opts.Logger.Debug().Msg("run paused")
	for s.paused.Load() {
		if err := sleep(ctx, s.opts.PausePoll); err != nil {
			return err
		}
	}
	s.opts.Logger.Debug().Msg("run resumed")
	return nil
}

// sleep waits d or until ctx is done. A non-positive d only checks ctx.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
