package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/scheduler"
)

// ErrBusy is returned when a run, comparison or edit is requested while
// another run or comparison is active.
var ErrBusy = errors.New("engine: a run is already active")

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine settings.
type Options struct {
	Observer  Observer
	Logger    zerolog.Logger
	Delay     time.Duration
	PausePoll time.Duration
	// Exporter, if set, receives every finished run and comparison row.
	Exporter *metrics.Exporter
}

// DefaultOptions returns a no-op observer and logger with the scheduler's
// default pacing.
func DefaultOptions() Options {
	return Options{
		Observer:  NopObserver{},
		Logger:    zerolog.Nop(),
		Delay:     scheduler.DefaultDelay,
		PausePoll: scheduler.DefaultPausePoll,
	}
}

// WithObserver sets the event observer. Nil keeps the no-op observer.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *Options) { opts.Logger = l }
}

// WithDelay sets the animation pacing delay.
func WithDelay(d time.Duration) Option {
	return func(opts *Options) { opts.Delay = d }
}

// WithPausePoll sets the pause re-check interval.
func WithPausePoll(d time.Duration) Option {
	return func(opts *Options) { opts.PausePoll = d }
}

// WithExporter publishes finished runs to e.
func WithExporter(e *metrics.Exporter) Option {
	return func(opts *Options) { opts.Exporter = e }
}
