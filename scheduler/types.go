package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for scheduling.
var (
	// ErrNilStepper is returned when a nil stepper is scheduled.
	ErrNilStepper = errors.New("scheduler: stepper is nil")

	// ErrBusy is returned when a run is started while another is active.
	ErrBusy = errors.New("scheduler: a run is already active")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scheduler: invalid option supplied")
)

// Default pacing.
const (
	DefaultDelay     = 12 * time.Millisecond
	DefaultPausePoll = 40 * time.Millisecond
)

// Observer receives animated-run events. Implementations must not mutate
// the grid. Calls happen on the run's goroutine.
type Observer interface {
	// OnVisit is called for every visited node (never start or end).
	OnVisit(n *grid.Node)
	// OnPathStep is called for every node of a found path in start→end order.
	OnPathStep(n *grid.Node)
}

type nopObserver struct{}

func (nopObserver) OnVisit(*grid.Node)    {}
func (nopObserver) OnPathStep(*grid.Node) {}

// Option configures a Scheduler. Invalid options are recorded and surfaced
// as ErrOptionViolation by New.
type Option func(*Options)

// Options holds pacing parameters.
type Options struct {
	// Delay is the pause after each visited node and each path step.
	Delay time.Duration
	// PausePoll is the re-check interval while paused.
	PausePoll time.Duration
	// Logger receives run lifecycle events.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns a 12ms delay, a 40ms pause poll and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Delay:     DefaultDelay,
		PausePoll: DefaultPausePoll,
		Logger:    zerolog.Nop(),
	}
}

// WithDelay sets the pacing delay. Zero disables pacing; negative is invalid.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithPausePoll sets the re-check interval while paused. Must be positive.
func WithPausePoll(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: PausePoll must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.PausePoll = d
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
