// Package scheduler drives a search.Stepper under a pacing, pause and
// cancellation contract and feeds a metrics.Collector along the way.
//
// What
//
//   - RunAnimated yields after every frontier pop. At that point it hands
//     the visited node to the Observer, sleeps the pacing Delay and checks the
//     pause flag. While paused it re-checks every PausePoll; no frontier
//     progress happens and no frontier or scratch state is discarded.
//     After a found outcome it replays the path start→end through
//     Observer.OnPathStep with the same pacing.
//   - RunSilent has identical algorithmic semantics but no pacing, no
//     callbacks and no pause checks, so its timing reflects computation only.
//   - Cancelling the context abandons the run at the next yield point and
//     returns ctx.Err(); no further callbacks are issued.
//
// Timing
//
//	The collector's clock runs from the first pop to the terminal event and
//	includes path reconstruction; animated path replay is excluded.
//
// Options
//
//   - WithDelay(d):     pacing delay per visited node and per path step (default 12ms; 0 disables).
//   - WithPausePoll(d): re-check interval while paused (default 40ms; must be > 0).
//   - WithLogger(l):    zerolog logger for run lifecycle events (default no-op).
//
// Errors
//
//   - ErrNilStepper       a nil stepper was passed.
//   - ErrBusy             a run is already active on this scheduler.
//   - ErrOptionViolation  negative delay or non-positive pause poll.
package scheduler
