// Package engine is the session object that owns one grid and mediates every
// run, comparison and edit on it.
//
// An Engine enforces a single cooperative execution stream: while a run or
// comparison is active, starting another one or editing the grid returns
// ErrBusy. Reset cancels whatever is active, waits for it to unwind, clears
// the pause flag and restores baseline scratch state and metrics; walls and
// endpoints are left as they are.
//
// Renderers plug in through Observer. Control signals map to methods:
//
//	start-run       Start (async) or Run (blocking)
//	pause-toggle    TogglePause
//	reset/cancel    Reset
//	run-comparison  Compare
package engine
