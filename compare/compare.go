package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/scheduler"
	"github.com/katalvlaran/gridsearch/search"
)

// Row is one algorithm's result plus its winner flags.
type Row struct {
	Algorithm search.Algorithm
	Result    metrics.PathResult
	Fastest   bool
	Shortest  bool
}

// Report holds the rows in run order and the winner indices.
// Shortest is -1 when no algorithm found a path.
type Report struct {
	Rows     []Row
	Fastest  int
	Shortest int
}

// Option configures CompareAll.
type Option func(*options)

type options struct {
	logger    zerolog.Logger
	collector *metrics.Collector
}

// WithLogger sets the logger used for per-run events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCollector records every run into c, so its exporter sees them.
func WithCollector(c *metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// CompareAll runs algs on g one after another and ranks the results.
// An empty algs means search.Algorithms(). Unknown algorithms are rejected
// before anything runs.
//
// Errors: search.ErrNilGrid, search.ErrMissingEndpoint,
// search.ErrUnknownAlgorithm, ctx.Err() when cancelled between or during runs.
func CompareAll(ctx context.Context, g *grid.Grid, algs []search.Algorithm, opts ...Option) (Report, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return Report{}, search.ErrNilGrid
	}
	if g.Start() == nil || g.End() == nil {
		return Report{}, search.ErrMissingEndpoint
	}
	if len(algs) == 0 {
		algs = search.Algorithms()
	}
	for _, a := range algs {
		if !a.Valid() {
			return Report{}, fmt.Errorf("%w: %q", search.ErrUnknownAlgorithm, string(a))
		}
	}

	sched, err := scheduler.New(o.collector, scheduler.WithLogger(o.logger))
	if err != nil {
		return Report{}, err
	}

	rows := make([]Row, 0, len(algs))
	for _, a := range algs {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		g.ResetScratch()
		st, err := search.NewStepper(g, a)
		if err != nil {
			return Report{}, err
		}
		res, err := sched.RunSilent(ctx, st)
		if err != nil {
			g.ResetScratch()
			return Report{}, err
		}
		rows = append(rows, Row{Algorithm: a, Result: res})
	}

	rep := rank(rows)
	o.logger.Info().
		Int("algorithms", len(rows)).
		Str("summary", rep.Summary()).
		Msg("comparison complete")
	return rep, nil
}

// rank fills the winner indices and flags.
func rank(rows []Row) Report {
	rep := Report{Rows: rows, Fastest: -1, Shortest: -1}
	for i, r := range rows {
		if rep.Fastest < 0 || r.Result.ElapsedMs < rows[rep.Fastest].Result.ElapsedMs {
			rep.Fastest = i
		}
		if r.Result.Found && (rep.Shortest < 0 || r.Result.Cost < rows[rep.Shortest].Result.Cost) {
			rep.Shortest = i
		}
	}
	if rep.Fastest >= 0 {
		rows[rep.Fastest].Fastest = true
	}
	if rep.Shortest >= 0 {
		rows[rep.Shortest].Shortest = true
	}
	return rep
}

// FastestRow returns the fastest row, if any.
func (r Report) FastestRow() (Row, bool) {
	if r.Fastest < 0 || r.Fastest >= len(r.Rows) {
		return Row{}, false
	}
	return r.Rows[r.Fastest], true
}

// ShortestRow returns the cheapest found row, if any.
func (r Report) ShortestRow() (Row, bool) {
	if r.Shortest < 0 || r.Shortest >= len(r.Rows) {
		return Row{}, false
	}
	return r.Rows[r.Shortest], true
}

// Summary renders the one-line verdict, e.g.
// "Fastest: BFS (0.041 ms). Shortest path: A* (cost 8.0000)."
func (r Report) Summary() string {
	var sb strings.Builder
	if f, ok := r.FastestRow(); ok {
		fmt.Fprintf(&sb, "Fastest: %s (%.3f ms). ", f.Result.Algorithm, f.Result.ElapsedMs)
	}
	if s, ok := r.ShortestRow(); ok {
		fmt.Fprintf(&sb, "Shortest path: %s (cost %.4f).", s.Result.Algorithm, s.Result.Cost)
	} else {
		sb.WriteString("No algorithm found a path (check walls or positions).")
	}
	return sb.String()
}

// Table renders the rows as an aligned text table with winner markers.
func (r Report) Table() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-9s %-5s %7s %10s %10s\n", "Algorithm", "Found", "Visited", "Time (ms)", "Cost")
	for _, row := range r.Rows {
		res := row.Result
		found := "No"
		cost := "—"
		if res.Found {
			found = "Yes"
			cost = fmt.Sprintf("%.4f", res.Cost)
		}
		var marks string
		if row.Fastest {
			marks += " fastest"
		}
		if row.Shortest {
			marks += " shortest"
		}
		fmt.Fprintf(&sb, "%-9s %-5s %7d %10.3f %10s%s\n", res.Algorithm, found, res.VisitedCount, res.ElapsedMs, cost, marks)
	}
	return sb.String()
}
