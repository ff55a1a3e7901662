// Command gridsearch runs and compares grid pathfinding algorithms in the
// terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/engine"
	"github.com/katalvlaran/gridsearch/internal/logging"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/search"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

const usage = `gridsearch - explore a grid with A*, Dijkstra, BFS, DFS and Greedy search.

Usage:
  gridsearch [options] [run|compare|show]

Commands:
  run      animate one algorithm (default)
  compare  run the comparison harness and print the table
  show     print the scenario grid

While animating, type "p" + Enter to toggle pause and "q" + Enter to cancel.

Options:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without process exits.
func run(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Path to a YAML scenario file (default $"+config.EnvConfig+").")
	algFlag := fs.String("alg", "", "Algorithm for run: "+algorithmsHelp()+" (default from config).")
	compareFlag := fs.String("compare", "", "Comma-separated comparison order (default all five).")
	animate := fs.Bool("animate", false, "Redraw the grid after every visited node.")
	delay := fs.Duration("delay", 0, "Pacing delay while animating (default from config).")
	logLevel := fs.String("log-level", "", "Log level override: debug, info, warn, error.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	cmd := "run"
	if fs.NArg() > 0 {
		cmd = fs.Arg(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *algFlag != "" {
		cfg.Search.Algorithm = *algFlag
	}
	if *compareFlag != "" {
		cfg.Search.Compare = strings.Split(*compareFlag, ",")
	}
	if *delay > 0 {
		cfg.Animation.Delay = *delay
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err = cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger := logging.NewLogger(cfg)

	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	exp, err := metrics.NewExporter(reg)
	if err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	switch cmd {
	case "show":
		fmt.Fprint(out, g.String())
		return nil

	case "run":
		alg, err := cfg.Algorithm()
		if err != nil {
			return err
		}
		r := newRenderer(out, g, *animate)
		pacing := time.Duration(0)
		if *animate {
			pacing = cfg.Animation.Delay
		}
		e, err := engine.New(g,
			engine.WithObserver(r),
			engine.WithLogger(logger),
			engine.WithDelay(pacing),
			engine.WithPausePoll(cfg.Animation.PausePoll),
			engine.WithExporter(exp),
		)
		if err != nil {
			return err
		}
		if *animate {
			go controls(in, e)
		}
		res, err := e.Run(ctx, alg)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "run cancelled")
				return nil
			}
			return err
		}
		r.Frame()
		fmt.Fprintln(out, res)
		if !res.Found {
			fmt.Fprintf(out, "No path found! (%d cells reachable from start)\n", g.Reachable(g.Start().Cell()))
		}
		return nil

	case "compare":
		algs, err := cfg.CompareList()
		if err != nil {
			return err
		}
		e, err := engine.New(g, engine.WithLogger(logger), engine.WithExporter(exp))
		if err != nil {
			return err
		}
		rep, err := e.Compare(ctx, algs)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rep.Table())
		fmt.Fprintln(out, rep.Summary())
		return nil

	default:
		fs.Usage()
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd)}
	}
}

// controls maps stdin lines to engine signals until in is exhausted.
func controls(in io.Reader, e *engine.Engine) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "p":
			e.TogglePause()
		case "q":
			e.Reset()
			return
		}
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 2 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving /metrics")
	return srv
}

// algorithmsHelp lists the accepted algorithm names.
func algorithmsHelp() string {
	names := make([]string, 0, 5)
	for _, a := range search.Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
