// Package logging builds the process logger from the scenario config.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridsearch/config"
)

// Logger is the logger type used across gridsearch.
type Logger = zerolog.Logger

// NewLogger returns the process logger writing to stderr at the configured
// level, with millisecond Unix timestamps. An unknown level falls back to
// info; pretty switches to the console writer.
// It sets zerolog's global time format, so call it once from main.
func NewLogger(cfg config.Config) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	return New(os.Stderr, cfg.Logging.Level, cfg.Logging.Pretty)
}

// New returns a timestamped logger writing to w. It leaves zerolog's global
// settings alone.
func New(w io.Writer, level string, pretty bool) Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
