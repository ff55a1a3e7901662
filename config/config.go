// Package config loads gridsearch scenarios from YAML with environment
// overrides and turns them into grids and algorithm selections.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// ErrInvalidConfig is returned by Validate, wrapped with the failing field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvConfig      = "GRIDSEARCH_CONFIG"
	EnvLogLevel    = "GRIDSEARCH_LOG_LEVEL"
	EnvMetricsAddr = "GRIDSEARCH_METRICS_ADDR"
	EnvAlgorithm   = "GRIDSEARCH_ALGORITHM"
)

// Point is a cell coordinate in a scenario file.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Cell converts p to a grid cell.
func (p Point) Cell() grid.Cell { return grid.Cell{Row: p.Row, Col: p.Col} }

// Config is a complete scenario.
type Config struct {
	Grid struct {
		Rows            int     `yaml:"rows"`
		Cols            int     `yaml:"cols"`
		WallProbability float64 `yaml:"wall_probability"`
		Seed            int64   `yaml:"seed"`
		// Layout, when set, replaces Rows/Cols/WallProbability with an ASCII map.
		Layout string `yaml:"layout"`
	} `yaml:"grid"`
	Start  *Point `yaml:"start"`
	End    *Point `yaml:"end"`
	Search struct {
		Algorithm string   `yaml:"algorithm"`
		Compare   []string `yaml:"compare"`
	} `yaml:"search"`
	Animation struct {
		Delay     time.Duration `yaml:"delay"`
		PausePoll time.Duration `yaml:"pause_poll"`
	} `yaml:"animation"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
}

// Default returns the built-in scenario: a 25×45 grid with 22% random walls,
// default endpoints, A*, 12ms pacing and a 40ms pause poll.
func Default() Config {
	var c Config
	c.Grid.Rows = 25
	c.Grid.Cols = 45
	c.Grid.WallProbability = 0.22
	c.Grid.Seed = 1
	c.Search.Algorithm = string(search.AStar)
	c.Animation.Delay = 12 * time.Millisecond
	c.Animation.PausePoll = 40 * time.Millisecond
	c.Logging.Level = "info"
	return c
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(b []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the scenario at path, or at $GRIDSEARCH_CONFIG when path is
// empty, then applies environment overrides. With neither it returns the
// defaults plus overrides.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Search.Algorithm = v
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field that cannot be fixed up silently.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Grid.Layout) == "" {
		if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
			return fmt.Errorf("%w: grid.rows and grid.cols must be positive, got %dx%d",
				ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
		}
		if c.Grid.WallProbability < 0 || c.Grid.WallProbability > 1 {
			return fmt.Errorf("%w: grid.wall_probability must be in [0,1], got %g",
				ErrInvalidConfig, c.Grid.WallProbability)
		}
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: search.algorithm: %v", ErrInvalidConfig, err)
	}
	for _, s := range c.Search.Compare {
		if _, err := search.ParseAlgorithm(s); err != nil {
			return fmt.Errorf("%w: search.compare: %v", ErrInvalidConfig, err)
		}
	}
	if c.Animation.Delay < 0 {
		return fmt.Errorf("%w: animation.delay cannot be negative", ErrInvalidConfig)
	}
	if c.Animation.PausePoll <= 0 {
		return fmt.Errorf("%w: animation.pause_poll must be positive", ErrInvalidConfig)
	}
	return nil
}

// Algorithm returns the configured single-run algorithm.
func (c Config) Algorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Search.Algorithm)
}

// CompareList returns the configured comparison order; empty means all five.
func (c Config) CompareList() ([]search.Algorithm, error) {
	algs := make([]search.Algorithm, 0, len(c.Search.Compare))
	for _, s := range c.Search.Compare {
		a, err := search.ParseAlgorithm(s)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}

// GridOptions returns the construction options for a generated grid.
// Explicit start/end override the default endpoints.
func (c Config) GridOptions() []grid.Option {
	opts := []grid.Option{grid.WithDefaultEndpoints()}
	if c.Start != nil {
		opts = append(opts, grid.WithStart(c.Start.Cell()))
	}
	if c.End != nil {
		opts = append(opts, grid.WithEnd(c.End.Cell()))
	}
	if c.Grid.WallProbability > 0 {
		rng := rand.New(rand.NewSource(c.Grid.Seed))
		opts = append(opts, grid.WithWalls(grid.RandomWalls(c.Grid.WallProbability, rng)))
	}
	return opts
}

// BuildGrid builds the scenario's grid: parsed from Layout when present,
// generated otherwise. Start/End, if set, are moved onto the parsed layout.
func (c Config) BuildGrid() (*grid.Grid, error) {
	if strings.TrimSpace(c.Grid.Layout) == "" {
		return grid.New(c.Grid.Rows, c.Grid.Cols, c.GridOptions()...)
	}
	g, err := grid.Parse(c.Grid.Layout)
	if err != nil {
		return nil, err
	}
	if c.Start != nil {
		if err = g.SetStart(c.Start.Cell()); err != nil {
			return nil, err
		}
	}
	if c.End != nil {
		if err = g.SetEnd(c.End.Cell()); err != nil {
			return nil, err
		}
	}
	return g, nil
}
