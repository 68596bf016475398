// Package config loads the planner's YAML configuration.
//
// A file looks like:
//
//	grid:
//	  columns: 38
//	  rows: 38
//	distance_per_cell: 1.0
//	mode: greedy          # sequential | greedy
//	local_search: true
//	two_opt_max_iters: 0  # 0 = until local optimum
//	metrics_addr: ""      # e.g. ":9090"; empty disables /metrics
//
// Omitted keys keep their Default values; unknown keys are rejected.
// PICKROUTE_METRICS_ADDR, when set, overrides metrics_addr.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pickroute/tsp"
)

// EnvMetricsAddr names the environment override for MetricsAddr.
const EnvMetricsAddr = "PICKROUTE_METRICS_ADDR"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Grid holds the floor dimensions in cells.
type Grid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Config is the full planner configuration.
type Config struct {
	Grid            Grid    `yaml:"grid"`
	DistancePerCell float64 `yaml:"distance_per_cell"`
	Mode            string  `yaml:"mode"`
	LocalSearch     bool    `yaml:"local_search"`
	TwoOptMaxIters  int     `yaml:"two_opt_max_iters"`
	MetricsAddr     string  `yaml:"metrics_addr"`
}

// Default returns the stock 38×38 floor, one unit per cell, greedy with 2-opt.
func Default() Config {
	return Config{
		Grid:            Grid{Columns: 38, Rows: 38},
		DistancePerCell: 1.0,
		Mode:            tsp.Greedy.String(),
		LocalSearch:     true,
	}
}

// Load reads and parses the file at path, then applies env overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv()

	return cfg, cfg.Validate()
}

// Parse decodes YAML on top of Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		c.MetricsAddr = v
	}
}

// Validate checks dimensions, unit, mode and iteration bound.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Grid.Columns, c.Grid.Rows))
	}
	if c.DistancePerCell <= 0 {
		errs = append(errs, fmt.Errorf("%w: distance_per_cell must be positive, got %g", ErrInvalidConfig, c.DistancePerCell))
	}
	if _, err := tsp.ParseAlgo(c.Mode); err != nil {
		errs = append(errs, fmt.Errorf("%w: mode: %w", ErrInvalidConfig, err))
	}
	if c.TwoOptMaxIters < 0 {
		errs = append(errs, fmt.Errorf("%w: two_opt_max_iters must be >= 0, got %d", ErrInvalidConfig, c.TwoOptMaxIters))
	}

	return errors.Join(errs...)
}

// TSPOptions maps the tour settings onto tsp.Options.
// Call only on a validated Config.
func (c Config) TSPOptions() tsp.Options {
	algo, _ := tsp.ParseAlgo(c.Mode)

	return tsp.Options{
		Algo:              algo,
		EnableLocalSearch: c.LocalSearch,
		TwoOptMaxIters:    c.TwoOptMaxIters,
	}
}
