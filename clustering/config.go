// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/repperiods/distance"
	"github.com/katalvlaran/repperiods/table"
	"github.com/katalvlaran/repperiods/weights"
)

// Config is the file form of a selection and fitting run.
//
//	method: convex_hull
//	n_rp: 10
//	distance: euclidean
//	drop_incomplete_last_period: false
//	layout: {period: period, timestep: timestep, value: value}
//	fit:
//	  weight_type: conical_bounded
//	  tolerance: 0.01
//	  max_iter: 100
//	  learning_rate: 0.001
//	  adaptive_grad: false
//	  workers: 4
type Config struct {
	Method                   Method       `yaml:"method"`
	NRP                      int          `yaml:"n_rp"`
	Distance                 string       `yaml:"distance"`
	DropIncompleteLastPeriod bool         `yaml:"drop_incomplete_last_period"`
	CacheShortcut            bool         `yaml:"cache_shortcut"`
	Layout                   table.Layout `yaml:"layout"`
	Fit                      FitConfig    `yaml:"fit"`
}

// FitConfig mirrors the weights options.
type FitConfig struct {
	WeightType   weights.Type `yaml:"weight_type"`
	Tolerance    float64      `yaml:"tolerance"`
	MaxIter      int          `yaml:"max_iter"`
	LearningRate float64      `yaml:"learning_rate"`
	AdaptiveGrad bool         `yaml:"adaptive_grad"`
	Workers      int          `yaml:"workers"`
}

// DefaultConfig returns the defaults of DefaultOptions and
// weights.DefaultOptions, with n_rp unset.
func DefaultConfig() Config {
	wo := weights.DefaultOptions()

	return Config{
		Method:        ConvexHull,
		Distance:      distance.SqEuclidean.Name,
		CacheShortcut: true,
		Layout:        table.DefaultLayout(),
		Fit: FitConfig{
			WeightType:   wo.Type,
			Tolerance:    wo.Tol,
			MaxIter:      wo.Descent.MaxIter,
			LearningRate: wo.Descent.LearningRate,
			AdaptiveGrad: wo.Descent.Adaptive,
			Workers:      wo.Workers,
		},
	}
}

// LoadConfig decodes YAML from r over DefaultConfig and validates it.
// Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	switch {
	case !c.Method.valid():
		return fmt.Errorf("%w: method %d", ErrInvalidConfig, int(c.Method))
	case c.NRP < 1:
		return fmt.Errorf("%w: n_rp %d", ErrInvalidConfig, c.NRP)
	case c.Fit.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %g", ErrInvalidConfig, c.Fit.Tolerance)
	case c.Fit.MaxIter < 0:
		return fmt.Errorf("%w: max_iter %d", ErrInvalidConfig, c.Fit.MaxIter)
	case c.Fit.LearningRate <= 0:
		return fmt.Errorf("%w: learning_rate %g", ErrInvalidConfig, c.Fit.LearningRate)
	case c.Fit.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Fit.Workers)
	}
	if _, err := distance.Lookup(c.Distance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewTable returns an empty table using the configured layout.
func (c Config) NewTable(columns ...string) *table.Table {
	return table.New(c.Layout, columns...)
}

// SelectionOptions converts c into FindRepresentativePeriods options.
// extra is applied last.
func (c Config) SelectionOptions(extra ...Option) ([]Option, error) {
	metric, err := distance.Lookup(c.Distance)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithMethod(c.Method),
		WithMetric(metric),
		WithDropIncompleteLastPeriod(c.DropIncompleteLastPeriod),
		WithCacheShortcut(c.CacheShortcut),
	}

	return append(opts, extra...), nil
}

// FitOptions converts c.Fit into weights options.
func (c Config) FitOptions() []weights.Option {
	opts := []weights.Option{
		weights.WithType(c.Fit.WeightType),
		weights.WithTolerance(c.Fit.Tolerance),
		weights.WithMaxIter(c.Fit.MaxIter),
		weights.WithLearningRate(c.Fit.LearningRate),
		weights.WithAdaptiveGrad(c.Fit.AdaptiveGrad),
	}
	if c.Fit.Workers > 0 {
		opts = append(opts, weights.WithWorkers(c.Fit.Workers))
	}

	return opts
}
