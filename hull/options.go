// SPDX-License-Identifier: MIT

package hull

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/repperiods/projection"
)

// Default point-to-hull descent parameters. The tolerance is tighter than
// the weight-fitting default because candidate ranking depends on it.
const (
	DefaultMaxIter      = 100
	DefaultLearningRate = 1e-3
	DefaultTol          = 1e-6
)

// Option configures Search.
type Option func(*Options)

// Options holds the effective Search configuration.
type Options struct {
	// Seed is an ordered prefix of column indices that is kept as is.
	Seed []int

	// Reference replaces the column mean when choosing the first point.
	// Ignored when Seed is non-empty.
	Reference []float64

	// CacheShortcut reuses a cached point-to-hull distance when the distance
	// from the candidate to the newest hull point is not smaller than it.
	// Only sound for Euclidean-like metrics.
	CacheShortcut bool

	// Descent configures the point-to-hull projection.
	Descent projection.Config

	// Logger receives debug events for each hull extension.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with no seed, no reference, cache shortcut
// off, and a fixed-step descent (100 iterations, step 1e-3, tol 1e-6).
func DefaultOptions() Options {
	return Options{
		Descent: projection.Config{
			MaxIter:      DefaultMaxIter,
			LearningRate: DefaultLearningRate,
			Tol:          DefaultTol,
			Eps:          projection.DefaultAdaGradEps,
		},
		Logger: zerolog.Nop(),
	}
}

// WithSeed sets the seed prefix. The slice is copied.
func WithSeed(seed []int) Option {
	cp := append([]int(nil), seed...)

	return func(o *Options) { o.Seed = cp }
}

// WithReference sets the reference vector used for seeding.
func WithReference(ref []float64) Option {
	cp := append([]float64(nil), ref...)

	return func(o *Options) { o.Reference = cp }
}

// WithCacheShortcut toggles the distance cache shortcut.
func WithCacheShortcut(on bool) Option {
	return func(o *Options) { o.CacheShortcut = on }
}

// WithDescent replaces the point-to-hull descent parameters.
func WithDescent(cfg projection.Config) Option {
	return func(o *Options) { o.Descent = cfg }
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
