// SPDX-License-Identifier: MIT

package weights

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/repperiods/projection"
)

// DefaultTolerance is both the descent stopping threshold and the cut-off
// below which fitted weights are zeroed.
const DefaultTolerance = 1e-2

// Option configures Fit.
type Option func(*Options)

// Options holds the effective Fit configuration.
type Options struct {
	Type    Type
	Tol     float64
	Descent projection.Config
	Workers int
	Logger  zerolog.Logger
}

// DefaultOptions returns a convex fit with tol 1e-2, 100 iterations of fixed
// step 1e-3, and one worker per logical CPU.
func DefaultOptions() Options {
	return Options{
		Type:    Convex,
		Tol:     DefaultTolerance,
		Descent: projection.DefaultConfig(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zerolog.Nop(),
	}
}

// WithType selects the feasible region.
func WithType(t Type) Option {
	return func(o *Options) { o.Type = t }
}

// WithTolerance sets the stopping and zeroing tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithMaxIter caps the descent iterations per row.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.Descent.MaxIter = n }
}

// WithLearningRate sets the descent step (or AdaGrad numerator).
func WithLearningRate(lr float64) Option {
	return func(o *Options) { o.Descent.LearningRate = lr }
}

// WithAdaptiveGrad toggles AdaGrad step sizing.
func WithAdaptiveGrad(on bool) Option {
	return func(o *Options) { o.Descent.Adaptive = on }
}

// WithWorkers bounds the number of rows fitted concurrently.
// Values below one fall back to a single worker.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger for fit statistics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	o.Descent.Tol = o.Tol

	return o
}
