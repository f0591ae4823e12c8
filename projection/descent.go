// SPDX-License-Identifier: MIT

package projection

import "math"

// Default descent hyperparameters.
const (
	DefaultMaxIter      = 100
	DefaultLearningRate = 1e-3
	DefaultTol          = 1e-2
	DefaultAdaGradEps   = 1e-8
)

// Config holds the hyperparameters of projected subgradient descent.
type Config struct {
	// MaxIter caps the number of descent steps (≥ 0).
	MaxIter int

	// LearningRate is the fixed step, or the AdaGrad numerator when Adaptive.
	LearningRate float64

	// Tol stops the descent once max|x_new − x| ≤ Tol.
	Tol float64

	// Adaptive enables AdaGrad steps: α_i = LearningRate/(Eps + √Σg_i²).
	Adaptive bool

	// Eps keeps AdaGrad steps finite on the first iteration.
	Eps float64
}

// DefaultConfig returns MaxIter=100, LearningRate=1e-3, Tol=1e-2, fixed step.
func DefaultConfig() Config {
	return Config{
		MaxIter:      DefaultMaxIter,
		LearningRate: DefaultLearningRate,
		Tol:          DefaultTol,
		Eps:          DefaultAdaGradEps,
	}
}

// Subgradient returns a subgradient of the objective at x.
type Subgradient func(x []float64) []float64

// Stats reports how a descent run ended.
type Stats struct {
	Iterations int
	Converged  bool
}

// Descend runs projected subgradient descent from x0:
//
//	x ← P(x0)
//	repeat MaxIter times:
//	    g ← ∂f(x)
//	    α ← LearningRate               (fixed)
//	    α ← LearningRate/(ε + √Σg²)    (adaptive, elementwise)
//	    x_new ← P(x − α⊙g)
//	    stop if max|x_new − x| ≤ Tol
//	    x ← x_new
//
// The returned slice is freshly allocated; x0 is not modified.
func Descend(x0 []float64, grad Subgradient, project Projector, cfg Config) ([]float64, Stats) {
	x := project(x0)

	var accum []float64
	if cfg.Adaptive {
		accum = make([]float64, len(x))
	}
	y := make([]float64, len(x))

	var st Stats
	for st.Iterations < cfg.MaxIter {
		g := grad(x)
		for i := range x {
			step := cfg.LearningRate
			if cfg.Adaptive {
				accum[i] += g[i] * g[i]
				step = cfg.LearningRate / (cfg.Eps + math.Sqrt(accum[i]))
			}
			y[i] = x[i] - step*g[i]
		}
		next := project(y)
		st.Iterations++

		delta := maxAbsDiff(next, x)
		x = next
		if delta <= cfg.Tol {
			st.Converged = true
			break
		}
	}

	return x, st
}

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m
}
