// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnknownMetric is returned by Lookup for an unregistered metric name.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrNilFunc is returned by Custom when no function is supplied.
	ErrNilFunc = errors.New("distance: nil distance function")
)

// Func is a binary semimetric on equal-length vectors.
// It must be symmetric and non-negative; it may return NaN when the
// distance is undefined for the given pair.
type Func func(a, b []float64) float64

// Metric couples a distance function with its configuration name and the
// properties the greedy hull search relies on.
type Metric struct {
	// Name is the registry key ("euclidean", "cosine", ...).
	Name string

	// Func computes the distance.
	Func Func

	// HullCacheSafe marks metrics for which a point-to-point distance that is
	// not smaller than a cached point-to-hull distance leaves that cached value
	// a valid upper bound. Only the Euclidean family is flagged.
	HullCacheSafe bool
}

// Between evaluates the metric on a and b.
func (m Metric) Between(a, b []float64) float64 { return m.Func(a, b) }

// String returns the metric name.
func (m Metric) String() string { return m.Name }

// Custom wraps an arbitrary distance function into a Metric.
// Custom metrics are never considered HullCacheSafe.
func Custom(name string, f Func) (Metric, error) {
	if f == nil {
		return Metric{}, ErrNilFunc
	}

	return Metric{Name: name, Func: f}, nil
}

// Built-in metrics.
var (
	Euclidean   = Metric{Name: "euclidean", Func: euclidean, HullCacheSafe: true}
	SqEuclidean = Metric{Name: "sqeuclidean", Func: sqEuclidean, HullCacheSafe: true}
	Cityblock   = Metric{Name: "cityblock", Func: cityblock}
	Chebyshev   = Metric{Name: "chebyshev", Func: chebyshev}
	Cosine      = Metric{Name: "cosine", Func: cosine}
	DTW         = Metric{Name: "dtw", Func: dtwDistance}
)

var registry = map[string]Metric{
	Euclidean.Name:   Euclidean,
	SqEuclidean.Name: SqEuclidean,
	Cityblock.Name:   Cityblock,
	Chebyshev.Name:   Chebyshev,
	Cosine.Name:      Cosine,
	DTW.Name:         DTW,
}

// Lookup resolves a built-in metric by name (case-insensitive).
func Lookup(name string) (Metric, error) {
	m, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Metric{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownMetric, name, strings.Join(Names(), ", "))
	}

	return m, nil
}

// Names lists the registered metric names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

func sqEuclidean(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

func cityblock(a, b []float64) float64 { return floats.Distance(a, b, 1) }

func chebyshev(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// cosine returns 1 − cos∠(a, b). A zero-norm operand yields NaN.
func cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return math.NaN()
	}
	// Clamp: rounding may push the cosine slightly outside [-1, 1].
	c := floats.Dot(a, b) / (na * nb)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return 1 - c
}
