package projection_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/repperiods/projection"
)

const epsSum = 1e-9

// TestSimplex_Trivial covers the length-0 and length-1 contracts.
func TestSimplex_Trivial(t *testing.T) {
	assert.Empty(t, projection.Simplex(nil))
	assert.Equal(t, []float64{1}, projection.Simplex([]float64{-42}))
	assert.Equal(t, []float64{1}, projection.Simplex([]float64{0.3}))
}

// TestSimplex_Known checks hand-computed projections.
func TestSimplex_Known(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"already feasible", []float64{0.2, 0.3, 0.5}, []float64{0.2, 0.3, 0.5}},
		{"vertex", []float64{1, 0, 0}, []float64{1, 0, 0}},
		{"uniform shift", []float64{1, 1}, []float64{0.5, 0.5}},
		{"dominant", []float64{5, 0, -1}, []float64{1, 0, 0}},
		{"clip one", []float64{0.6, 0.6, -0.5}, []float64{0.5, 0.5, 0}},
		{"all negative", []float64{-3, -1, -2}, []float64{0, 1, 0}},
		{"restart path", []float64{0.1, 0.2, 3, 0.15}, []float64{0, 0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := projection.Simplex(tc.in)
			require.Len(t, got, len(tc.want))
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

// TestSimplex_RandomFeasibility checks non-negativity, unit sum and the
// optimality condition of the projection on random inputs.
func TestSimplex_RandomFeasibility(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(30)
		y := make([]float64, n)
		for i := range y {
			y[i] = rng.NormFloat64() * 3
		}
		x := projection.Simplex(y)

		for _, xi := range x {
			require.GreaterOrEqual(t, xi, 0.0)
		}
		require.InDelta(t, 1.0, floats.Sum(x), epsSum)

		// KKT: all positive coordinates share the same shift y_i − x_i = ρ,
		// and every zero coordinate has y_i ≤ ρ.
		rho := 0.0
		found := false
		for i := range x {
			if x[i] > 0 {
				if !found {
					rho, found = y[i]-x[i], true
				}
				require.InDelta(t, rho, y[i]-x[i], 1e-9)
			}
		}
		require.True(t, found)
		for i := range x {
			if x[i] == 0 {
				require.LessOrEqual(t, y[i], rho+1e-9)
			}
		}
	}
}

// TestSimplex_DoesNotMutate guarantees inputs are left intact.
func TestSimplex_DoesNotMutate(t *testing.T) {
	y := []float64{3, 1, 2}
	_ = projection.Simplex(y)
	assert.Equal(t, []float64{3, 1, 2}, y)
}

// TestNonNegative clips negatives only.
func TestNonNegative(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 2.5}, projection.NonNegative([]float64{-1, 0, 2.5}))
}

// BenchmarkSimplex measures the projection on a 1k-dimensional vector.
func BenchmarkSimplex(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	y := make([]float64, 1000)
	for i := range y {
		y[i] = rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = projection.Simplex(y)
	}
}
