package clustering_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/clustering"
	"github.com/katalvlaran/repperiods/distance"
	"github.com/katalvlaran/repperiods/projection"
	"github.com/katalvlaran/repperiods/table"
)

// series builds a keyless table: periods[p][ts] is the value of period p+1
// at timestep ts+1.
func series(periods ...[]float64) *table.Table {
	t := table.New(table.DefaultLayout(), "period", "timestep", "value")
	for p, vals := range periods {
		for ts, v := range vals {
			t.Append(p+1, ts+1, v)
		}
	}

	return t
}

// fourPeriods is a small positive data set with distinct periods.
func fourPeriods() *table.Table {
	return series(
		[]float64{1, 2},
		[]float64{5, 3},
		[]float64{2, 6},
		[]float64{3, 3},
	)
}

// precise tightens the point-to-hull projection for small fixtures.
var precise = clustering.WithHullDescent(projection.Config{
	MaxIter:      5000,
	LearningRate: 0.01,
	Tol:          1e-12,
	Eps:          projection.DefaultAdaGradEps,
})

// firstK is a deterministic stand-in for k-means / k-medoids: the first k
// columns are the centers and every column goes to its nearest center.
func firstK(medoids bool) clustering.ClustererFunc {
	return func(m *mat.Dense, k int, metric distance.Metric) (clustering.Clusters, error) {
		f, p := m.Dims()
		assign := make([]int, p)
		for j := 0; j < p; j++ {
			col := mat.Col(nil, j, m)
			best := math.Inf(1)
			for c := 0; c < k; c++ {
				if d := metric.Between(col, mat.Col(nil, c, m)); d < best {
					best, assign[j] = d, c
				}
			}
		}
		out := clustering.Clusters{Assignments: assign}
		if medoids {
			for c := 0; c < k; c++ {
				out.Medoids = append(out.Medoids, c)
			}
		} else {
			out.Centers = mat.DenseCopyOf(m.Slice(0, f, 0, k))
		}

		return out, nil
	}
}

// assertOneHot checks that w is a square permutation matrix scaled by weight.
func assertOneHot(t *testing.T, w *mat.Dense, weight float64) {
	t.Helper()
	r, c := w.Dims()
	require.Equal(t, r, c)
	hits := make([]int, c)
	for i := 0; i < r; i++ {
		nonzero := 0
		for j := 0; j < c; j++ {
			if v := w.At(i, j); v != 0 {
				nonzero++
				hits[j]++
				assert.InDelta(t, weight, v, 1e-12)
			}
		}
		assert.Equal(t, 1, nonzero, "row %d", i)
	}
	for j, h := range hits {
		assert.Equal(t, 1, h, "column %d", j)
	}
}

// assertDirac checks that every row of w has exactly one non-zero entry.
func assertDirac(t *testing.T, w *mat.Dense, weight float64) {
	t.Helper()
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		nonzero := 0
		for j := 0; j < c; j++ {
			if v := w.At(i, j); v != 0 {
				nonzero++
				assert.InDelta(t, weight, v, 1e-12)
			}
		}
		assert.Equal(t, 1, nonzero, "row %d", i)
	}
}
