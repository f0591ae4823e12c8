package clustering_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/clustering"
	"github.com/katalvlaran/repperiods/distance"
	"github.com/katalvlaran/repperiods/hull"
	"github.com/katalvlaran/repperiods/table"
)

var allMethods = []clustering.Method{
	clustering.KMeans,
	clustering.KMedoids,
	clustering.ConvexHull,
	clustering.ConvexHullWithNull,
	clustering.ConicalHull,
}

// TestFind_TwoPeriodsIdentity: two periods, two timesteps, one key column,
// n_rp = 2. Every method returns the identity up to permutation.
func TestFind_TwoPeriodsIdentity(t *testing.T) {
	tbl := table.New(table.DefaultLayout(), "period", "timestep", "node", "value")
	tbl.Append(1, 1, 1, "a")
	tbl.Append(1, 2, 2, "a")
	tbl.Append(2, 1, 5, "a")
	tbl.Append(2, 2, 3, "a")

	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			res, err := clustering.FindRepresentativePeriods(tbl, 2,
				clustering.WithMethod(m),
				clustering.WithClusterer(firstK(m == clustering.KMedoids)),
			)
			require.NoError(t, err)
			assertOneHot(t, res.WeightMatrix, 1)

			assert.Equal(t, []table.Key{
				{Timestep: 1, Values: []string{"a"}},
				{Timestep: 2, Values: []string{"a"}},
			}, res.Keys)
			assert.Equal(t, []string{"timestep", "node"}, res.Aux.KeyColumns)
			assert.Len(t, res.RepresentativePeriods, 4)

			// RP columns are the base columns, reordered by the weights.
			var rebuilt mat.Dense
			rebuilt.Mul(res.RPMatrix, res.WeightMatrix.T())
			assert.True(t, mat.EqualApprox(&rebuilt, res.ClusteringMatrix, 1e-12))
		})
	}
}

// TestFind_NullHullPicksLargest: with the zero vector in the hull, the
// larger of [1.0] and [0.5] is the single representative.
func TestFind_NullHullPicksLargest(t *testing.T) {
	res, err := clustering.FindRepresentativePeriods(series([]float64{1.0}, []float64{0.5}), 1,
		clustering.WithMethod(clustering.ConvexHullWithNull))
	require.NoError(t, err)

	assert.Equal(t, []float64{1.0}, res.RPMatrix.RawMatrix().Data)
	assert.Equal(t, []int{0}, res.Aux.Medoids)
	assert.Equal(t, []float64{1, 1}, mat.Col(nil, 0, res.WeightMatrix))
}

// TestFind_AllPeriodsSelected: n_rp == n_periods gives a one-hot weight
// matrix for every hull variant.
func TestFind_AllPeriodsSelected(t *testing.T) {
	for _, m := range []clustering.Method{clustering.ConvexHull, clustering.ConvexHullWithNull, clustering.ConicalHull} {
		t.Run(m.String(), func(t *testing.T) {
			res, err := clustering.FindRepresentativePeriods(fourPeriods(), 4, clustering.WithMethod(m))
			require.NoError(t, err)
			assertOneHot(t, res.WeightMatrix, 1)
			assert.ElementsMatch(t, []int{0, 1, 2, 3}, res.Aux.Medoids)
		})
	}
}

// TestFind_HullOrder: the convex hull of the fixture is found in a fixed
// order and (3,3) is never preferred over an extreme period.
func TestFind_HullOrder(t *testing.T) {
	tbl := fourPeriods()
	first, err := clustering.FindRepresentativePeriods(tbl, 3, precise, clustering.WithMetric(distance.Euclidean))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, first.Aux.Medoids)

	again, err := clustering.FindRepresentativePeriods(tbl, 3, precise, clustering.WithMetric(distance.Euclidean))
	require.NoError(t, err)
	assert.Equal(t, first.Aux.Medoids, again.Aux.Medoids)
	assert.True(t, mat.Equal(first.WeightMatrix, again.WeightMatrix))
}

// TestFind_ConicalHullZeroPeriod: an all-zero period lies on every ray. It
// is not picked while other periods remain, and it still gets a weight.
func TestFind_ConicalHullZeroPeriod(t *testing.T) {
	tbl := series([]float64{1, 2}, []float64{0, 0}, []float64{2, 6}, []float64{3, 1})

	res, err := clustering.FindRepresentativePeriods(tbl, 2, clustering.WithMethod(clustering.ConicalHull))
	require.NoError(t, err)
	assert.Len(t, res.Aux.Medoids, 2)
	assert.NotContains(t, res.Aux.Medoids, 1)
	assertDirac(t, res.WeightMatrix, 1)

	all, err := clustering.FindRepresentativePeriods(tbl, 4, clustering.WithMethod(clustering.ConicalHull))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, all.Aux.Medoids)
	assertOneHot(t, all.WeightMatrix, 1)
}

func TestFind_IncompleteLastPeriodKept(t *testing.T) {
	tbl := series([]float64{1, 2}, []float64{5, 3}, []float64{4})

	res, err := clustering.FindRepresentativePeriods(tbl, 2)
	require.NoError(t, err)

	assert.True(t, res.IncompletePeriod)
	assert.Equal(t, 3, res.Aux.NPeriods)
	assert.Equal(t, 2, res.Aux.PeriodDuration)
	assert.Equal(t, 1, res.Aux.LastPeriodDuration)

	r, c := res.WeightMatrix.Dims()
	require.Equal(t, []int{3, 2}, []int{r, c})
	assert.Equal(t, []float64{1, 1, 0}, mat.Col(nil, 0, res.WeightMatrix))
	assert.Equal(t, []float64{0, 0, 1}, mat.Col(nil, 1, res.WeightMatrix))

	_, rpCols := res.RPMatrix.Dims()
	assert.Equal(t, 1, rpCols)
	last := res.RepresentativePeriods[len(res.RepresentativePeriods)-1]
	assert.Equal(t, clustering.RPRow{RepPeriod: 2, Timestep: 1, Keys: nil, Value: 4}, last)
	assert.Len(t, res.RepresentativePeriods, 3)
}

func TestFind_IncompleteLastPeriodDropped(t *testing.T) {
	tbl := series([]float64{1, 2}, []float64{5, 3}, []float64{4})

	res, err := clustering.FindRepresentativePeriods(tbl, 2, clustering.WithDropIncompleteLastPeriod(true))
	require.NoError(t, err)

	assert.False(t, res.IncompletePeriod)
	// (2·2 + 1) / (2·2)
	assertOneHot(t, res.WeightMatrix, 1.25)
	assert.Len(t, res.RepresentativePeriods, 4)
}

func TestFind_RPCountGuard(t *testing.T) {
	two := series([]float64{1, 2}, []float64{5, 3})
	for _, n := range []int{0, -1, 3} {
		_, err := clustering.FindRepresentativePeriods(two, n)
		assert.ErrorIs(t, err, clustering.ErrInvalidRPCount, "n_rp=%d", n)
	}

	// A kept incomplete period takes one representative of its own.
	short := series([]float64{1, 2}, []float64{5, 3}, []float64{4})
	_, err := clustering.FindRepresentativePeriods(short, 1)
	assert.ErrorIs(t, err, clustering.ErrInvalidRPCount)

	// Dropping it leaves only two complete periods.
	_, err = clustering.FindRepresentativePeriods(short, 3, clustering.WithDropIncompleteLastPeriod(true))
	assert.ErrorIs(t, err, clustering.ErrInvalidRPCount)
}

func TestFind_Errors(t *testing.T) {
	noValue := table.New(table.DefaultLayout(), "period", "timestep")
	_, err := clustering.FindRepresentativePeriods(noValue, 1)
	require.ErrorIs(t, err, table.ErrMissingColumn)
	var schema *table.SchemaError
	require.True(t, errors.As(err, &schema))
	assert.Equal(t, "value", schema.Column)

	_, err = clustering.FindRepresentativePeriods(series(), 1)
	assert.ErrorIs(t, err, clustering.ErrEmptyTable)

	_, err = clustering.FindRepresentativePeriods(nil, 1)
	assert.ErrorIs(t, err, clustering.ErrEmptyTable)

	_, err = clustering.FindRepresentativePeriods(fourPeriods(), 2, clustering.WithMethod(clustering.Method(42)))
	assert.ErrorIs(t, err, clustering.ErrUnsupportedMethod)

	_, err = clustering.FindRepresentativePeriods(fourPeriods(), 2, clustering.WithMethod(clustering.KMeans))
	assert.ErrorIs(t, err, clustering.ErrNoClusterer)

	_, err = clustering.FindRepresentativePeriods(fourPeriods(), 2,
		clustering.WithMethod(clustering.ConvexHullWithNull),
		clustering.WithMetric(distance.Cosine))
	assert.ErrorIs(t, err, clustering.ErrUndefinedNullDistance)

	negative := series([]float64{1, 1}, []float64{-1, -1})
	_, err = clustering.FindRepresentativePeriods(negative, 2, clustering.WithMethod(clustering.ConicalHull))
	assert.ErrorIs(t, err, hull.ErrDegenerateProjection)

	dup := series([]float64{1, 2}, []float64{5, 3})
	dup.Append(1, 1, 7)
	_, err = clustering.FindRepresentativePeriods(dup, 1)
	assert.ErrorIs(t, err, table.ErrDuplicateCell)
}

func TestFind_ClustererOutputChecked(t *testing.T) {
	cases := map[string]clustering.ClustererFunc{
		"short assignments": func(m *mat.Dense, k int, _ distance.Metric) (clustering.Clusters, error) {
			return clustering.Clusters{Centers: mat.DenseCopyOf(m), Assignments: []int{0}}, nil
		},
		"assignment out of range": func(m *mat.Dense, k int, _ distance.Metric) (clustering.Clusters, error) {
			return clustering.Clusters{Centers: mat.NewDense(2, k, nil), Assignments: []int{0, 0, 0, k}}, nil
		},
		"no centers": func(m *mat.Dense, k int, _ distance.Metric) (clustering.Clusters, error) {
			return clustering.Clusters{Assignments: make([]int, 4)}, nil
		},
		"wrong center shape": func(m *mat.Dense, k int, _ distance.Metric) (clustering.Clusters, error) {
			return clustering.Clusters{Centers: mat.NewDense(3, k, nil), Assignments: make([]int, 4)}, nil
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := clustering.FindRepresentativePeriods(fourPeriods(), 2,
				clustering.WithMethod(clustering.KMeans), clustering.WithClusterer(fn))
			assert.ErrorIs(t, err, clustering.ErrClustererOutput)
		})
	}

	failing := clustering.ClustererFunc(func(*mat.Dense, int, distance.Metric) (clustering.Clusters, error) {
		return clustering.Clusters{}, errors.New("boom")
	})
	_, err := clustering.FindRepresentativePeriods(fourPeriods(), 2,
		clustering.WithMethod(clustering.KMedoids), clustering.WithClusterer(failing))
	assert.ErrorContains(t, err, "boom")
}

func TestFind_KMedoidsRecordsMedoids(t *testing.T) {
	res, err := clustering.FindRepresentativePeriods(fourPeriods(), 2,
		clustering.WithMethod(clustering.KMedoids), clustering.WithClusterer(firstK(true)))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, res.Aux.Medoids)
	assert.Equal(t, mat.Col(nil, 1, res.ClusteringMatrix), mat.Col(nil, 1, res.RPMatrix))
	assertDirac(t, res.WeightMatrix, 1)
}

func TestFind_KMeansLeavesMedoidsUnset(t *testing.T) {
	res, err := clustering.FindRepresentativePeriods(fourPeriods(), 2,
		clustering.WithMethod(clustering.KMeans), clustering.WithClusterer(firstK(false)))
	require.NoError(t, err)
	assert.Nil(t, res.Aux.Medoids)
}

func TestFind_DroppedKeys(t *testing.T) {
	tbl := table.New(table.DefaultLayout(), "period", "timestep", "node", "value")
	for p := 1; p <= 3; p++ {
		for ts := 1; ts <= 2; ts++ {
			tbl.Append(p, ts, float64(p*ts), "a")
			if p == 2 && ts == 1 {
				continue
			}
			tbl.Append(p, ts, float64(p+ts), "b")
		}
	}

	var buf bytes.Buffer
	res, err := clustering.FindRepresentativePeriods(tbl, 2, clustering.WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	assert.Equal(t, []table.Key{{Timestep: 1, Values: []string{"b"}}}, res.DroppedKeys)
	assert.Len(t, res.Keys, 3)
	assert.Contains(t, buf.String(), "key row dropped")
	assert.Contains(t, buf.String(), `"key":"1|b"`)
}

func TestFind_AllKeysDropped(t *testing.T) {
	tbl := table.New(table.DefaultLayout(), "period", "timestep", "node", "value")
	tbl.Append(1, 1, 1, "a")
	tbl.Append(2, 1, 2, "b")

	_, err := clustering.FindRepresentativePeriods(tbl, 1)
	assert.ErrorIs(t, err, clustering.ErrEmptyClusteringMatrix)
}

func TestFind_CustomLayout(t *testing.T) {
	l := table.Layout{Period: "day", Timestep: "hour", Value: "load"}
	tbl := table.New(l, "day", "hour", "load")
	tbl.Append(1, 1, 1)
	tbl.Append(2, 1, 3)

	res, err := clustering.FindRepresentativePeriods(tbl, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"hour"}, res.Aux.KeyColumns)

	out := res.Table()
	assert.Equal(t, []string{clustering.RepPeriodColumn, "hour", "load"}, out.Columns)
	require.NoError(t, out.Validate())
	assert.Equal(t, 1, out.Len())
}

func TestResult_Table(t *testing.T) {
	tbl := table.New(table.DefaultLayout(), "period", "node", "timestep", "value")
	tbl.Append(1, 1, 1, "a")
	tbl.Append(2, 1, 4, "a")
	tbl.Append(3, 1, 2, "a")

	res, err := clustering.FindRepresentativePeriods(tbl, 2)
	require.NoError(t, err)

	out := res.Table()
	assert.Equal(t, []string{"rep_period", "node", "timestep", "value"}, out.Columns)
	assert.Equal(t, []string{"node"}, out.ExtraKeyColumns())
	require.Equal(t, 2, out.Len())
	for i, row := range out.Rows {
		assert.Equal(t, i+1, row.Period)
		assert.Equal(t, []string{"a"}, row.Keys)
	}
}

func BenchmarkFindConvexHull(b *testing.B) {
	periods := make([][]float64, 60)
	for p := range periods {
		periods[p] = make([]float64, 24)
		for ts := range periods[p] {
			periods[p][ts] = float64((p*7+ts*13)%29) + 1
		}
	}
	tbl := series(periods...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clustering.FindRepresentativePeriods(tbl, 8); err != nil {
			b.Fatal(err)
		}
	}
}
