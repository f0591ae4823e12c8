package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/repperiods/distance"
)

// TestDTW_Identical verifies that identical sequences have zero distance.
func TestDTW_Identical(t *testing.T) {
	a := []float64{0, 1, 2}
	assert.Equal(t, 0.0, distance.DTW.Between(a, a))
}

// TestDTW_Shifted verifies that DTW absorbs a one-step phase shift that the
// Euclidean metric penalises.
func TestDTW_Shifted(t *testing.T) {
	a := []float64{0, 0, 1, 2, 1, 0}
	b := []float64{0, 1, 2, 1, 0, 0}

	assert.Equal(t, 0.0, distance.DTW.Between(a, b), "warping aligns the shifted peak")
	assert.Greater(t, distance.Euclidean.Between(a, b), 0.0)
}

// TestDTW_SlopePenaltyAffectsDistance ensures that a positive slope penalty
// increases the computed distance by exactly that penalty.
func TestDTW_SlopePenaltyAffectsDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2}

	free := distance.NewDTW(distance.DTWOptions{})
	assert.Equal(t, 1.0, free.Between(a, b))

	penalised := distance.NewDTW(distance.DTWOptions{SlopePenalty: 0.5})
	assert.Greater(t, penalised.Between(a, b), free.Between(a, b))
}

// TestDTW_WindowConstraint verifies that window=1 with a length mismatch of
// two yields +Inf distance.
func TestDTW_WindowConstraint(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4, 5}
	m := distance.NewDTW(distance.DTWOptions{Window: 1})

	assert.True(t, math.IsInf(m.Between(a, b), 1))
	assert.False(t, m.HullCacheSafe)
}

// TestDTW_EmptyInput verifies that empty input is undefined.
func TestDTW_EmptyInput(t *testing.T) {
	assert.True(t, math.IsNaN(distance.DTW.Between(nil, []float64{1})))
}
