// SPDX-License-Identifier: MIT

package hull

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Gnomonic projects the columns of m onto the hyperplane {x : ⟨u, x⟩ = 1},
// where u is the unit-normalised column mean. Rays through the origin map to
// single points, so extreme rays of a cone become extreme points of a convex
// set and the convex search applies unchanged.
//
// All-zero columns lie on every ray and are never extreme; they are left out
// of the projection. kept lists, in order, the column of m behind each column
// of the result.
//
// Returns ErrDegenerateProjection when the mean is zero, when every column is
// zero, or when a non-zero column has a non-positive (or non-finite)
// component along u.
func Gnomonic(m *mat.Dense) (proj *mat.Dense, kept []int, err error) {
	if m == nil || m.IsEmpty() {
		return nil, nil, hullErrorf("Gnomonic", ErrEmptyMatrix)
	}
	r, c := m.Dims()

	u := columnMean(m)
	norm := floats.Norm(u, 2)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, nil, hullErrorf("Gnomonic", ErrDegenerateProjection)
	}
	floats.Scale(1/norm, u)

	var data []float64
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, m)
		if isZero(col) {
			continue
		}
		p := floats.Dot(u, col)
		if !(p > 0) || math.IsInf(p, 0) {
			return nil, nil, hullErrorf("Gnomonic", ErrDegenerateProjection)
		}
		floats.Scale(1/p, col)
		kept = append(kept, j)
		data = append(data, col...)
	}
	if len(kept) == 0 {
		return nil, nil, hullErrorf("Gnomonic", ErrDegenerateProjection)
	}

	// data is column-major; transpose into a rows×kept matrix.
	proj = mat.NewDense(r, len(kept), nil)
	proj.Copy(mat.NewDense(len(kept), r, data).T())

	return proj, kept, nil
}

// columnMean returns the mean of the columns of m.
func columnMean(m mat.Matrix) []float64 {
	r, c := m.Dims()
	mean := make([]float64, r)
	for i := 0; i < r; i++ {
		var s float64
		for j := 0; j < c; j++ {
			s += m.At(i, j)
		}
		mean[i] = s / float64(c)
	}

	return mean
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}
