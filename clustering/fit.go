// SPDX-License-Identifier: MIT

package clustering

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/weights"
)

// FitRepresentativeWeights replaces the Dirac weights of the complete
// periods in res.WeightMatrix by blended weights fitted with weights.Fit.
// The row and column of a kept incomplete last period are left untouched.
func FitRepresentativeWeights(res *Result, opts ...weights.Option) (weights.Report, error) {
	const op = "FitRepresentativeWeights"
	if res == nil || res.WeightMatrix == nil {
		return weights.Report{}, clusteringErrorf(op, ErrNilResult)
	}

	_, p := res.ClusteringMatrix.Dims()
	_, r := res.RPMatrix.Dims()
	block := res.WeightMatrix.Slice(0, p, 0, r).(*mat.Dense)

	rep, err := weights.Fit(block, res.ClusteringMatrix, res.RPMatrix, opts...)
	if err != nil {
		return rep, clusteringErrorf(op, err)
	}

	return rep, nil
}
