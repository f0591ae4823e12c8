// SPDX-License-Identifier: MIT

package clustering

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/distance"
)

// Clusters is the output of a Clusterer.
type Clusters struct {
	// Centers is features×k. For k-medoids it may be nil, in which case the
	// medoid columns are used.
	Centers *mat.Dense

	// Assignments maps every column of the input to a cluster in [0, k).
	Assignments []int

	// Medoids holds, for k-medoids, the input column index of each cluster.
	Medoids []int
}

// Clusterer is the external k-means / k-medoids capability.
// Columns of m are the observations.
//
// No implementation ships with this package. A hard clusterer that learns
// from row-major observations and reports 1-based guesses plugs in through
// ClustererFunc:
//
//	clustering.ClustererFunc(func(m *mat.Dense, k int, d distance.Metric) (clustering.Clusters, error) {
//	    obs := mat.DenseCopyOf(m.T())            // one observation per row
//	    c, err := kmeans(iterations, k, d.Func)  // your backend
//	    ...
//	    for j, g := range c.Guesses() {
//	        assign[j] = g - 1
//	    }
//	    // centers: column means of m per cluster
//	})
type Clusterer interface {
	Cluster(m *mat.Dense, k int, metric distance.Metric) (Clusters, error)
}

// ClustererFunc adapts a function to the Clusterer interface.
type ClustererFunc func(m *mat.Dense, k int, metric distance.Metric) (Clusters, error)

// Cluster calls f.
func (f ClustererFunc) Cluster(m *mat.Dense, k int, metric distance.Metric) (Clusters, error) {
	return f(m, k, metric)
}
