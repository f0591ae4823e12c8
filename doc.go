// Package repperiods selects representative periods from long time series
// and computes the weights that rebuild every original period from them.
//
// 🚀 What is repperiods?
//
//	A small numeric library for time-series aggregation in energy-system and
//	capacity-planning models. A series split into equal-length periods
//	(days, weeks) is reduced to a handful of representative periods (RPs):
//		• Selection: k-means / k-medoids (pluggable), convex hull,
//		  convex hull anchored at zero, conical hull
//		• Weights: Dirac assignment, or fitted convex / conical /
//		  bounded-conical combinations
//		• Distances: Euclidean family, cosine, Chebyshev, DTW
//
// ✨ Key features
//
//   - Deterministic greedy hull search with a distance cache
//   - Condat simplex projection and projected subgradient descent
//   - Parallel per-period weight fitting
//   - Functional options everywhere, YAML config for batch runs
//   - Structured diagnostics through zerolog
//
// Packages:
//
//	clustering/  : FindRepresentativePeriods, FitRepresentativeWeights, Config
//	distance/    : metrics (Euclidean, SqEuclidean, Cosine, DTW, …)
//	hull/        : greedy extreme-point search, gnomonic projection
//	projection/  : simplex projection, projected subgradient descent
//	table/       : long-format observation table and pivoting
//	weights/     : convex / conical / bounded-conical weight fitting
//
// Quick example:
//
//	res, _ := clustering.FindRepresentativePeriods(tbl, 12,
//	    clustering.WithMethod(clustering.ConicalHull))
//	clustering.FitRepresentativeWeights(res, weights.WithType(weights.ConicalBounded))
//
//	go get github.com/katalvlaran/repperiods
package repperiods
