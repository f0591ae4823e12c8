// Package clustering reduces a long time series, split into equal-length
// periods, to a small set of representative periods (RPs) and a weight
// matrix that rebuilds every base period from them.
//
// 🚀 Pipeline
//
//	table ─▶ ComputeAuxiliaryData, PeriodWeights
//	      ─▶ clustering matrix (keys × periods)
//	      ─▶ selection: k_means | k_medoids | convex_hull |
//	                    convex_hull_with_null | conical_hull
//	      ─▶ Result (RP table, RP matrix, Dirac weight matrix, metadata)
//	      ─▶ FitRepresentativeWeights (optional blended weights)
//
// ✨ Key features:
//   - pluggable k-means / k-medoids through the Clusterer interface
//   - greedy extreme-point hull search (package hull) in three variants
//   - caller-supplied initial representatives, kept in front of the hull or
//     appended after clustering
//   - incomplete last period either dropped (mass redistributed) or kept as
//     its own representative
//   - convex, conical and bounded-conical weight fitting (package weights)
//
// ⚙️ Usage:
//
//	res, err := clustering.FindRepresentativePeriods(tbl, 10,
//	    clustering.WithMethod(clustering.ConvexHull),
//	    clustering.WithMetric(distance.Euclidean),
//	)
//	if err != nil { ... }
//	_, err = clustering.FitRepresentativeWeights(res, weights.WithType(weights.Convex))
package clustering
