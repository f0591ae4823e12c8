// Package weights refines a one-hot (Dirac) assignment of base periods to
// representative periods into blended weights.
//
// Each base period p is fitted independently:
//
//	min ‖R·x − C[:, p]‖²  subject to x ∈ feasible set
//
// where C is the clustering matrix (features × periods) and R the
// representative matrix (features × representatives). Feasible sets:
//
//	Convex          x ≥ 0, Σx = 1   (simplex projection)
//	Conical         x ≥ 0           (non-negative clip)
//	ConicalBounded  x ≥ 0, Σx ≤ 1   (simplex on R augmented with a zero column)
//
// Rows are independent, so Fit spreads them over a bounded errgroup worker
// pool; every worker owns exactly one row of the weight matrix at a time.
package weights
