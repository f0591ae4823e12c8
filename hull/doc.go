// Package hull finds extreme columns of a matrix with a greedy farthest-point
// search over the convex hull of the points selected so far.
//
// 🚀 What does it solve?
//
//	Exact extreme-point enumeration is intractable in high dimension. Search
//	grows the hull one column at a time, always adding the column that is
//	worst explained by a convex combination of the current hull. The chosen
//	columns are the representatives a downstream blend can rely on as
//	binding extremes.
//
// ✨ Key features:
//   - seeding from a caller prefix, or from the column farthest from a
//     reference (default: the column mean)
//   - point-to-hull distance via projected subgradient descent on the
//     simplex, warm-started from the pseudo-inverse (gonum SVD)
//   - optional distance cache shortcut for Euclidean-like metrics
//   - Gnomonic projection to turn a conical hull problem into a convex one
//
// ⚙️ Usage:
//
//	idx, err := hull.Search(m, 4, distance.Euclidean,
//	    hull.WithSeed([]int{0}),
//	    hull.WithCacheShortcut(true),
//	)
//
// Determinism: ties are broken by the lowest column index.
package hull
