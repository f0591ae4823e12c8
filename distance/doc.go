// Package distance supplies the pluggable distance functions used to compare
// period profiles during representative-period selection.
//
// 🚀 What is a distance here?
//
//	Every base period is a column vector (one entry per timestep × key).
//	Clustering, hull search and nearest-representative assignment compare
//	such columns through a binary semimetric d(a, b) ≥ 0.
//
// ✨ Key features:
//   - Func: any func(a, b []float64) float64 is accepted
//   - Metric: a named Func plus the properties the hull search relies on
//   - catalogue: Euclidean, SqEuclidean, Cityblock, Chebyshev, Cosine, DTW
//   - Lookup: resolve a metric by its configuration name
//
// Undefined distances (e.g. cosine against a zero vector) are reported as
// NaN rather than an error; callers that need a defined value check for it.
//
// ⚙️ Usage:
//
//	m, err := distance.Lookup("euclidean")
//	d := m.Between(a, b)
package distance
