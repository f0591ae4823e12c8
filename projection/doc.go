// Package projection implements the Euclidean projections and the projected
// subgradient descent shared by the hull search and the weight fitter.
//
// What is provided:
//   - Simplex: projection onto {x ≥ 0, Σx = 1} in O(n) expected time
//     (Condat's active-set variant of Michelot's algorithm)
//   - NonNegative: projection onto the non-negative orthant (clip)
//   - Descend: projected subgradient descent with a fixed or AdaGrad step
//
// All functions are deterministic and allocate their results; inputs are
// never mutated.
package projection
