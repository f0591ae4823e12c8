// SPDX-License-Identifier: MIT

package projection

// Projector maps a point onto a closed convex feasible set.
type Projector func(y []float64) []float64

// Simplex returns the Euclidean projection of y onto the probability simplex
// {x : x ≥ 0, Σx = 1}.
//
// Algorithm (single pass + clean-up, Condat 2016):
//  1. Keep a working set v of coordinates expected to stay positive and the
//     running threshold ρ = (Σv − 1)/|v|. Coordinates above ρ join v; when a
//     newcomer alone beats the whole set, v restarts from it and the old
//     members are parked in ṽ.
//  2. Re-sweep ṽ, re-admitting parked coordinates still above ρ.
//  3. Evict members of v that are ≤ ρ, updating ρ, until no eviction occurs.
//  4. x = max(y − ρ, 0).
//
// A length-1 input returns [1]; an empty input returns an empty slice.
// Complexity: O(n) typical, O(n²) worst case; O(n) memory.
func Simplex(y []float64) []float64 {
	n := len(y)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = 1

		return out
	}

	rho := simplexThreshold(y)
	for i, yi := range y {
		if d := yi - rho; d > 0 {
			out[i] = d
		}
	}

	return out
}

// simplexThreshold computes ρ such that Σ max(y−ρ, 0) = 1.
func simplexThreshold(y []float64) float64 {
	v := make([]float64, 0, len(y))
	var parked []float64

	// Stage 1: one pass over y.
	v = append(v, y[0])
	rho := y[0] - 1
	for _, yi := range y[1:] {
		if yi <= rho {
			continue
		}
		rho += (yi - rho) / float64(len(v)+1)
		if rho > yi-1 {
			v = append(v, yi)
			continue
		}
		parked = append(parked, v...)
		v = append(v[:0], yi)
		rho = yi - 1
	}

	// Stage 2: re-admit parked coordinates.
	for _, yi := range parked {
		if yi > rho {
			v = append(v, yi)
			rho += (yi - rho) / float64(len(v))
		}
	}

	// Stage 3: evict to a fixed point.
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(v); {
			if v[i] > rho {
				i++
				continue
			}
			yi := v[i]
			v = append(v[:i], v[i+1:]...)
			rho += (rho - yi) / float64(len(v))
			changed = true
		}
	}

	return rho
}

// NonNegative returns y clipped elementwise to [0, +∞).
func NonNegative(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, yi := range y {
		if yi > 0 {
			out[i] = yi
		}
	}

	return out
}
