// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
)

// DTWOptions configures the Dynamic Time Warping metric.
//
// Fields:
//   - Window       : Sakoe–Chiba band: maximum deviation |i−j| allowed.
//     A value ≤ 0 means no windowing constraint.
//   - SlopePenalty : extra cost for insertion/deletion steps (locality bias).
type DTWOptions struct {
	Window       int
	SlopePenalty float64
}

// NewDTW returns a DTW metric with the given band and slope penalty.
// DTW is not HullCacheSafe: warping breaks the hull-distance bound.
func NewDTW(opts DTWOptions) Metric {
	return Metric{
		Name: fmt.Sprintf("dtw(window=%d,penalty=%g)", opts.Window, opts.SlopePenalty),
		Func: func(a, b []float64) float64 { return warp(a, b, opts) },
	}
}

func dtwDistance(a, b []float64) float64 { return warp(a, b, DTWOptions{}) }

// warp computes the DTW distance between a and b.
//
// Algorithm (rolling array, O(min-row) memory):
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. D[i][j] = |a[i−1] − b[j−1]| + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1]),
//     skipped (+∞) outside the band |i−j| ≤ Window.
//  3. distance = D[n][m].
//
// Empty input is undefined and yields NaN.
// Complexity: O(n·m) time, O(m) memory.
func warp(a, b []float64, opts DTWOptions) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return math.NaN()
	}

	window := math.MaxInt32
	if opts.Window > 0 {
		window = opts.Window
	}
	penalty := opts.SlopePenalty
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			ins := prev[j] + penalty
			del := curr[j-1] + penalty
			match := prev[j-1]
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}

	return c
}
