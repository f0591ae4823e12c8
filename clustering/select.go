// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/hull"
)

// Representative selection strategies
//
// Description:
//
//	Every Method maps to one selector. A selector receives the
//	selectionContext (clustering matrix, initial representatives, n_rp,
//	metric, options) and returns a uniform selection: the RP matrix, the
//	base-period assignments and, where defined, the medoid indices.
//
// Strategies:
//   - k_means / k_medoids : delegate k = n_rp − n_init clusters to the
//     Clusterer, validate its output, append initial representatives.
//   - convex_hull         : hull.Search seeded with the initial columns.
//   - convex_hull_with_null : prepend a zero column, seed {0} ∪ initial,
//     search n_rp+1 points, drop the zero column again.
//   - conical_hull        : hull.Gnomonic, search the projected columns,
//     take RP columns from the original matrix. Zero columns are skipped
//     and only used to fill up when the projected columns run out.
//
// Assignment:
//
//	Hull strategies assign each base period to the nearest RP column
//	(NaN never wins, lowest index on ties).
//
// Complexity:
//
//	Hull strategies: that of hull.Search plus O(P·R·F) for the assignment.
//	Centroid strategies: that of the Clusterer plus O(F·R) copying.
//
// Errors:
//   - ErrUnsupportedMethod     : unknown Method.
//   - ErrNoClusterer           : k_means / k_medoids without a Clusterer.
//   - ErrClustererOutput       : inconsistent Clusterer result.
//   - ErrUndefinedNullDistance : NaN/Inf distance to the zero vector.
//   - hull errors              : propagated from Search and Gnomonic.

// selection is the uniform output of every strategy.
type selection struct {
	// rp is keys×nRP; initial representatives included.
	rp *mat.Dense

	// assignments maps each base period to an rp column.
	assignments []int

	// medoids are base-period indices, nil for k_means.
	medoids []int
}

type selector interface {
	selectRepresentatives(ctx *selectionContext) (selection, error)
}

func selectorFor(m Method) (selector, error) {
	switch m {
	case KMeans:
		return centroidSelector{}, nil
	case KMedoids:
		return centroidSelector{medoids: true}, nil
	case ConvexHull:
		return convexHullSelector{}, nil
	case ConvexHullWithNull:
		return nullHullSelector{}, nil
	case ConicalHull:
		return conicalHullSelector{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, m)
	}
}

// centroidSelector delegates to the Clusterer and appends the initial
// representatives after the clustered ones.
type centroidSelector struct {
	medoids bool
}

func (s centroidSelector) selectRepresentatives(ctx *selectionContext) (selection, error) {
	base := ctx.base()
	k := ctx.nRP - ctx.nInitial()

	var sel selection
	if k > 0 {
		if ctx.opts.Clusterer == nil {
			return selection{}, ErrNoClusterer
		}
		cl, err := ctx.opts.Clusterer.Cluster(base, k, ctx.metric)
		if err != nil {
			return selection{}, err
		}
		centers, err := s.checkClusters(cl, base, k)
		if err != nil {
			return selection{}, err
		}
		sel.rp = centers
		sel.assignments = append([]int(nil), cl.Assignments...)
		if s.medoids {
			sel.medoids = append([]int(nil), cl.Medoids...)
		}
	}

	if ctx.initial == nil {
		return sel, nil
	}
	if sel.rp == nil {
		// every representative is an initial one
		sel.rp = mat.DenseCopyOf(ctx.initial)
		sel.assignments = nearest(base, sel.rp, ctx)
		if s.medoids {
			sel.medoids = []int{}
		}

		return sel, nil
	}
	sel.rp = hcat(sel.rp, ctx.initial)

	return sel, nil
}

// checkClusters validates the Clusterer output and returns the centers.
func (s centroidSelector) checkClusters(cl Clusters, base *mat.Dense, k int) (*mat.Dense, error) {
	f, p := base.Dims()
	if len(cl.Assignments) != p {
		return nil, fmt.Errorf("%d assignments for %d periods: %w", len(cl.Assignments), p, ErrClustererOutput)
	}
	for _, a := range cl.Assignments {
		if a < 0 || a >= k {
			return nil, fmt.Errorf("assignment %d outside [0,%d): %w", a, k, ErrClustererOutput)
		}
	}
	if s.medoids {
		if len(cl.Medoids) != k {
			return nil, fmt.Errorf("%d medoids for k=%d: %w", len(cl.Medoids), k, ErrClustererOutput)
		}
		for _, m := range cl.Medoids {
			if m < 0 || m >= p {
				return nil, fmt.Errorf("medoid %d outside [0,%d): %w", m, p, ErrClustererOutput)
			}
		}
		if cl.Centers == nil {
			return columns(base, cl.Medoids), nil
		}
	}
	if cl.Centers == nil {
		return nil, fmt.Errorf("no centers: %w", ErrClustererOutput)
	}
	if r, c := cl.Centers.Dims(); r != f || c != k {
		return nil, fmt.Errorf("centers %dx%d, want %dx%d: %w", r, c, f, k, ErrClustererOutput)
	}

	return mat.DenseCopyOf(cl.Centers), nil
}

// convexHullSelector picks extreme periods of the convex hull, initial
// representatives first.
type convexHullSelector struct{}

func (convexHullSelector) selectRepresentatives(ctx *selectionContext) (selection, error) {
	idx, err := hull.Search(ctx.matrix, ctx.nRP, ctx.metric, ctx.opts.hullOptions(prefix(0, ctx.nInit))...)
	if err != nil {
		return selection{}, err
	}

	return hullSelection(ctx, ctx.matrix, idx), nil
}

// nullHullSelector anchors the hull at the zero vector, which is added as
// an extra leading column and removed again after the search.
type nullHullSelector struct{}

func (nullHullSelector) selectRepresentatives(ctx *selectionContext) (selection, error) {
	f, c := ctx.matrix.Dims()
	zero := make([]float64, f)
	col := make([]float64, f)
	for j := 0; j < c; j++ {
		mat.Col(col, j, ctx.matrix)
		if d := ctx.metric.Between(zero, col); math.IsNaN(d) || math.IsInf(d, 0) {
			return selection{}, fmt.Errorf("column %d: %w", j, ErrUndefinedNullDistance)
		}
	}

	aug := mat.NewDense(f, c+1, nil)
	aug.Slice(0, f, 1, c+1).(*mat.Dense).Copy(ctx.matrix)

	idx, err := hull.Search(aug, ctx.nRP+1, ctx.metric, ctx.opts.hullOptions(prefix(0, ctx.nInit+1))...)
	if err != nil {
		return selection{}, err
	}
	shifted := make([]int, 0, ctx.nRP)
	for _, i := range idx[1:] {
		shifted = append(shifted, i-1)
	}

	return hullSelection(ctx, ctx.matrix, shifted), nil
}

// conicalHullSelector searches for extreme rays on the gnomonic projection
// and takes the representatives from the original columns.
//
// All-zero columns are not projected. A zero initial representative is kept
// as is; zero base periods are only chosen when the projected columns run out.
type conicalHullSelector struct{}

func (conicalHullSelector) selectRepresentatives(ctx *selectionContext) (selection, error) {
	proj, kept, err := hull.Gnomonic(ctx.matrix)
	if err != nil {
		return selection{}, err
	}
	pos := make(map[int]int, len(kept))
	for k, j := range kept {
		pos[j] = k
	}

	var seed, zeroInit []int
	for i := 0; i < ctx.nInit; i++ {
		if k, ok := pos[i]; ok {
			seed = append(seed, k)
		} else {
			zeroInit = append(zeroInit, i)
		}
	}

	idx := prefix(0, ctx.nInit)
	if n := min(ctx.nRP-len(zeroInit), len(kept)); n > 0 {
		found, err := hull.Search(proj, n, ctx.metric, ctx.opts.hullOptions(seed)...)
		if err != nil {
			return selection{}, err
		}
		for _, k := range found {
			if kept[k] >= ctx.nInit {
				idx = append(idx, kept[k])
			}
		}
	}

	_, c := ctx.matrix.Dims()
	for j := ctx.nInit; j < c && len(idx) < ctx.nRP; j++ {
		if _, ok := pos[j]; !ok {
			idx = append(idx, j)
		}
	}

	return hullSelection(ctx, ctx.matrix, idx), nil
}

// hullSelection turns hull indices of m into a selection. Indices below
// ctx.nInit are initial representatives and are not reported as medoids.
func hullSelection(ctx *selectionContext, m *mat.Dense, idx []int) selection {
	sel := selection{rp: columns(m, idx), medoids: []int{}}
	for _, i := range idx {
		if i >= ctx.nInit {
			sel.medoids = append(sel.medoids, i-ctx.nInit)
		}
	}
	sel.assignments = nearest(ctx.base(), sel.rp, ctx)

	return sel
}

// nearest assigns each column of m to the closest column of rp.
// NaN distances never win; ties go to the lowest index.
func nearest(m, rp *mat.Dense, ctx *selectionContext) []int {
	f, p := m.Dims()
	_, r := rp.Dims()
	reps := make([][]float64, r)
	for k := range reps {
		reps[k] = mat.Col(nil, k, rp)
	}

	out := make([]int, p)
	col := make([]float64, f)
	for j := 0; j < p; j++ {
		mat.Col(col, j, m)
		best, bestD := 0, math.Inf(1)
		for k, rep := range reps {
			if d := ctx.metric.Between(col, rep); d < bestD {
				best, bestD = k, d
			}
		}
		out[j] = best
	}

	return out
}

// columns gathers the listed columns of m into a new matrix.
func columns(m *mat.Dense, idx []int) *mat.Dense {
	f, _ := m.Dims()
	out := mat.NewDense(f, len(idx), nil)
	for k, j := range idx {
		out.SetCol(k, mat.Col(nil, j, m))
	}

	return out
}

// hcat returns [a | b].
func hcat(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Augment(a, b)

	return &out
}

// prefix returns [from, to).
func prefix(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}
