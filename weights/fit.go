// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/projection"
)

// Weight fitting by projected subgradient descent
//
// Description:
//
//	Each base period p is rebuilt as A·x ≈ c_p from the representative
//	matrix A. The feasible region of x depends on Type:
//	  Convex         : x ≥ 0, Σx = 1      (simplex projection)
//	  Conical        : x ≥ 0              (clip at zero)
//	  ConicalBounded : x ≥ 0, Σx ≤ 1      (simplex over [A | 0], slack dropped)
//
// Algorithm Outline (per row):
//  1. Start from the current row (Dirac assignment or a previous fit).
//  2. projection.Descend on ½‖A·x − c_p‖² with gradient Aᵀ(A·x − c_p),
//     fixed step or AdaGrad, stop when no coordinate moves more than Tol.
//  3. Zero entries below Tol. A convex row never becomes empty.
//  4. Renormalise convex rows, and bounded rows whose sum exceeds one.
//
// Concurrency:
//
//	Rows are independent. An errgroup bounded by Workers fits them in
//	parallel; each goroutine writes only its own row of w.
//
// Complexity:
//
//	Time   = O(P · MaxIter · F · R)
//	Memory = O(F · R) shared + O(F + R) per worker
//
// Errors:
//   - ErrEmptyMatrix        : a nil or empty input matrix.
//   - ErrDimensionMismatch  : w, clustering and rp shapes disagree.
//   - ErrUnsupportedType    : unknown Type.

// Report summarises a Fit run.
type Report struct {
	Rows          int
	Converged     int
	MaxIterations int
	Renormalized  int
}

// Fit refines every row of w (P×R) in place so that rp·w[p,:]ᵀ approximates
// clustering[:, p] within the feasible region of the configured Type.
//
// Per row:
//  1. x ← w[p,:] (augmented with the unexplained mass for ConicalBounded).
//  2. Projected subgradient descent on ½‖A·x − c_p‖², gradient Aᵀ(A·x − c_p).
//  3. Entries below Tol are zeroed; a convex row keeps its largest entry
//     when every entry falls below Tol.
//  4. Convex rows, and ConicalBounded rows whose sum drifted above one, are
//     divided by their sum. Report.Renormalized counts the rows whose sum
//     was more than Tol away from one.
//
// Shapes: w is P×R, clustering is F×P, rp is F×R.
func Fit(w, clustering, rp *mat.Dense, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	for _, m := range []*mat.Dense{w, clustering, rp} {
		if m == nil || m.IsEmpty() {
			return Report{}, fmt.Errorf("Fit: %w", ErrEmptyMatrix)
		}
	}
	p, r := w.Dims()
	f, cp := clustering.Dims()
	fr, rr := rp.Dims()
	if cp != p || rr != r || fr != f {
		return Report{}, fmt.Errorf("Fit: w %dx%d, clustering %dx%d, rp %dx%d: %w", p, r, f, cp, fr, rr, ErrDimensionMismatch)
	}

	fitter, err := newRowFitter(rp, o)
	if err != nil {
		return Report{}, err
	}

	stats := make([]rowStats, p)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for row := 0; row < p; row++ {
		row := row
		g.Go(func() error {
			target := mat.Col(nil, row, clustering)
			x, st := fitter.fit(mat.Row(nil, row, w), target)
			w.SetRow(row, x)
			stats[row] = st

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Rows: p}
	for _, st := range stats {
		if st.Converged {
			rep.Converged++
		}
		if st.Iterations > rep.MaxIterations {
			rep.MaxIterations = st.Iterations
		}
		if st.renormalized {
			rep.Renormalized++
		}
	}
	o.Logger.Debug().
		Str("weight_type", o.Type.String()).
		Int("rows", rep.Rows).
		Int("converged", rep.Converged).
		Int("max_iterations", rep.MaxIterations).
		Int("renormalized", rep.Renormalized).
		Msg("weights fitted")

	return rep, nil
}

type rowStats struct {
	projection.Stats
	renormalized bool
}

// rowFitter holds the read-only state shared by all rows.
type rowFitter struct {
	a       *mat.Dense // rp, or rp with an extra zero column for ConicalBounded
	project projection.Projector
	opts    Options
}

func newRowFitter(rp *mat.Dense, o Options) (*rowFitter, error) {
	rf := &rowFitter{a: rp, opts: o}
	switch o.Type {
	case Convex:
		rf.project = projection.Simplex
	case Conical:
		rf.project = projection.NonNegative
	case ConicalBounded:
		f, r := rp.Dims()
		aug := mat.NewDense(f, r+1, nil)
		aug.Slice(0, f, 0, r).(*mat.Dense).Copy(rp)
		rf.a = aug
		rf.project = projection.Simplex
	default:
		return nil, fmt.Errorf("Fit: %w: %v", ErrUnsupportedType, o.Type)
	}

	return rf, nil
}

func (rf *rowFitter) fit(x0, target []float64) ([]float64, rowStats) {
	_, cols := rf.a.Dims()
	bounded := rf.opts.Type == ConicalBounded
	if bounded {
		slack := 1 - floats.Sum(x0)
		if slack < 0 {
			slack = 0
		}
		x0 = append(x0, slack)
	}

	t := mat.NewVecDense(len(target), target)
	grad := func(x []float64) []float64 {
		var res mat.VecDense
		res.MulVec(rf.a, mat.NewVecDense(cols, x))
		res.SubVec(&res, t)
		var g mat.VecDense
		g.MulVec(rf.a.T(), &res)

		return g.RawVector().Data
	}
	x, st := projection.Descend(x0, grad, rf.project, rf.opts.Descent)
	if bounded {
		x = x[:cols-1]
	}

	truncate(x, rf.opts.Tol, rf.opts.Type == Convex)

	out := rowStats{Stats: st}
	sum := floats.Sum(x)
	if sum > 0 && (rf.opts.Type == Convex || (bounded && sum > 1)) {
		floats.Scale(1/sum, x)
		out.renormalized = math.Abs(sum-1) > rf.opts.Tol
	}

	return x, out
}

// truncate zeroes the entries of x below tol. With keepOne set, a row that
// would become all zero keeps its largest entry (lowest index on ties).
func truncate(x []float64, tol float64, keepOne bool) {
	if len(x) == 0 {
		return
	}
	top := floats.MaxIdx(x)
	keep := x[top]
	for i, xi := range x {
		if xi < tol {
			x[i] = 0
		}
	}
	if keepOne && keep > 0 && floats.Sum(x) == 0 {
		x[top] = keep
	}
}
