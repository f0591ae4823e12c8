// SPDX-License-Identifier: MIT

package hull

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/distance"
	"github.com/katalvlaran/repperiods/projection"
)

// Search returns nPoints column indices of m chosen greedily as extreme
// points of the columns' convex hull.
//
// Seeding:
//   - with WithSeed, the seed prefix is kept verbatim;
//   - otherwise the first point is the column farthest from the reference
//     (WithReference, or the column mean).
//
// If the seed already holds nPoints or more indices, its first nPoints are
// returned unchanged.
//
// Main loop, until the hull holds nPoints columns:
//  1. H = m[:, hull]; H⁺ = pinv(H).
//  2. For every column j outside the hull:
//     - with the cache shortcut on, skip j when d(m_j, m_last) ≥ cache[j];
//     - otherwise solve min ‖Hx − m_j‖² over the simplex, warm-started from
//     H⁺m_j, and store d(Hx, m_j) in cache[j].
//  3. Append the column with the largest cached distance (lowest index on ties).
//
// Errors: ErrEmptyMatrix, ErrInvalidPointCount, ErrSeedOutOfRange,
// ErrDuplicateSeed, ErrReferenceLength, ErrNoCandidates, ErrPseudoInverse.
//
// Complexity: O(n·P·(F·h + iters·F·h)) for n points, P columns, F rows.
func Search(m *mat.Dense, nPoints int, metric distance.Metric, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)

	if m == nil || m.IsEmpty() {
		return nil, hullErrorf("Search", ErrEmptyMatrix)
	}
	if nPoints < 1 {
		return nil, hullErrorf("Search", ErrInvalidPointCount)
	}
	rows, cols := m.Dims()
	if err := validateSeed(o.Seed, cols); err != nil {
		return nil, hullErrorf("Search", err)
	}

	columns := splitColumns(m)

	seed := o.Seed
	if len(seed) == 0 {
		ref := o.Reference
		if ref == nil {
			ref = columnMean(m)
		}
		if len(ref) != rows {
			return nil, hullErrorf("Search", ErrReferenceLength)
		}
		seed = []int{farthestFrom(ref, columns, metric)}
	}
	if len(seed) >= nPoints {
		return append([]int(nil), seed[:nPoints]...), nil
	}

	s := &searcher{
		columns: columns,
		metric:  metric,
		opts:    o,
		inHull:  make([]bool, cols),
		cache:   make([]float64, cols),
		hull:    make([]int, 0, nPoints),
	}
	for j := range s.cache {
		s.cache[j] = math.Inf(1) // unknown
	}
	for _, idx := range seed {
		s.add(idx)
	}

	for len(s.hull) < nPoints {
		next, err := s.step()
		if err != nil {
			return nil, hullErrorf("Search", err)
		}
		s.add(next)
	}

	return s.hull, nil
}

// searcher is the exclusively-owned state of one Search call.
type searcher struct {
	columns [][]float64
	metric  distance.Metric
	opts    Options

	hull   []int
	inHull []bool

	// cache[j] is an upper estimate of the distance from column j to the
	// current hull; +Inf until first computed. Values never increase.
	cache []float64
}

func (s *searcher) add(idx int) {
	s.hull = append(s.hull, idx)
	s.inHull[idx] = true
}

// step evaluates every candidate against the current hull and returns the
// index of the farthest one.
func (s *searcher) step() (int, error) {
	rows := len(s.columns[0])
	h := mat.NewDense(rows, len(s.hull), nil)
	for k, idx := range s.hull {
		h.SetCol(k, s.columns[idx])
	}
	pinv, err := pseudoInverse(h)
	if err != nil {
		return 0, err
	}
	last := s.columns[s.hull[len(s.hull)-1]]

	var recomputed, reused int
	for j, col := range s.columns {
		if s.inHull[j] {
			continue
		}
		if s.opts.CacheShortcut && s.metric.Between(col, last) >= s.cache[j] {
			reused++
			continue
		}
		d := s.distanceToHull(h, pinv, col)
		if d < s.cache[j] || math.IsInf(s.cache[j], 1) || math.IsNaN(s.cache[j]) {
			s.cache[j] = d
		}
		recomputed++
	}

	best, bestD := -1, math.Inf(-1)
	for j := range s.columns {
		if s.inHull[j] {
			continue
		}
		d := s.cache[j]
		if math.IsNaN(d) {
			d = math.Inf(-1)
		}
		if best == -1 || d > bestD {
			best, bestD = j, d
		}
	}
	if best == -1 {
		return 0, ErrNoCandidates
	}

	s.opts.Logger.Debug().
		Int("point", best).
		Float64("distance", bestD).
		Int("hull_size", len(s.hull)+1).
		Int("recomputed", recomputed).
		Int("reused", reused).
		Msg("hull extended")

	return best, nil
}

// distanceToHull projects target onto conv(H) and returns d(Hx, target).
func (s *searcher) distanceToHull(h, pinv *mat.Dense, target []float64) float64 {
	t := mat.NewVecDense(len(target), target)

	var x0 mat.VecDense
	x0.MulVec(pinv, t)

	grad := func(x []float64) []float64 {
		var r mat.VecDense
		r.MulVec(h, mat.NewVecDense(len(x), x))
		r.SubVec(&r, t)
		var g mat.VecDense
		g.MulVec(h.T(), &r)

		return g.RawVector().Data
	}
	x, _ := projection.Descend(x0.RawVector().Data, grad, projection.Simplex, s.opts.Descent)

	var proj mat.VecDense
	proj.MulVec(h, mat.NewVecDense(len(x), x))

	return s.metric.Between(proj.RawVector().Data, target)
}

// farthestFrom returns the column index maximising d(ref, column).
// NaN distances never win; column 0 is the fallback.
func farthestFrom(ref []float64, columns [][]float64, metric distance.Metric) int {
	best, bestD := 0, math.Inf(-1)
	for j, col := range columns {
		if d := metric.Between(ref, col); d > bestD {
			best, bestD = j, d
		}
	}

	return best
}

func validateSeed(seed []int, cols int) error {
	seen := make(map[int]struct{}, len(seed))
	for _, idx := range seed {
		if idx < 0 || idx >= cols {
			return ErrSeedOutOfRange
		}
		if _, dup := seen[idx]; dup {
			return ErrDuplicateSeed
		}
		seen[idx] = struct{}{}
	}

	return nil
}

// splitColumns copies the columns of m into independent slices.
func splitColumns(m *mat.Dense) [][]float64 {
	_, c := m.Dims()
	out := make([][]float64, c)
	for j := range out {
		out[j] = mat.Col(nil, j, m)
	}

	return out
}
