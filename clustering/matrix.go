// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/distance"
	"github.com/katalvlaran/repperiods/table"
)

// selectionContext carries everything the selection stage needs. It is
// built once per FindRepresentativePeriods call and never shared.
type selectionContext struct {
	// matrix is keys×(nInit+nComplete) for hull methods with initial
	// representatives, keys×nComplete otherwise.
	matrix *mat.Dense

	// nInit is the number of leading initial-representative columns of matrix.
	nInit int

	// initial is keys×k for centroid methods with initial representatives.
	initial *mat.Dense

	keys    []table.Key
	dropped []table.Key

	// nRP is the number of complete-period representatives to produce,
	// initial representatives included.
	nRP int

	metric distance.Metric
	opts   Options
}

// base returns the clustering matrix without initial representatives.
func (c *selectionContext) base() *mat.Dense {
	if c.nInit == 0 {
		return c.matrix
	}
	r, cols := c.matrix.Dims()

	return mat.DenseCopyOf(c.matrix.Slice(0, r, c.nInit, cols))
}

// nInitial returns the number of initial representatives, whichever way
// they are carried.
func (c *selectionContext) nInitial() int {
	if c.initial != nil {
		_, k := c.initial.Dims()
		return k
	}

	return c.nInit
}

// initialPeriods checks the initial representatives against the base table
// and returns their period count.
func initialPeriods(init, base *table.Table, aux AuxiliaryData, nRP int) (int, error) {
	if err := init.Validate(); err != nil {
		return 0, err
	}
	if init.Len() == 0 {
		return 0, nil
	}
	if !slices.Equal(init.ExtraKeyColumns(), base.ExtraKeyColumns()) {
		return 0, fmt.Errorf("columns %v vs %v: %w", init.ExtraKeyColumns(), base.ExtraKeyColumns(), ErrInitialKeyMismatch)
	}

	n := 0
	last := make(map[int]int)
	for _, r := range init.Rows {
		n = max(n, r.Period)
		last[r.Period] = max(last[r.Period], r.Timestep)
	}
	for p := 1; p <= n; p++ {
		if last[p] != aux.PeriodDuration {
			return 0, fmt.Errorf("period %d has %d of %d timesteps: %w", p, last[p], aux.PeriodDuration, ErrInitialIncompletePeriod)
		}
	}
	if n > nRP {
		return 0, fmt.Errorf("%d initial for %d representatives: %w", n, nRP, ErrInitialTooMany)
	}

	return n, nil
}

// buildClusteringMatrix pivots the complete periods of t into the
// selection context. Initial representatives are pivoted onto the keys of
// the base matrix and must supply every one of them. Hull methods see them
// as leading columns; centroid methods keep them aside until assembly.
func buildClusteringMatrix(t *table.Table, nComplete int, nRP int, o Options, aux AuxiliaryData) (*selectionContext, error) {
	ctx := &selectionContext{nRP: nRP, metric: o.Metric, opts: o}

	nInit := 0
	if init := o.InitialRepresentatives; init != nil {
		var err error
		if nInit, err = initialPeriods(init, t, aux, nRP); err != nil {
			return nil, err
		}
	}

	complete := t.Filter(func(r table.Row) bool { return r.Period <= nComplete })
	pv, err := complete.Pivot(nComplete)
	if err != nil {
		return nil, err
	}
	if pv.Matrix == nil {
		return nil, ErrEmptyClusteringMatrix
	}
	ctx.matrix, ctx.keys, ctx.dropped = pv.Matrix, pv.Keys, pv.Dropped

	if nInit > 0 {
		ipv, err := o.InitialRepresentatives.PivotOnto(ctx.keys, nInit)
		if err != nil {
			return nil, err
		}
		if len(ipv.Dropped) > 0 {
			return nil, fmt.Errorf("missing key %s: %w", ipv.Dropped[0], ErrInitialKeyMismatch)
		}
		if o.Method.IsHull() {
			ctx.matrix = hcat(ipv.Matrix, ctx.matrix)
			ctx.nInit = nInit
		} else {
			ctx.initial = ipv.Matrix
		}
	}

	for _, k := range ctx.dropped {
		o.Logger.Warn().Str("key", k.String()).Msg("key row dropped: missing value in at least one period")
	}

	return ctx, nil
}
