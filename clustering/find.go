// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"

	"github.com/katalvlaran/repperiods/table"
)

// Representative period pipeline
//
// Algorithm Outline:
//  1. ComputeAuxiliaryData validates the schema and derives NPeriods,
//     PeriodDuration and LastPeriodDuration.
//  2. PeriodWeights fixes the Dirac weight of complete periods and decides
//     whether a short last period is dropped or kept as its own RP.
//  3. The n_rp guard runs before any matrix is built.
//  4. buildClusteringMatrix pivots complete periods (keys × periods) and
//     aligns initial representatives with the retained keys.
//  5. The Method's selector picks the representatives.
//  6. assemble builds the RP rows, the RP matrix and the weight matrix.
//
// Complexity:
//
//	Pivot: O(rows). Selection: see select.go. Assembly: O(F·R + P).
//
// Errors:
//   - table.SchemaError / table.ErrMissingColumn, ErrEmptyTable
//   - ErrInvalidRPCount
//   - ErrEmptyClusteringMatrix, table.ErrDuplicateCell
//   - ErrInitialKeyMismatch, ErrInitialIncompletePeriod, ErrInitialTooMany
//   - selection errors, see select.go

// FindRepresentativePeriods selects nRP representative periods of t.
//
// Steps:
//  1. ComputeAuxiliaryData and PeriodWeights.
//  2. Guard 1 ≤ nRP ≤ NPeriods. A short last period that is kept becomes
//     its own representative, so nRP−1 are selected from the complete ones.
//  3. Pivot the complete periods into a keys×periods clustering matrix,
//     dropping keys with missing values.
//  4. Run the strategy of the configured Method.
//  5. Assemble the representative table, RP matrix and Dirac weights.
//
// Errors are wrapped with the operation name; match them with errors.Is
// against this package's sentinels, table.ErrMissingColumn and the hull
// sentinels.
func FindRepresentativePeriods(t *table.Table, nRP int, opts ...Option) (*Result, error) {
	const op = "FindRepresentativePeriods"
	o := gatherOptions(opts...)

	aux, err := ComputeAuxiliaryData(t)
	if err != nil {
		return nil, clusteringErrorf(op, err)
	}
	if nRP < 1 || nRP > aux.NPeriods {
		return nil, clusteringErrorf(op, fmt.Errorf("%d of %d periods: %w", nRP, aux.NPeriods, ErrInvalidRPCount))
	}

	strategy, err := selectorFor(o.Method)
	if err != nil {
		return nil, clusteringErrorf(op, err)
	}

	completeW, incompleteW, hasIncomplete := PeriodWeights(aux, o.DropIncompleteLastPeriod)
	nComplete := aux.NPeriods
	if aux.LastPeriodIncomplete() {
		nComplete--
	}
	nSelect := nRP
	if hasIncomplete {
		nSelect--
	}
	if nSelect < 1 || nSelect > nComplete {
		return nil, clusteringErrorf(op, fmt.Errorf("%d of %d complete periods: %w", nSelect, nComplete, ErrInvalidRPCount))
	}

	ctx, err := buildClusteringMatrix(t, nComplete, nSelect, o, aux)
	if err != nil {
		return nil, clusteringErrorf(op, err)
	}

	sel, err := strategy.selectRepresentatives(ctx)
	if err != nil {
		return nil, clusteringErrorf(op, err)
	}

	res := assemble(t, ctx, sel, aux, periodMass{
		complete:      completeW,
		incomplete:    incompleteW,
		hasIncomplete: hasIncomplete,
	})

	o.Logger.Debug().
		Str("method", o.Method.String()).
		Str("metric", o.Metric.String()).
		Int("periods", aux.NPeriods).
		Int("representatives", res.NRepresentatives()).
		Int("keys", len(res.Keys)).
		Int("dropped_keys", len(res.DroppedKeys)).
		Bool("incomplete_period", hasIncomplete).
		Msg("representative periods selected")

	return res, nil
}
