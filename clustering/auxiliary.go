// SPDX-License-Identifier: MIT

package clustering

import (
	"github.com/katalvlaran/repperiods/table"
)

// AuxiliaryData is the period bookkeeping of one selection call.
// It is immutable; WithMedoids is the only transition.
type AuxiliaryData struct {
	// KeyColumns are all columns except period and value, timestep included.
	KeyColumns []string

	// PeriodDuration is the number of timesteps of a complete period.
	PeriodDuration int

	// LastPeriodDuration is the number of timesteps of the last period.
	LastPeriodDuration int

	// NPeriods is the number of periods, incomplete last one included.
	NPeriods int

	// Medoids are the base-period column indices chosen by k_medoids or a
	// hull method; nil otherwise.
	Medoids []int
}

// WithMedoids returns a copy of a with the selection indices attached.
func (a AuxiliaryData) WithMedoids(idx []int) AuxiliaryData {
	a.KeyColumns = append([]string(nil), a.KeyColumns...)
	a.Medoids = append([]int(nil), idx...)

	return a
}

// LastPeriodIncomplete reports whether the last period is shorter than the
// others.
func (a AuxiliaryData) LastPeriodIncomplete() bool {
	return a.LastPeriodDuration != a.PeriodDuration
}

// ComputeAuxiliaryData validates the table schema and derives the period
// bookkeeping:
//
//	NPeriods           = max(period)
//	PeriodDuration     = max(timestep)
//	LastPeriodDuration = max(timestep | period == NPeriods)
//
// All periods but the last are assumed to share PeriodDuration.
func ComputeAuxiliaryData(t *table.Table) (AuxiliaryData, error) {
	if t == nil {
		return AuxiliaryData{}, clusteringErrorf("ComputeAuxiliaryData", ErrEmptyTable)
	}
	if err := t.Validate(); err != nil {
		return AuxiliaryData{}, clusteringErrorf("ComputeAuxiliaryData", err)
	}
	if t.Len() == 0 {
		return AuxiliaryData{}, clusteringErrorf("ComputeAuxiliaryData", ErrEmptyTable)
	}

	aux := AuxiliaryData{KeyColumns: t.KeyColumns()}
	for _, r := range t.Rows {
		aux.NPeriods = max(aux.NPeriods, r.Period)
		aux.PeriodDuration = max(aux.PeriodDuration, r.Timestep)
	}
	for _, r := range t.Rows {
		if r.Period == aux.NPeriods {
			aux.LastPeriodDuration = max(aux.LastPeriodDuration, r.Timestep)
		}
	}

	return aux, nil
}

// PeriodWeights returns the Dirac weight of complete periods and, when the
// incomplete last period becomes its own representative, its weight.
//
//   - last period complete:  (1, 0, false)
//   - drop incomplete:       (total/(d·(n−1)), 0, false), total = d·(n−1) + last
//   - keep incomplete:       (1, 1, true)
func PeriodWeights(aux AuxiliaryData, dropIncomplete bool) (complete, incomplete float64, hasIncomplete bool) {
	d, n := aux.PeriodDuration, aux.NPeriods
	switch {
	case !aux.LastPeriodIncomplete():
		return 1, 0, false
	case dropIncomplete:
		total := d*(n-1) + aux.LastPeriodDuration

		return float64(total) / float64(d*(n-1)), 0, false
	default:
		return 1, 1, true
	}
}
