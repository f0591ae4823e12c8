// SPDX-License-Identifier: MIT

package clustering

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repperiods/table"
)

// RPRow is one observation of a representative period.
// Keys follows the extra key columns of the input table.
type RPRow struct {
	RepPeriod int
	Timestep  int
	Keys      []string
	Value     float64
}

// Result is the outcome of FindRepresentativePeriods.
type Result struct {
	// RepresentativePeriods is the long-format RP table, rep periods 1..R.
	RepresentativePeriods []RPRow

	// Keys labels the rows of ClusteringMatrix and RPMatrix.
	Keys []table.Key

	// ClusteringMatrix is keys×complete periods.
	ClusteringMatrix *mat.Dense

	// RPMatrix is keys×complete representatives, initial ones included.
	RPMatrix *mat.Dense

	// WeightMatrix is periods×representatives. An incomplete last period
	// that is kept adds one row and one column.
	WeightMatrix *mat.Dense

	Aux    AuxiliaryData
	Method Method

	// DroppedKeys lists key rows left out of the clustering matrix.
	DroppedKeys []table.Key

	// IncompletePeriod reports whether the last row and column of
	// WeightMatrix belong to a short last period.
	IncompletePeriod bool

	layout table.Layout
}

// NRepresentatives returns the number of representative periods.
func (r *Result) NRepresentatives() int {
	_, c := r.WeightMatrix.Dims()
	return c
}

// RepPeriodColumn names the period column of Result.Table.
const RepPeriodColumn = "rep_period"

// Table returns the representative periods in the layout of the input
// table, with the period column renamed to RepPeriodColumn.
func (r *Result) Table() *table.Table {
	l := r.layout
	l.Period = RepPeriodColumn
	cols := append([]string{l.Period}, r.Aux.KeyColumns...)
	out := table.New(l, append(cols, l.Value)...)
	for _, row := range r.RepresentativePeriods {
		out.Append(row.RepPeriod, row.Timestep, row.Value, row.Keys...)
	}

	return out
}

type periodMass struct {
	complete      float64
	incomplete    float64
	hasIncomplete bool
}

// assemble builds the Result from a selection.
func assemble(t *table.Table, ctx *selectionContext, sel selection, aux AuxiliaryData, mass periodMass) *Result {
	base := ctx.base()
	_, nComplete := base.Dims()
	_, nRP := sel.rp.Dims()

	res := &Result{
		Keys:             ctx.keys,
		ClusteringMatrix: base,
		RPMatrix:         sel.rp,
		Aux:              aux,
		Method:           ctx.opts.Method,
		DroppedKeys:      ctx.dropped,
		IncompletePeriod: mass.hasIncomplete,
		layout:           t.Layout,
	}
	if sel.medoids != nil {
		res.Aux = aux.WithMedoids(sel.medoids)
	}

	for rep := 0; rep < nRP; rep++ {
		for i, k := range ctx.keys {
			res.RepresentativePeriods = append(res.RepresentativePeriods, RPRow{
				RepPeriod: rep + 1,
				Timestep:  k.Timestep,
				Keys:      append([]string(nil), k.Values...),
				Value:     sel.rp.At(i, rep),
			})
		}
	}

	rows, cols := nComplete, nRP
	if mass.hasIncomplete {
		rows, cols = rows+1, cols+1
	}
	w := mat.NewDense(rows, cols, nil)
	for p, a := range sel.assignments {
		w.Set(p, a, mass.complete)
	}

	if mass.hasIncomplete {
		w.Set(nComplete, nRP, mass.incomplete)
		kept := make(map[string]struct{}, len(ctx.keys))
		for _, k := range ctx.keys {
			kept[k.String()] = struct{}{}
		}
		for _, r := range t.Rows {
			if r.Period != aux.NPeriods {
				continue
			}
			if _, ok := kept[(table.Key{Timestep: r.Timestep, Values: r.Keys}).String()]; !ok {
				continue
			}
			res.RepresentativePeriods = append(res.RepresentativePeriods, RPRow{
				RepPeriod: nRP + 1,
				Timestep:  r.Timestep,
				Keys:      append([]string(nil), r.Keys...),
				Value:     r.Value,
			})
		}
	}
	res.WeightMatrix = w

	return res
}
