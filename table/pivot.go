// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Pivoted is the wide form of a table.
type Pivoted struct {
	// Matrix is keys×periods; nil when every key was dropped.
	Matrix *mat.Dense

	// Keys is in strict row correspondence with Matrix.
	Keys []Key

	// Dropped lists key tuples removed because at least one period had no
	// (or a NaN) value.
	Dropped []Key
}

// Pivot spreads the table into a matrix with one row per distinct key tuple
// (first-appearance order) and one column per period 1..periods. Rows whose
// period exceeds periods are ignored.
func (t *Table) Pivot(periods int) (*Pivoted, error) {
	return t.pivot(nil, periods)
}

// PivotOnto is Pivot with a fixed row order: the result rows follow keys.
// Table rows whose key is not listed are ignored; listed keys without a
// complete set of values are dropped.
func (t *Table) PivotOnto(keys []Key, periods int) (*Pivoted, error) {
	if keys == nil {
		keys = []Key{}
	}

	return t.pivot(keys, periods)
}

func (t *Table) pivot(fixed []Key, periods int) (*Pivoted, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if periods < 1 {
		return nil, fmt.Errorf("Pivot: %d periods: %w", periods, ErrInvalidIndex)
	}

	var (
		index = make(map[string]int)
		keys  []Key
		grid  [][]float64
		seen  [][]bool
	)
	addKey := func(k Key) int {
		i := len(keys)
		index[mapKey(k.Timestep, k.Values)] = i
		keys = append(keys, Key{Timestep: k.Timestep, Values: append([]string(nil), k.Values...)})
		grid = append(grid, nanRow(periods))
		seen = append(seen, make([]bool, periods))

		return i
	}
	for _, k := range fixed {
		addKey(k)
	}

	for _, r := range t.Rows {
		if r.Period > periods {
			continue
		}
		i, ok := index[mapKey(r.Timestep, r.Keys)]
		if !ok {
			if fixed != nil {
				continue
			}
			i = addKey(Key{Timestep: r.Timestep, Values: r.Keys})
		}
		p := r.Period - 1
		if seen[i][p] {
			return nil, fmt.Errorf("Pivot: key %s period %d: %w", keys[i], r.Period, ErrDuplicateCell)
		}
		seen[i][p] = true
		grid[i][p] = r.Value
	}

	out := &Pivoted{}
	var data []float64
	for i, row := range grid {
		if hasNaN(row) {
			out.Dropped = append(out.Dropped, keys[i])
			continue
		}
		out.Keys = append(out.Keys, keys[i])
		data = append(data, row...)
	}
	if len(out.Keys) > 0 {
		out.Matrix = mat.NewDense(len(out.Keys), periods, data)
	}

	return out, nil
}

func mapKey(timestep int, values []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(timestep))
	for _, v := range values {
		b.WriteByte(0x1f)
		b.WriteString(v)
	}

	return b.String()
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}

	return row
}

func hasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
