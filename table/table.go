// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Default column names.
const (
	DefaultPeriodColumn   = "period"
	DefaultTimestepColumn = "timestep"
	DefaultValueColumn    = "value"
)

// Layout names the structural columns of a table.
type Layout struct {
	Period   string `yaml:"period"`
	Timestep string `yaml:"timestep"`
	Value    string `yaml:"value"`
}

// DefaultLayout returns period/timestep/value.
func DefaultLayout() Layout {
	return Layout{
		Period:   DefaultPeriodColumn,
		Timestep: DefaultTimestepColumn,
		Value:    DefaultValueColumn,
	}
}

// withDefaults fills empty names from DefaultLayout.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.Period == "" {
		l.Period = d.Period
	}
	if l.Timestep == "" {
		l.Timestep = d.Timestep
	}
	if l.Value == "" {
		l.Value = d.Value
	}

	return l
}

// Row is one observation. Keys is aligned with Table.ExtraKeyColumns.
// A NaN Value marks a missing observation.
type Row struct {
	Period   int
	Timestep int
	Keys     []string
	Value    float64
}

// Table is an in-memory long-format table.
type Table struct {
	Layout  Layout
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given header.
// Empty Layout fields fall back to the defaults.
func New(layout Layout, columns ...string) *Table {
	return &Table{
		Layout:  layout.withDefaults(),
		Columns: append([]string(nil), columns...),
	}
}

// Append adds a row. keys must follow ExtraKeyColumns order.
func (t *Table) Append(period, timestep int, value float64, keys ...string) {
	t.Rows = append(t.Rows, Row{
		Period:   period,
		Timestep: timestep,
		Keys:     append([]string(nil), keys...),
		Value:    value,
	})
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Validate returns a *SchemaError for the first structural column
// (period, timestep, value) missing from the header, and ErrKeyArity or
// ErrInvalidIndex for malformed rows.
func (t *Table) Validate() error {
	if missing := t.MissingColumns(); len(missing) > 0 {
		return &SchemaError{Column: missing[0]}
	}
	n := len(t.ExtraKeyColumns())
	for i, r := range t.Rows {
		if len(r.Keys) != n {
			return fmt.Errorf("row %d: %d keys for %d key columns: %w", i, len(r.Keys), n, ErrKeyArity)
		}
		if r.Period < 1 || r.Timestep < 1 {
			return fmt.Errorf("row %d: period %d timestep %d: %w", i, r.Period, r.Timestep, ErrInvalidIndex)
		}
	}

	return nil
}

// MissingColumns lists the structural columns absent from the header in
// period, timestep, value order.
func (t *Table) MissingColumns() []string {
	var missing []string
	for _, c := range []string{t.Layout.Period, t.Layout.Timestep, t.Layout.Value} {
		if !slices.Contains(t.Columns, c) {
			missing = append(missing, c)
		}
	}

	return missing
}

// KeyColumns returns every column except period and value, in header order.
// The timestep column is part of the key.
func (t *Table) KeyColumns() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c != t.Layout.Period && c != t.Layout.Value {
			out = append(out, c)
		}
	}

	return out
}

// ExtraKeyColumns returns the key columns other than timestep.
func (t *Table) ExtraKeyColumns() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c != t.Layout.Period && c != t.Layout.Value && c != t.Layout.Timestep {
			out = append(out, c)
		}
	}

	return out
}

// Key identifies one feature row of a pivoted matrix.
type Key struct {
	Timestep int
	Values   []string
}

// String renders the key as "timestep|v1|v2".
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(k.Timestep))
	for _, v := range k.Values {
		b.WriteByte('|')
		b.WriteString(v)
	}

	return b.String()
}

// Equal reports whether two keys are identical.
func (k Key) Equal(o Key) bool {
	return k.Timestep == o.Timestep && slices.Equal(k.Values, o.Values)
}

// Filter returns a new table with the same header holding the rows for
// which keep returns true. Rows are shared, not copied.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Layout: t.Layout, Columns: t.Columns}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}

	return out
}
