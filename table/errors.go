// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is matched by every *SchemaError.
	ErrMissingColumn = errors.New("table: missing required column")

	// ErrKeyArity is returned when a row carries a different number of key
	// values than the table has extra key columns.
	ErrKeyArity = errors.New("table: key arity mismatch")

	// ErrDuplicateCell is returned by Pivot when a (key, period) pair occurs
	// more than once.
	ErrDuplicateCell = errors.New("table: duplicate cell")

	// ErrInvalidIndex is returned for non-positive periods or timesteps.
	ErrInvalidIndex = errors.New("table: period and timestep must be positive")
)

// SchemaError names a required column absent from the table header.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table: missing required column %q", e.Column)
}

// Is reports ErrMissingColumn so callers can match without a type assertion.
func (e *SchemaError) Is(target error) bool { return target == ErrMissingColumn }
