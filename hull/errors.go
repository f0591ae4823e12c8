// SPDX-License-Identifier: MIT

package hull

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMatrix is returned for a nil or empty input matrix.
	ErrEmptyMatrix = errors.New("hull: empty matrix")

	// ErrInvalidPointCount is returned when fewer than one point is requested.
	ErrInvalidPointCount = errors.New("hull: number of points must be positive")

	// ErrSeedOutOfRange is returned when a seed index is not a column index.
	ErrSeedOutOfRange = errors.New("hull: seed index out of range")

	// ErrDuplicateSeed is returned when the seed repeats a column.
	ErrDuplicateSeed = errors.New("hull: duplicate seed index")

	// ErrReferenceLength is returned when the reference vector does not
	// match the number of matrix rows.
	ErrReferenceLength = errors.New("hull: reference length mismatch")

	// ErrNoCandidates is returned when the hull must grow but every column
	// is already part of it.
	ErrNoCandidates = errors.New("hull: no candidate points left")

	// ErrPseudoInverse is returned when the SVD behind the pseudo-inverse
	// fails to converge.
	ErrPseudoInverse = errors.New("hull: pseudo-inverse failed")

	// ErrDegenerateProjection is returned by Gnomonic when the reference
	// direction is zero or a column does not lie in its open half-space.
	ErrDegenerateProjection = errors.New("hull: degenerate gnomonic projection")
)

// hullErrorf wraps err with an operation tag.
func hullErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
