// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when the observation table has no rows.
	ErrEmptyTable = errors.New("clustering: empty table")

	// ErrInvalidRPCount is returned when the number of representatives is
	// outside [1, number of periods].
	ErrInvalidRPCount = errors.New("clustering: invalid number of representative periods")

	// ErrUnsupportedMethod is returned for an unknown selection method.
	ErrUnsupportedMethod = errors.New("clustering: unsupported method")

	// ErrNoClusterer is returned when k_means or k_medoids is requested
	// without a Clusterer plug-in.
	ErrNoClusterer = errors.New("clustering: no clusterer configured")

	// ErrClustererOutput is returned when a Clusterer returns centers,
	// assignments or medoids inconsistent with the request.
	ErrClustererOutput = errors.New("clustering: inconsistent clusterer output")

	// ErrUndefinedNullDistance is returned by convex_hull_with_null when the
	// distance between the zero vector and a period is undefined.
	ErrUndefinedNullDistance = errors.New("clustering: distance to the null vector is undefined")

	// ErrEmptyClusteringMatrix is returned when every key row was dropped
	// while building the clustering matrix.
	ErrEmptyClusteringMatrix = errors.New("clustering: empty clustering matrix")

	// ErrInitialKeyMismatch is returned when initial representatives do not
	// share the key columns (or key values) of the observation table.
	ErrInitialKeyMismatch = errors.New("clustering: initial representatives key mismatch")

	// ErrInitialIncompletePeriod is returned when an initial representative
	// is shorter than the period duration.
	ErrInitialIncompletePeriod = errors.New("clustering: initial representatives contain an incomplete period")

	// ErrInitialTooMany is returned when the requested number of
	// representatives cannot host all initial representatives.
	ErrInitialTooMany = errors.New("clustering: too many initial representatives")

	// ErrNilResult is returned by FitRepresentativeWeights for a nil result.
	ErrNilResult = errors.New("clustering: nil result")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("clustering: invalid config")
)

// clusteringErrorf wraps err with an operation tag.
func clusteringErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
