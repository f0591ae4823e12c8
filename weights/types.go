// SPDX-License-Identifier: MIT

package weights

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedType is returned for an unknown weight type name.
	ErrUnsupportedType = errors.New("weights: unsupported weight type")

	// ErrDimensionMismatch is returned when the weight, clustering and
	// representative matrices do not agree on their shapes.
	ErrDimensionMismatch = errors.New("weights: dimension mismatch")

	// ErrEmptyMatrix is returned for nil or empty matrices.
	ErrEmptyMatrix = errors.New("weights: empty matrix")
)

// Type selects the feasible region of a fitted weight row.
type Type int

const (
	// Convex rows are non-negative and sum to one.
	Convex Type = iota

	// Conical rows are non-negative with an unconstrained sum.
	Conical

	// ConicalBounded rows are non-negative and sum to at most one.
	ConicalBounded
)

var typeNames = [...]string{
	Convex:         "convex",
	Conical:        "conical",
	ConicalBounded: "conical_bounded",
}

// String returns the configuration name of t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// ParseType resolves a weight type from its configuration name.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(t))
	}

	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}
