// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"
	"strings"
)

// Method selects how representative periods are found.
type Method int

const (
	// KMeans delegates to a Clusterer and uses cluster centroids.
	KMeans Method = iota

	// KMedoids delegates to a Clusterer and uses medoid periods.
	KMedoids

	// ConvexHull picks extreme periods of the convex hull.
	ConvexHull

	// ConvexHullWithNull anchors the convex hull at the zero vector.
	ConvexHullWithNull

	// ConicalHull picks extreme rays after a gnomonic projection.
	ConicalHull
)

var methodNames = [...]string{
	KMeans:             "k_means",
	KMedoids:           "k_medoids",
	ConvexHull:         "convex_hull",
	ConvexHullWithNull: "convex_hull_with_null",
	ConicalHull:        "conical_hull",
}

// String returns the configuration name of m.
func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// IsHull reports whether m is one of the hull variants.
func (m Method) IsHull() bool {
	return m == ConvexHull || m == ConvexHullWithNull || m == ConicalHull
}

func (m Method) valid() bool { return m >= 0 && int(m) < len(methodNames) }

// ParseMethod resolves a method from its configuration name.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMethod, int(m))
	}

	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}
