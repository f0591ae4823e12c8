// SPDX-License-Identifier: MIT

package hull

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// pseudoInverse returns the Moore–Penrose pseudo-inverse of a (r×c → c×r)
// from a thin SVD. Singular values below max(r,c)·σ_max·ε are treated as zero.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrPseudoInverse
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	r, c := a.Dims()
	tol := float64(max(r, c)) * s[0] * epsilon
	vr, _ := v.Dims()
	for k, sk := range s {
		inv := 0.0
		if sk > tol {
			inv = 1 / sk
		}
		for i := 0; i < vr; i++ {
			v.Set(i, k, v.At(i, k)*inv)
		}
	}

	var p mat.Dense
	p.Mul(&v, u.T())

	return &p, nil
}

// epsilon is the float64 machine epsilon.
var epsilon = math.Nextafter(1, 2) - 1
