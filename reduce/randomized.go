// SPDX-License-Identifier: MIT

package reduce

import (
	"math/rand"

	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// randomizedSVD approximates the top-d singular triplets of a (r×c).
//
// Implementation:
//   - Stage 1: Ω (c×l) with i.i.d. N(0,1) entries, l = min(d+oversample, min(r,c)).
//   - Stage 2: Q = orth(A·Ω), refined by nIter rounds of Q = orth(A·orth(Aᵀ·Q)).
//   - Stage 3: B = Qᵀ·A (l×c), exact thin SVD B = Ũ·Σ·Vᵀ.
//   - Stage 4: U = Q·Ũ, truncated to d columns.
//
// Complexity: O((nIter+1) * r*c*l).
func randomizedSVD(a *matrix.Dense, d, nIter int, rng *rand.Rand) (*matrix.Dense, []float64, error) {
	if rng == nil {
		return nil, nil, ErrNilRNG
	}
	r, c := a.Shape()
	l := min(d+oversample, min(r, c))

	omega, err := matrix.NewDense(c, l)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < c; i++ {
		for j = 0; j < l; j++ {
			if err = omega.Set(i, j, rng.NormFloat64()); err != nil {
				return nil, nil, err
			}
		}
	}

	y, err := matrix.Mul(a, omega)
	if err != nil {
		return nil, nil, err
	}
	q, err := matrix.QRThin(y)
	if err != nil {
		return nil, nil, err
	}

	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, nil, err
	}
	var z *matrix.Dense
	for it := 0; it < nIter; it++ {
		if z, err = matrix.Mul(at, q); err != nil {
			return nil, nil, err
		}
		if z, err = matrix.QRThin(z); err != nil {
			return nil, nil, err
		}
		if y, err = matrix.Mul(a, z); err != nil {
			return nil, nil, err
		}
		if q, err = matrix.QRThin(y); err != nil {
			return nil, nil, err
		}
	}

	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.Mul(qt, a)
	if err != nil {
		return nil, nil, err
	}
	ub, s, _, err := matrix.ThinSVD(b)
	if err != nil {
		return nil, nil, err
	}
	u, err := matrix.Mul(q, ub)
	if err != nil {
		return nil, nil, err
	}
	ud, err := leadingColumns(u, d)
	if err != nil {
		return nil, nil, err
	}

	return ud, append([]float64(nil), s[:d]...), nil
}
