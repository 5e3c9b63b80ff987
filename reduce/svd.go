// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// symmetryTol is the tolerance used when Truncated checks its input.
const symmetryTol = 1e-10

// signTieTol is the relative gap under which column entries tie in flipSigns.
const signTieTol = 1e-6

// SelectSVD computes the scaled left singular vectors of m.
//
// Contract:
//   - d > 0 keeps the top d singular triplets; d ≤ 0 selects d from the
//     full spectrum with SelectDimension(σ, DefaultElbows), using the last elbow.
//   - Returns U (r×d) scaled column-wise by √σ and σ (length d, descending).
//   - nIter is the number of power iterations for Randomized; ignored otherwise.
//   - rng is consumed only by Randomized.
//
// Errors:
//   - matrix sentinels for nil/empty input, ErrInvalidComponents,
//     ErrInvalidIterations, ErrUnknownAlgorithm, ErrNilRNG,
//     matrix.ErrAsymmetry (Truncated on a non-symmetric input).
func SelectSVD(m matrix.Matrix, d int, alg Algorithm, nIter int, rng *rand.Rand) (*matrix.Dense, []float64, error) {
	return SelectSVDElbows(m, d, DefaultElbows, alg, nIter, rng)
}

// SelectSVDElbows is SelectSVD with an explicit elbow count for automatic
// dimension selection.
func SelectSVDElbows(m matrix.Matrix, d, nElbows int, alg Algorithm, nIter int, rng *rand.Rand) (*matrix.Dense, []float64, error) {
	a, err := matrix.AsDense(m)
	if err != nil {
		return nil, nil, fmt.Errorf("SelectSVD: %w", err)
	}
	r, c := a.Shape()
	if r == 0 || c == 0 {
		return nil, nil, fmt.Errorf("SelectSVD: %w", matrix.ErrInvalidDimensions)
	}
	if _, ok := algorithmNames[alg]; !ok {
		return nil, nil, fmt.Errorf("SelectSVD: %w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if nIter < 0 {
		return nil, nil, fmt.Errorf("SelectSVD: %w: %d", ErrInvalidIterations, nIter)
	}
	k := min(r, c)
	if d > k {
		return nil, nil, fmt.Errorf("SelectSVD: %w: %d > min(%d,%d)", ErrInvalidComponents, d, r, c)
	}

	if d <= 0 {
		_, sv, _, err := matrix.ThinSVD(a)
		if err != nil {
			return nil, nil, fmt.Errorf("SelectSVD: %w", err)
		}
		elbows, _, err := SelectDimension(sv, nElbows)
		if err != nil {
			return nil, nil, fmt.Errorf("SelectSVD: %w", err)
		}
		d = elbows[len(elbows)-1]
	}

	var (
		u *matrix.Dense
		s []float64
	)
	switch alg {
	case Full:
		u, s, err = fullSVD(a, d)
	case Truncated:
		u, s, err = eigenSVD(a, d)
	case Randomized:
		u, s, err = randomizedSVD(a, d, nIter, rng)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("SelectSVD(%s): %w", alg, err)
	}

	flipSigns(u)
	scale := make([]float64, d)
	for j := range scale {
		scale[j] = math.Sqrt(s[j])
	}
	z, err := matrix.ScaleColumns(u, scale)
	if err != nil {
		return nil, nil, fmt.Errorf("SelectSVD: %w", err)
	}

	return z, s, nil
}

// leadingColumns returns the first d columns of m.
func leadingColumns(m *matrix.Dense, d int) (*matrix.Dense, error) {
	rows := make([]int, m.Rows())
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, d)
	for j := range cols {
		cols[j] = j
	}

	return m.Induced(rows, cols)
}

func fullSVD(a *matrix.Dense, d int) (*matrix.Dense, []float64, error) {
	u, s, _, err := matrix.ThinSVD(a)
	if err != nil {
		return nil, nil, err
	}
	ud, err := leadingColumns(u, d)
	if err != nil {
		return nil, nil, err
	}

	return ud, append([]float64(nil), s[:d]...), nil
}

// eigenSVD derives the top-d singular pairs of a symmetric matrix from its
// eigenpairs: σ = |λ|, left vector = eigenvector.
func eigenSVD(a *matrix.Dense, d int) (*matrix.Dense, []float64, error) {
	if err := matrix.ValidateSymmetric(a, symmetryTol); err != nil {
		return nil, nil, err
	}
	vals, vecs, err := matrix.SymEigen(a)
	if err != nil {
		return nil, nil, err
	}

	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	// Stable on |λ| descending; ties keep the larger signed value first.
	sort.SliceStable(order, func(x, y int) bool {
		ax, ay := math.Abs(vals[order[x]]), math.Abs(vals[order[y]])
		if ax != ay {
			return ax > ay
		}
		return vals[order[x]] > vals[order[y]]
	})

	rows := make([]int, a.Rows())
	for i := range rows {
		rows[i] = i
	}
	u, err := vecs.Induced(rows, order[:d])
	if err != nil {
		return nil, nil, err
	}
	s := make([]float64, d)
	for j := 0; j < d; j++ {
		s[j] = math.Abs(vals[order[j]])
	}

	return u, s, nil
}

// flipSigns makes the largest-magnitude entry of every column positive.
// Entries within signTieTol (relative) of the maximum count as tied and the
// first of them decides, so rounding noise cannot pick the sign.
func flipSigns(u *matrix.Dense) {
	r, c := u.Shape()
	var (
		i, j, best int
		v, bv      float64
	)
	for j = 0; j < c; j++ {
		bv = 0
		for i = 0; i < r; i++ {
			v, _ = u.At(i, j)
			bv = math.Max(bv, math.Abs(v))
		}
		cut := bv * (1 - signTieTol)
		for best = 0; best < r-1; best++ {
			if v, _ = u.At(best, j); math.Abs(v) >= cut {
				break
			}
		}
		if v, _ = u.At(best, j); v >= 0 {
			continue
		}
		for i = 0; i < r; i++ {
			v, _ = u.At(i, j)
			_ = u.Set(i, j, -v)
		}
	}
}
