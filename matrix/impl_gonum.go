// SPDX-License-Identifier: MIT
// Package matrix - factorizations backed by gonum.
//
// Purpose:
//   - Bridge Dense <-> gonum mat.Dense with explicit copies (no shared storage).
//   - Expose the factorizations the reducer and projector need: thin SVD,
//     symmetric eigendecomposition, thin QR and the Moore–Penrose pseudoinverse.
//
// Determinism:
//   - gonum's LAPACK-backed routines are deterministic for a fixed input.
//   - Singular/eigen vector signs are whatever LAPACK returns; callers that
//     need a canonical sign must normalize it themselves.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opSVD   = "ThinSVD"
	opEigen = "SymEigen"
	opQR    = "QRThin"
	opPinv  = "Pinv"
)

// PinvRCond is the relative singular-value cutoff used by Pinv: values below
// PinvRCond * σ_max are treated as zero (numpy.linalg.pinv default).
const PinvRCond = 1e-15

// toGonum copies d into a fresh gonum *mat.Dense.
// gonum rejects zero-sized matrices, so callers must guard r,c > 0.
func toGonum(d *Dense) *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf)
}

// fromGonum copies any gonum matrix into a Dense. Contiguous *mat.Dense
// buffers are copied in one pass.
func fromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	if gd, ok := g.(*mat.Dense); ok && r > 0 && c > 0 {
		if raw := gd.RawMatrix(); raw.Stride == c {
			if out, err := NewDenseData(r, c, raw.Data[:r*c]); err == nil {
				return out
			}
		}
	}
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// nonEmptyDense validates m and returns it as a non-empty *Dense.
func nonEmptyDense(tag string, m Matrix) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if d.r == 0 || d.c == 0 {
		return nil, matrixErrorf(tag, ErrInvalidDimensions)
	}

	return d, nil
}

// ThinSVD factorizes m (r×c) as U·diag(s)·Vᵀ with U r×k, V c×k, k = min(r,c),
// s in descending order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrFactorization.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func ThinSVD(m Matrix) (u *Dense, s []float64, v *Dense, err error) {
	d, err := nonEmptyDense(opSVD, m)
	if err != nil {
		return nil, nil, nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(toGonum(d), mat.SVDThin); !ok {
		return nil, nil, nil, matrixErrorf(opSVD, ErrFactorization)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)

	return fromGonum(&gu), svd.Values(nil), fromGonum(&gv), nil
}

// SymEigen computes the eigendecomposition of a symmetric matrix.
// Eigenvalues are returned in ascending order; column j of vectors is the
// unit eigenvector of values[j]. Only the upper triangle of m is read.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrFactorization.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SymEigen(m Matrix) (values []float64, vectors *Dense, err error) {
	d, err := nonEmptyDense(opEigen, m)
	if err != nil {
		return nil, nil, err
	}
	if d.r != d.c {
		return nil, nil, matrixErrorf(opEigen, ErrNonSquare)
	}

	sym := mat.NewSymDense(d.r, append([]float64(nil), d.data...))
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigen, ErrFactorization)
	}
	var ev mat.Dense
	es.VectorsTo(&ev)

	return es.Values(nil), fromGonum(&ev), nil
}

// QRThin returns the r×k orthonormal factor Q of m (r×k, r ≥ k).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (r < k).
//
// Complexity:
//   - Time O(r*k²), Space O(r²) for the intermediate full Q.
func QRThin(m Matrix) (*Dense, error) {
	d, err := nonEmptyDense(opQR, m)
	if err != nil {
		return nil, err
	}
	if d.r < d.c {
		return nil, matrixErrorf(opQR, fmt.Errorf("rows %d < cols %d: %w", d.r, d.c, ErrDimensionMismatch))
	}

	var qr mat.QR
	qr.Factorize(toGonum(d))
	var q mat.Dense
	qr.QTo(&q)

	return fromGonum(q.Slice(0, d.r, 0, d.c)), nil
}

// Pinv returns the Moore–Penrose pseudoinverse of m (r×c) as a c×r Dense.
//
// Implementation:
//   - Stage 1: thin SVD m = U·diag(s)·Vᵀ.
//   - Stage 2: invert singular values above PinvRCond·σ_max, zero the rest.
//   - Stage 3: pinv = V·diag(s⁺)·Uᵀ.
//
// Behavior highlights:
//   - Rank-deficient or ill-conditioned inputs degrade gracefully: the
//     discarded directions contribute nothing; no error is raised.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrFactorization.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Pinv(m Matrix) (*Dense, error) {
	u, s, v, err := ThinSVD(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	cutoff := PinvRCond * s[0] // s is descending; s[0] is σ_max
	k := len(s)
	rows, cols := v.r, u.r // result is c×r
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	var (
		i, j, l int
		inv     float64
	)
	for l = 0; l < k; l++ {
		if s[l] <= cutoff || s[l] == 0 || math.IsNaN(s[l]) {
			continue
		}
		inv = 1 / s[l]
		for i = 0; i < rows; i++ {
			vil := v.data[i*v.c+l] * inv
			if vil == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				out.data[i*cols+j] += vil * u.data[j*u.c+l]
			}
		}
	}

	return out, nil
}
