// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels the embedding pipeline needs:
// multiplication, transpose, vertical stacking, row reductions and
// tolerance comparison. All functions validate fail-fast and return
// sentinel errors wrapped with an operation tag.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opVStack    = "VStack"
	opRowSums   = "RowSums"
	opAllClose  = "AllClose"
	opScaleCols = "ScaleColumns"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize both operands as *Dense, then run i→k→j with
//     row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix mᵀ; m is never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := newDenseZeroOK(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// VStack concatenates matrices vertically: rows of top, then rows of bottom.
// Both must have the same column count; either may have zero rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O((r1+r2)*c).
func VStack(top, bottom Matrix) (*Dense, error) {
	dt, err := AsDense(top)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	db, err := AsDense(bottom)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if dt.c != db.c {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}
	res, err := newDenseZeroOK(dt.r+db.r, dt.c)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	copy(res.data, dt.data)
	copy(res.data[len(dt.data):], db.data)

	return res, nil
}

// RowSums returns Σ_j A[i,j] for each row i.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	return rowReduce(m, func(v float64) float64 { return v })
}

// RowAbsSums returns Σ_j |A[i,j]| for each row i. A zero entry means the
// row is identically zero.
// Complexity: O(r*c).
func RowAbsSums(m Matrix) ([]float64, error) {
	return rowReduce(m, math.Abs)
}

// rowReduce folds each row with f applied per entry.
func rowReduce(m Matrix, f func(float64) float64) ([]float64, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, d.r)
	var (
		i, j int
		acc  float64
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		for j = 0; j < d.c; j++ {
			acc += f(d.data[i*d.c+j])
		}
		out[i] = acc
	}

	return out, nil
}

// AllClose reports whether |a_ij - b_ij| ≤ atol + rtol*|b_ij| for all entries
// (numpy.allclose semantics).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	da, err := AsDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if da.r != db.r || da.c != db.c {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	for k, av := range da.data {
		bv := db.data[k]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// ScaleColumns returns a copy of m with column j multiplied by f[j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(f) != Cols).
// Complexity: O(r*c).
func ScaleColumns(m Matrix, f []float64) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if len(f) != d.c {
		return nil, matrixErrorf(opScaleCols, fmt.Errorf("%d factors for %d columns: %w", len(f), d.c, ErrDimensionMismatch))
	}
	res := d.cloneDense()
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[i*d.c+j] *= f[j]
		}
	}

	return res, nil
}
