// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"math"

	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/plan-systems/klog"
)

// Predict embeds out-of-sample vertices from their similarity to the
// reference vertices: row i of x holds the similarity of new vertex i to
// every reference row, in reference order. The result is m × d.
//
// The projection is oos = X · pinv(R)ᵀ, the minimum-norm least-squares
// solution of X ≈ oos · Rᵀ for the reference embedding R.
//
// With semi-supervised mode on, the result is appended to the reference
// embedding, so the next call must supply ReferenceSize() columns.
//
// Errors: ErrNotFitted, ErrNilInput, ErrDimensionMismatch, ErrZeroSimilarity,
// matrix.ErrNaNInf.
func (m *OOSE) Predict(x matrix.Matrix) (*matrix.Dense, error) {
	if m.st == nil {
		return nil, fmt.Errorf("Predict: %w", ErrNotFitted)
	}
	out, err := m.st.project(x, m.cfg.ZeroRowTolerance)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}
	if m.cfg.SemiSupervised {
		m.st.commit(out)
	}

	return out, nil
}

// PredictVector embeds a single out-of-sample vertex given as a 1-D
// similarity vector; the result is 1 × d.
func (m *OOSE) PredictVector(x []float64) (*matrix.Dense, error) {
	if m.st == nil {
		return nil, fmt.Errorf("PredictVector: %w", ErrNotFitted)
	}
	if x == nil {
		return nil, fmt.Errorf("PredictVector: %w", ErrNilInput)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("PredictVector: %w: empty vector, want %d values", ErrDimensionMismatch, m.ReferenceSize())
	}
	row, err := matrix.NewDenseFrom([][]float64{x})
	if err != nil {
		return nil, fmt.Errorf("PredictVector: %w", err)
	}

	return m.Predict(row)
}

// project validates x against the current reference and projects it.
func (st *state) project(x matrix.Matrix, tol float64) (*matrix.Dense, error) {
	if matrix.ValidateNotNil(x) != nil {
		return nil, ErrNilInput
	}
	ref, err := st.reference()
	if err != nil {
		return nil, err
	}
	if x.Cols() != ref.Rows() {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrDimensionMismatch, x.Cols(), ref.Rows())
	}
	if x.Rows() == 0 {
		return nil, fmt.Errorf("%w: similarity matrix has no rows", ErrDimensionMismatch)
	}
	if err = matrix.ValidateFinite(x); err != nil {
		return nil, err
	}

	sums, err := matrix.RowSums(x)
	if err != nil {
		return nil, err
	}
	for i, s := range sums {
		if math.Abs(s) <= tol {
			return nil, fmt.Errorf("%w (row %d)", ErrZeroSimilarity, i)
		}
	}

	pt, err := st.pinvTransposed()
	if err != nil {
		return nil, err
	}

	return matrix.Mul(x, pt)
}

// pinvTransposed returns pinv(reference)ᵀ, computing it at most once per
// reference version.
func (st *state) pinvTransposed() (*matrix.Dense, error) {
	if st.pinvT != nil {
		return st.pinvT, nil
	}
	ref, err := st.reference()
	if err != nil {
		return nil, err
	}
	p, err := matrix.Pinv(ref)
	if err != nil {
		return nil, err
	}
	if st.pinvT, err = matrix.Transpose(p); err != nil {
		return nil, err
	}

	return st.pinvT, nil
}

// commit folds projected rows into the reference embedding.
func (st *state) commit(out *matrix.Dense) {
	evicted := st.committed.add(out.ToRows())
	st.invalidate()
	klog.V(2).Infof("embed: committed %d rows (evicted %d), reference size %d",
		out.Rows(), evicted, st.base.Rows()+st.committed.Len())
}
