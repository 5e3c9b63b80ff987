package embed_test

import (
	"testing"

	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/PerifanosPrometheus/graspologic/reduce"
	"github.com/stretchr/testify/require"
)

// fitted returns a model fitted on twoCliques with every vertex in sample.
func fitted(t *testing.T, opts ...embed.Option) *embed.OOSE {
	t.Helper()
	base := []embed.Option{embed.WithComponents(2), embed.WithAlgorithm(reduce.Full)}
	m, err := embed.New(append(base, opts...)...)
	require.NoError(t, err)
	require.NoError(t, m.Fit(twoCliques(t)))

	return m
}

// constRows returns a rows×n similarity matrix filled with v.
func constRows(t *testing.T, rows, n int, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, n)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// TestPredict_NotFitted rejects projection before Fit.
func TestPredict_NotFitted(t *testing.T) {
	m, err := embed.New()
	require.NoError(t, err)
	_, err = m.Predict(constRows(t, 1, 3, 1))
	require.ErrorIs(t, err, embed.ErrNotFitted)
	_, err = m.PredictVector([]float64{1})
	require.ErrorIs(t, err, embed.ErrNotFitted)
	_, err = m.ReferenceEmbedding()
	require.ErrorIs(t, err, embed.ErrNotFitted)
	_, err = m.Snapshot()
	require.ErrorIs(t, err, embed.ErrNotFitted)
}

// TestPredict_DimensionMismatch rejects any column count other than the reference size.
func TestPredict_DimensionMismatch(t *testing.T) {
	m := fitted(t)
	for _, cols := range []int{1, 9, 11} {
		_, err := m.Predict(constRows(t, 2, cols, 1))
		require.ErrorIs(t, err, embed.ErrDimensionMismatch)
	}
	_, err := m.PredictVector([]float64{})
	require.ErrorIs(t, err, embed.ErrDimensionMismatch)
	_, err = m.Predict(nil)
	require.ErrorIs(t, err, embed.ErrNilInput)
	_, err = m.PredictVector(nil)
	require.ErrorIs(t, err, embed.ErrNilInput)
}

// TestPredict_ZeroSimilarity covers exact-zero and near-zero rows against the tolerance.
func TestPredict_ZeroSimilarity(t *testing.T) {
	m := fitted(t)

	x := constRows(t, 3, 10, 1)
	for j := 0; j < 10; j++ {
		require.NoError(t, x.Set(1, j, 0)) // middle row all zero
	}
	_, err := m.Predict(x)
	require.ErrorIs(t, err, embed.ErrZeroSimilarity)

	_, err = m.Predict(constRows(t, 1, 10, 1e-14)) // |row| sum 1e-13 ≤ 1e-12
	require.ErrorIs(t, err, embed.ErrZeroSimilarity)

	_, err = m.Predict(constRows(t, 1, 10, 1e-6)) // well above the tolerance
	require.NoError(t, err)

	exact := fitted(t, embed.WithZeroRowTolerance(0))
	_, err = exact.Predict(constRows(t, 1, 10, 1e-14)) // only exact zeros rejected
	require.NoError(t, err)
	_, err = exact.Predict(constRows(t, 1, 10, 0))
	require.ErrorIs(t, err, embed.ErrZeroSimilarity)

	// Entries that cancel sum to zero.
	cancel := constRows(t, 1, 10, 0)
	require.NoError(t, cancel.Set(0, 0, 1))
	require.NoError(t, cancel.Set(0, 1, -1))
	_, err = m.Predict(cancel)
	require.ErrorIs(t, err, embed.ErrZeroSimilarity)

	// A negative sum is still nonzero.
	require.NoError(t, cancel.Set(0, 1, -2))
	_, err = m.Predict(cancel)
	require.NoError(t, err)
}

// TestPredict_RoundTrip: projecting rows of Z·Zᵀ reproduces Z.
func TestPredict_RoundTrip(t *testing.T) {
	m := fitted(t)
	z := m.LatentLeft()
	zt, err := matrix.Transpose(z)
	require.NoError(t, err)
	x, err := matrix.Mul(z, zt)
	require.NoError(t, err)

	got, err := m.Predict(x)
	require.NoError(t, err)
	requireClose(t, z, got, 1e-9)

	row, err := x.Row(4)
	require.NoError(t, err)
	one, err := m.PredictVector(row)
	require.NoError(t, err)
	require.Equal(t, 1, one.Rows())
	want, err := z.Induced([]int{4}, []int{0, 1})
	require.NoError(t, err)
	requireClose(t, want, one, 1e-9)
}

// TestPredict_StatelessByDefault: without semi-supervised mode the reference never changes.
func TestPredict_StatelessByDefault(t *testing.T) {
	m := fitted(t)
	_, err := m.Predict(constRows(t, 3, 10, 1))
	require.NoError(t, err)
	require.Equal(t, 10, m.ReferenceSize())
}

// TestPredict_SemiSupervisedGrowth: each call enlarges the required column count.
func TestPredict_SemiSupervisedGrowth(t *testing.T) {
	m := fitted(t, embed.WithSemiSupervised(true))

	first, err := m.Predict(constRows(t, 2, 10, 1))
	require.NoError(t, err)
	require.Equal(t, 12, m.ReferenceSize())

	_, err = m.Predict(constRows(t, 1, 10, 1)) // original n_s no longer accepted
	require.ErrorIs(t, err, embed.ErrDimensionMismatch)

	_, err = m.Predict(constRows(t, 1, 12, 1))
	require.NoError(t, err)
	require.Equal(t, 13, m.ReferenceSize()) // growth is cumulative

	ref, err := m.ReferenceEmbedding()
	require.NoError(t, err)
	require.Equal(t, 13, ref.Rows())
	top, err := ref.Induced([]int{10, 11}, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, first.ToRows(), top.ToRows()) // committed rows follow Z in order

	// Failed calls do not grow the reference.
	_, err = m.Predict(constRows(t, 1, 13, 0))
	require.ErrorIs(t, err, embed.ErrZeroSimilarity)
	require.Equal(t, 13, m.ReferenceSize())
}

// TestPredict_CommittedLimit evicts the oldest committed rows but never Z.
func TestPredict_CommittedLimit(t *testing.T) {
	m := fitted(t, embed.WithSemiSupervised(true), embed.WithCommittedLimit(2))

	_, err := m.Predict(constRows(t, 3, 10, 1))
	require.NoError(t, err)
	require.Equal(t, 12, m.ReferenceSize()) // 3 committed, 1 evicted

	last, err := m.Predict(constRows(t, 1, 12, 0.5))
	require.NoError(t, err)
	require.Equal(t, 12, m.ReferenceSize())

	ref, err := m.ReferenceEmbedding()
	require.NoError(t, err)
	require.Equal(t, m.LatentLeft().ToRows(), mustRows(t, ref, 0, 10))
	require.Equal(t, last.ToRows(), mustRows(t, ref, 11, 12)) // newest row is last
}

func mustRows(t *testing.T, m *matrix.Dense, from, to int) [][]float64 {
	t.Helper()
	rows := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		rows = append(rows, i)
	}
	cols := make([]int, m.Cols())
	for j := range cols {
		cols[j] = j
	}
	sub, err := m.Induced(rows, cols)
	require.NoError(t, err)

	return sub.ToRows()
}
