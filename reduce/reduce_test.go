package reduce_test

import (
	"math/rand"
	"testing"

	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/PerifanosPrometheus/graspologic/reduce"
	"github.com/stretchr/testify/require"
)

const tol = 1e-8

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// gram returns Z·Zᵀ.
func gram(t *testing.T, z *matrix.Dense) *matrix.Dense {
	t.Helper()
	zt, err := matrix.Transpose(z)
	require.NoError(t, err)
	g, err := matrix.Mul(z, zt)
	require.NoError(t, err)

	return g
}

func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// TestSelectDimension_Elbows checks the profile-likelihood elbows on a spectrum with a clear gap.
func TestSelectDimension_Elbows(t *testing.T) {
	elbows, values, err := reduce.SelectDimension([]float64{10, 9, 8, 1, 0.5, 0.2}, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, elbows) // gap after 8, then after 1
	require.Equal(t, []float64{8, 1}, values)

	elbows, _, err = reduce.SelectDimension([]float64{10, 1}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1}, elbows) // tail of length 1 stops the search

	elbows, _, err = reduce.SelectDimension([]float64{4}, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, elbows)

	_, _, err = reduce.SelectDimension(nil, 1)
	require.ErrorIs(t, err, reduce.ErrEmptySpectrum)
	_, _, err = reduce.SelectDimension([]float64{1}, 0)
	require.ErrorIs(t, err, reduce.ErrInvalidElbows)
}

// TestSelectSVD_ReconstructsPSD verifies Z·Zᵀ == A at full rank for every algorithm.
func TestSelectSVD_ReconstructsPSD(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	for _, alg := range []reduce.Algorithm{reduce.Full, reduce.Truncated, reduce.Randomized} {
		alg := alg
		t.Run(alg.String(), func(t *testing.T) {
			z, s, err := reduce.SelectSVD(a, 3, alg, reduce.DefaultIterations, rand.New(rand.NewSource(7)))
			require.NoError(t, err)
			require.Equal(t, 3, z.Rows())
			require.Equal(t, 3, z.Cols())
			require.Len(t, s, 3)
			require.GreaterOrEqual(t, s[0], s[1]) // descending
			require.GreaterOrEqual(t, s[1], s[2])
			requireClose(t, a, gram(t, z))
		})
	}
}

// TestSelectSVD_AlgorithmsAgree compares truncated embeddings after sign normalization.
func TestSelectSVD_AlgorithmsAgree(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	full, sFull, err := reduce.SelectSVD(a, 2, reduce.Full, 0, nil)
	require.NoError(t, err)
	trunc, sTrunc, err := reduce.SelectSVD(a, 2, reduce.Truncated, 0, nil)
	require.NoError(t, err)
	rnd, sRnd, err := reduce.SelectSVD(a, 2, reduce.Randomized, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.InDeltaSlice(t, sFull, sTrunc, tol)
	require.InDeltaSlice(t, sFull, sRnd, tol)
	requireClose(t, full, trunc)
	requireClose(t, full, rnd)
}

// TestSelectSVD_SignTie: the second eigenvector of this matrix is ∝ (1,-1,-1),
// so all three entries tie in magnitude and the first one must come out positive.
func TestSelectSVD_SignTie(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	for _, alg := range []reduce.Algorithm{reduce.Full, reduce.Truncated, reduce.Randomized} {
		z, s, err := reduce.SelectSVD(a, 2, alg, 3, rand.New(rand.NewSource(7)))
		require.NoError(t, err, alg)
		require.InDelta(t, 3, s[1], tol, alg)

		col := make([]float64, 3)
		for i := range col {
			col[i], err = z.At(i, 1)
			require.NoError(t, err)
		}
		want := 1.0 // √3 · (1/√3)
		require.InDeltaSlice(t, []float64{want, -want, -want}, col, 1e-6, alg)
	}
}

// TestSelectSVD_AutoDimension uses a two-block matrix whose spectrum is {2, 2, 0, 0}.
func TestSelectSVD_AutoDimension(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	})
	z, s, err := reduce.SelectSVDElbows(a, 0, 1, reduce.Full, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 2, z.Cols()) // single elbow after the two equal leading values
	require.InDeltaSlice(t, []float64{2, 2}, s, tol)
	requireClose(t, a, gram(t, z))
}

// TestSelectSVD_Errors covers argument validation.
func TestSelectSVD_Errors(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 1}, {1, 0}})

	_, _, err := reduce.SelectSVD(a, 3, reduce.Full, 0, nil)
	require.ErrorIs(t, err, reduce.ErrInvalidComponents)

	_, _, err = reduce.SelectSVD(a, 1, reduce.Full, -1, nil)
	require.ErrorIs(t, err, reduce.ErrInvalidIterations)

	_, _, err = reduce.SelectSVD(a, 1, reduce.Randomized, 1, nil)
	require.ErrorIs(t, err, reduce.ErrNilRNG)

	_, _, err = reduce.SelectSVD(a, 1, reduce.Algorithm(42), 0, nil)
	require.ErrorIs(t, err, reduce.ErrUnknownAlgorithm)

	asym := mustDense(t, [][]float64{{0, 1}, {0, 0}})
	_, _, err = reduce.SelectSVD(asym, 1, reduce.Truncated, 0, nil)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = reduce.SelectSVD(nil, 1, reduce.Full, 0, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAlgorithmText round-trips names used by config files.
func TestAlgorithmText(t *testing.T) {
	for _, name := range []string{"full", "Truncated", " randomized "} {
		a, err := reduce.ParseAlgorithm(name)
		require.NoError(t, err)
		b, err := a.MarshalText()
		require.NoError(t, err)
		var back reduce.Algorithm
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, a, back)
	}
	_, err := reduce.ParseAlgorithm("arpack")
	require.ErrorIs(t, err, reduce.ErrUnknownAlgorithm)
}
