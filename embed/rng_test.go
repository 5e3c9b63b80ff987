package embed

import (
	"testing"

	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/stretchr/testify/require"
)

func TestSampleSize(t *testing.T) {
	require.Equal(t, 6, sampleSize(0.6, 10))
	require.Equal(t, 4, sampleSize(0.35, 10))
	require.Equal(t, 1, sampleSize(0.01, 10))
	require.Equal(t, 10, sampleSize(1, 10))
}

func TestDrawWithoutReplacement(t *testing.T) {
	a := drawWithoutReplacement(20, 7, rngFromSeed(5))
	b := drawWithoutReplacement(20, 7, rngFromSeed(5))
	require.Equal(t, a, b) // deterministic for a seed
	require.Len(t, a, 7)
	require.IsIncreasing(t, a) // sorted and therefore distinct
	for _, v := range a {
		require.True(t, v >= 0 && v < 20)
	}

	require.Equal(t, []int{0, 1, 2}, drawWithoutReplacement(3, 3, rngFromSeed(0)))
	require.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63())
}

func TestAugmentDiagonal(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	aug, err := augmentDiagonal(a)
	require.NoError(t, err)
	for i, want := range []float64{0.5, 1, 0.5} {
		v, _ := aug.At(i, i)
		require.InDelta(t, want, v, 1e-15)
	}
	v, _ := a.At(0, 0)
	require.Zero(t, v) // input untouched
}

func TestCommittedCache(t *testing.T) {
	c := newCommittedCache(2)
	require.Equal(t, 0, c.add([][]float64{{1}, {2}}))
	require.Equal(t, 1, c.add([][]float64{{3}}))
	require.Equal(t, [][]float64{{2}, {3}}, c.rows())
	seqs, _ := c.entries()
	require.Equal(t, []int{1, 2}, seqs)

	c.reset()
	require.Equal(t, 0, c.Len())
}
