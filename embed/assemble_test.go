package embed_test

import (
	"testing"

	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/stretchr/testify/require"
)

// scenario returns a model for the 10-vertex, p = 0.6, K = 50 case.
func scenario(t *testing.T, opts ...embed.Option) *embed.OOSE {
	t.Helper()
	base := []embed.Option{
		embed.WithComponents(2),
		embed.WithInSampleProportion(0.6),
		embed.WithConnectedAttempts(50),
		embed.WithSeed(42),
	}
	m, err := embed.New(append(base, opts...)...)
	require.NoError(t, err)

	return m
}

// complement returns 0..n-1 minus idx, ascending.
func complement(n int, idx []int) []int {
	in := make(map[int]bool, len(idx))
	for _, i := range idx {
		in[i] = true
	}
	var out []int
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}

	return out
}

// TestFitPredict_Scenario: deterministic 6-vertex sample, (6,d) latent, (4,d) projection, (10,d) output.
func TestFitPredict_Scenario(t *testing.T) {
	g := twoCliques(t)
	a := adjacencyOf(t, g)

	m := scenario(t)
	full, err := m.FitPredict(g)
	require.NoError(t, err)

	s := m.InSampleIndices()
	require.Len(t, s, 6)
	require.IsIncreasing(t, s)
	z := m.LatentLeft()
	require.Equal(t, 6, z.Rows())
	require.Equal(t, 2, z.Cols())
	require.Equal(t, 10, full.Rows())
	require.Equal(t, 2, full.Cols())

	// In-sample rows are Z's rows verbatim.
	for k, p := range s {
		want, err := z.Row(k)
		require.NoError(t, err)
		got, err := full.Row(p)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// Out-of-sample rows equal an independent projection of A[oos, S].
	oos := complement(10, s)
	require.Len(t, oos, 4)
	x, err := a.Induced(oos, s)
	require.NoError(t, err)
	proj, err := m.Predict(x)
	require.NoError(t, err)
	require.Equal(t, 4, proj.Rows())
	for k, p := range oos {
		want, err := proj.Row(k)
		require.NoError(t, err)
		got, err := full.Row(p)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// No row left unset.
	sums, err := matrix.RowAbsSums(full)
	require.NoError(t, err)
	for i, v := range sums {
		require.Greaterf(t, v, 0.0, "row %d unset", i)
	}

	// Same seed, same graph ⇒ same sample and embedding.
	again := scenario(t)
	full2, err := again.FitPredict(g)
	require.NoError(t, err)
	require.Equal(t, s, again.InSampleIndices())
	require.Equal(t, full.ToRows(), full2.ToRows())
}

// TestFitPredict_AllInSample skips the projection step.
func TestFitPredict_AllInSample(t *testing.T) {
	m, err := embed.New(embed.WithComponents(2))
	require.NoError(t, err)
	full, err := m.FitPredict(twoCliques(t))
	require.NoError(t, err)
	require.Equal(t, m.LatentLeft().ToRows(), full.ToRows())
}

// TestFitPredict_SemiSupervisedReference: the reference becomes the full N×d embedding.
func TestFitPredict_SemiSupervisedReference(t *testing.T) {
	m := scenario(t, embed.WithSemiSupervised(true))
	full, err := m.FitPredict(twoCliques(t))
	require.NoError(t, err)
	require.Equal(t, 10, m.ReferenceSize())

	ref, err := m.ReferenceEmbedding()
	require.NoError(t, err)
	require.Equal(t, full.ToRows(), ref.ToRows())

	_, err = m.Predict(constRows(t, 1, 6, 1))
	require.ErrorIs(t, err, embed.ErrDimensionMismatch)
	_, err = m.Predict(constRows(t, 1, 10, 1))
	require.NoError(t, err)
	require.Equal(t, 11, m.ReferenceSize())
}

// TestFitPredict_IsolatedOutOfSample fails atomically on a vertex with no in-sample neighbor.
func TestFitPredict_IsolatedOutOfSample(t *testing.T) {
	a := cycle(5)
	a = append(a, make([]float64, 6))
	for i := 0; i < 5; i++ {
		a[i] = append(a[i], 0) // vertex 5 is isolated
	}

	m, err := embed.New(embed.WithComponents(1), embed.WithInSampleIndices(0, 1, 2, 3, 4))
	require.NoError(t, err)
	_, err = m.FitPredict(a)
	require.ErrorIs(t, err, embed.ErrZeroSimilarity)
	require.False(t, m.Fitted())
}
