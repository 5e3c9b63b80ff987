// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, determinism and error paths.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/PerifanosPrometheus/graspologic/builder"
	"github.com/PerifanosPrometheus/graspologic/core"
	"github.com/stretchr/testify/require"
)

// build is a small wrapper around BuildGraph for undirected graphs.
func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestClassicTopologies(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"complete", builder.Complete(5), 5, 10},
		{"complete singleton", builder.Complete(1), 1, 0},
		{"star", builder.Star(4), 4, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.con)
			require.Equal(t, tc.vertices, g.VertexCount())
			require.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestCycleWiring(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	require.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	require.True(t, g.HasEdge("3", "0"))
	require.True(t, g.HasEdge("0", "3")) // undirected mirror
	w, ok := g.Weight("1", "2")
	require.True(t, ok)
	require.Equal(t, builder.DefaultEdgeWeight, w)
}

func TestDirectedComplete(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount()) // ordered pairs
}

func TestStarHub(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("s"))}, builder.Star(4))
	d, err := g.Degree("s0")
	require.NoError(t, err)
	require.Equal(t, 3, d)
	require.False(t, g.HasEdge("s1", "s2"))
}

func TestTooFewVertices(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Complete(0), builder.Star(1),
		builder.RandomSparse(0, 0.5), builder.StochasticBlock(nil, nil),
		builder.StochasticBlock([]int{2, 0}, [][]float64{{1, 0}, {0, 1}}),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, con)
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestRandomSparse(t *testing.T) {
	// p ∈ {0,1} is deterministic and needs no RNG.
	g := build(t, nil, builder.RandomSparse(6, 1))
	require.Equal(t, 15, g.EdgeCount())
	g = build(t, nil, builder.RandomSparse(6, 0))
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 6, g.VertexCount())

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(6, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	// Same seed ⇒ same edge set.
	a := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
	b := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
	require.Equal(t, a.Edges(), b.Edges())
	require.Greater(t, a.EdgeCount(), 0)
	require.Less(t, a.EdgeCount(), 435)
}

func TestStochasticBlockStructure(t *testing.T) {
	sizes := []int{4, 3}
	probs := [][]float64{{1, 0}, {0, 1}} // two disjoint cliques
	g := build(t, nil, builder.StochasticBlock(sizes, probs))
	require.Equal(t, 7, g.VertexCount())
	require.Equal(t, 6+3, g.EdgeCount())
	require.False(t, g.HasEdge("0", "4"))
	require.True(t, g.HasEdge("4", "6"))

	require.Equal(t, []int{0, 0, 0, 0, 1, 1, 1}, builder.BlockLabels(sizes))
}

func TestStochasticBlockValidation(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3)}
	_, err := builder.BuildGraph(nil, opts, builder.StochasticBlock([]int{2, 2}, [][]float64{{0.5}}))
	require.ErrorIs(t, err, builder.ErrBadBlocks)

	_, err = builder.BuildGraph(nil, opts, builder.StochasticBlock([]int{2, 2}, [][]float64{{0.5, 0.1}, {0.2, 0.5}}))
	require.ErrorIs(t, err, builder.ErrBadBlocks) // asymmetric on undirected

	_, err = builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, opts,
		builder.StochasticBlock([]int{2, 2}, [][]float64{{0.5, 0.1}, {0.2, 0.5}}))
	require.NoError(t, err) // directed graphs accept asymmetric blocks

	_, err = builder.BuildGraph(nil, opts, builder.StochasticBlock([]int{2}, [][]float64{{-0.1}}))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestStochasticBlockDensity(t *testing.T) {
	// Dense diagonal blocks, sparse off-diagonal: within-block edges dominate.
	sizes := []int{20, 20}
	probs := [][]float64{{0.8, 0.05}, {0.05, 0.8}}
	g := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(11)))}, builder.StochasticBlock(sizes, probs))
	labels := builder.BlockLabels(sizes)

	within, across := 0, 0
	for _, e := range g.Edges() {
		u, _ := g.Position(e.From)
		v, _ := g.Position(e.To)
		if labels[u] == labels[v] {
			within++
		} else {
			across++
		}
	}
	require.Greater(t, within, 5*across)
}

func TestShiftedDisjointUnion(t *testing.T) {
	g := build(t, nil, builder.Complete(3), builder.Shifted(3, builder.Cycle(4)))
	require.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6"}, g.Vertices())
	require.Equal(t, 3+4, g.EdgeCount())
	require.True(t, g.HasEdge("6", "3"))
	require.False(t, g.HasEdge("2", "3"))

	_, err := builder.BuildGraph(nil, nil, builder.Complete(3), builder.Shifted(1, builder.Complete(3)))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed) // overlapping ranges collide

	_, err = builder.BuildGraph(nil, nil, builder.Shifted(0, nil))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWeightFnApplied(t *testing.T) {
	g := build(t, []builder.BuilderOption{
		builder.WithSeed(5),
		builder.WithWeightFn(builder.UniformWeightFn(2, 3)),
	}, builder.Path(10))
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, 2.0)
		require.Less(t, e.Weight, 3.0)
	}
}
