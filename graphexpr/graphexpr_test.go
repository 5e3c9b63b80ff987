package graphexpr_test

import (
	"strings"
	"testing"

	"github.com/PerifanosPrometheus/graspologic/builder"
	"github.com/PerifanosPrometheus/graspologic/core"
	"github.com/PerifanosPrometheus/graspologic/graphexpr"
	"github.com/stretchr/testify/require"
)

func TestParseUndirected(t *testing.T) {
	g, err := graphexpr.Parse(`a -- b [0.5], b -- c; d -- e # trailing comment`)
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())

	w, ok := g.Weight("b", "a")
	require.True(t, ok)
	require.Equal(t, 0.5, w)
	w, _ = g.Weight("d", "e")
	require.Equal(t, core.DefaultWeight, w)
}

func TestParseChainsAndLoneVertices(t *testing.T) {
	g, err := graphexpr.Parse("0 -- 1 -- 2 [2] -- 3\nx\n\"with space\" -- 0")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2", "3", "x", "with space"}, g.Vertices())
	require.Equal(t, 4, g.EdgeCount())
	w, _ := g.Weight("1", "2")
	require.Equal(t, 2.0, w) // weight binds to the hop it follows
	w, _ = g.Weight("2", "3")
	require.Equal(t, 1.0, w)
	d, err := g.Degree("x")
	require.NoError(t, err)
	require.Equal(t, 0, d)
}

func TestParseDirected(t *testing.T) {
	g, err := graphexpr.Parse("hub -> x -> y [-1.5e-1]")
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.True(t, g.HasEdge("hub", "x"))
	require.False(t, g.HasEdge("x", "hub"))
	w, _ := g.Weight("x", "y")
	require.InDelta(t, -0.15, w, 1e-15)
}

func TestParseErrors(t *testing.T) {
	_, err := graphexpr.Parse("a -- b; b -> c")
	require.ErrorIs(t, err, graphexpr.ErrMixedEdges)

	_, err = graphexpr.Parse("a -- [1]")
	require.ErrorIs(t, err, graphexpr.ErrSyntax)

	_, err = graphexpr.Parse("a -- b; b -- a")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = graphexpr.Parse("a -- a")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	g, err := graphexpr.Parse("a -- a", core.WithLoops())
	require.NoError(t, err)
	require.True(t, g.HasEdge("a", "a"))
}

func TestParseEmpty(t *testing.T) {
	g, err := graphexpr.Parse("  # nothing here\n")
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
}

func TestParseReader(t *testing.T) {
	g, err := graphexpr.ParseReader("inline", strings.NewReader("p -- q"))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestFormatRoundTrip(t *testing.T) {
	sbm, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithWeightFn(builder.UniformWeightFn(0.5, 2))},
		builder.StochasticBlock([]int{5, 5}, [][]float64{{0.7, 0.1}, {0.1, 0.7}}))
	require.NoError(t, err)

	odd := core.NewGraph()
	require.NoError(t, odd.AddVertex("z"))
	require.NoError(t, odd.AddEdge("a b", "c", 1))
	require.NoError(t, odd.AddEdge("c", "z", 3))

	directed := core.NewGraph(core.WithDirected(true))
	require.NoError(t, directed.AddEdge("b", "a", 1))

	for name, g := range map[string]*core.Graph{"sbm": sbm, "reordered": odd, "directed": directed} {
		g := g
		t.Run(name, func(t *testing.T) {
			back, err := graphexpr.Parse(graphexpr.Format(g))
			require.NoError(t, err)
			require.Equal(t, g.Directed(), back.Directed())
			require.Equal(t, g.Vertices(), back.Vertices())
			require.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestFormatOmitsDefaultWeight(t *testing.T) {
	g, err := graphexpr.Parse("a -- b; b -- c [2]")
	require.NoError(t, err)
	require.Equal(t, "a -- b;\nb -- c [2];\n", graphexpr.Format(g))
}
