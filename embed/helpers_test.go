package embed_test

import (
	"fmt"
	"testing"

	"github.com/PerifanosPrometheus/graspologic/core"
	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/stretchr/testify/require"
)

// twoCliques builds two 5-cliques {v0..v4} and {v5..v9} joined by the
// bridges v0–v5, v1–v6 and v2–v7.
func twoCliques(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", i)))
	}
	for _, off := range []int{0, 5} {
		for i := 0; i < 5; i++ {
			for j := i + 1; j < 5; j++ {
				require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", off+i), fmt.Sprintf("v%d", off+j), 1))
			}
		}
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+5), 1))
	}

	return g
}

// cycle builds the n-cycle 0–1–…–(n-1)–0 as a raw adjacency.
func cycle(n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a[i][j], a[j][i] = 1, 1
	}

	return a
}

// edgeless returns an n×n zero adjacency.
func edgeless(n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}

	return a
}

func adjacencyOf(t *testing.T, g *core.Graph) *matrix.Dense {
	t.Helper()
	_, a, err := matrix.AdjacencyFromGraph(g)
	require.NoError(t, err)

	return a
}

func requireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
