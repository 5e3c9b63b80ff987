package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PerifanosPrometheus/graspologic/bfs"
	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/stretchr/testify/require"
)

// adjacency builds an n×n symmetric 0/1 matrix from an edge list.
func adjacency(t *testing.T, n int, edges ...[2]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, m.Set(e[0], e[1], 1))
		require.NoError(t, m.Set(e[1], e[0], 1))
	}

	return m
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrMatrixNil)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = bfs.BFS(rect, 0)
	require.ErrorIs(t, err, bfs.ErrNotSquare)

	m := adjacency(t, 2, [2]int{0, 1})
	_, err = bfs.BFS(m, 2)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(m, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	empty, err := rect.Induced(nil, nil)
	require.NoError(t, err)
	_, err = bfs.IsConnected(empty)
	require.ErrorIs(t, err, bfs.ErrEmptyMatrix)
}

// TestBFS_PathDepths covers a path graph 0-1-2-3 with a chord 0-3.
func TestBFS_PathDepths(t *testing.T) {
	m := adjacency(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3})
	res, err := bfs.BFS(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.Equal(t, []int{0, 1, 2, 1, -1}, res.Depth)
	require.False(t, res.Reached(4))

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)

	_, err = res.PathTo(4)
	require.Error(t, err)
}

// TestBFS_MaxDepthAndDirected checks the depth limit and row-only traversal.
func TestBFS_MaxDepthAndDirected(t *testing.T) {
	m := adjacency(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(m, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)

	d, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 0},
		{0, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)
	res, err = bfs.BFS(d, 0, bfs.WithDirected())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order) // 2→0 is not followed backwards

	res, err = bfs.BFS(d, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order) // weak connectivity by default
}

// TestBFS_HookAndCancel verifies hook errors and context cancellation abort the walk.
func TestBFS_HookAndCancel(t *testing.T) {
	m := adjacency(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")
	_, err := bfs.BFS(m, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(m, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestComponents covers component partition, connectivity and the largest component.
func TestComponents(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		edges     [][2]int
		comps     [][]int
		connected bool
		largest   []int
	}{
		{"single vertex", 1, nil, [][]int{{0}}, true, []int{0}},
		{"path", 3, [][2]int{{0, 1}, {1, 2}}, [][]int{{0, 1, 2}}, true, []int{0, 1, 2}},
		{"two parts", 5, [][2]int{{0, 3}, {1, 2}, {2, 4}}, [][]int{{0, 3}, {1, 2, 4}}, false, []int{1, 2, 4}},
		{"isolated tie", 2, nil, [][]int{{0}, {1}}, false, []int{0}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := adjacency(t, tc.n, tc.edges...)
			comps, err := bfs.Components(m)
			require.NoError(t, err)
			require.Equal(t, tc.comps, comps)

			ok, err := bfs.IsConnected(m)
			require.NoError(t, err)
			require.Equal(t, tc.connected, ok)

			lcc, err := bfs.LargestComponent(m)
			require.NoError(t, err)
			require.Equal(t, tc.largest, lcc)
		})
	}
}

// TestIsConnected_SelfLoopsIgnored ensures a diagonal entry does not count as an edge.
func TestIsConnected_SelfLoopsIgnored(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	ok, err := bfs.IsConnected(m)
	require.NoError(t, err)
	require.False(t, ok)
}
