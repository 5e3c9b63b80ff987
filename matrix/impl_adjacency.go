// SPDX-License-Identifier: MIT
// Package matrix - dense adjacency materialization from core.Graph.
//
// Contract:
//   - Row/column i corresponds to the i-th vertex in g.Vertices() (insertion order).
//   - A[u][v] = edge weight; undirected graphs produce a symmetric matrix.
//   - Missing edges are 0; weights are copied unchanged (no binarization).

package matrix

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const opAdjacency = "AdjacencyFromGraph"

// AdjacencyFromGraph materializes the N×N adjacency matrix of g and returns
// the vertex labels in row order.
//
// Implementation:
//   - Stage 1: snapshot vertex order and build a label → index map.
//   - Stage 2: write each edge (and its mirror for undirected graphs).
//
// Errors:
//   - ErrGraphNil, ErrInvalidDimensions (graph without vertices).
//
// Complexity:
//   - Time O(N² + E), Space O(N²).
func AdjacencyFromGraph(g *core.Graph) ([]string, *Dense, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}
	labels := g.Vertices()
	n := len(labels)
	if n == 0 {
		return nil, nil, matrixErrorf(opAdjacency, fmt.Errorf("empty graph: %w", ErrInvalidDimensions))
	}
	idx := make(map[string]int, n)
	for i, id := range labels {
		idx[id] = i
	}

	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opAdjacency, err)
	}
	directed := g.Directed()
	var u, v int
	for _, e := range g.Edges() {
		u, v = idx[e.From], idx[e.To]
		a.data[u*n+v] = e.Weight
		if !directed {
			a.data[v*n+u] = e.Weight
		}
	}

	return labels, a, nil
}
