// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"strconv"

	"github.com/PerifanosPrometheus/graspologic/core"
	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// symmetryTol is the absolute tolerance for treating a matrix as undirected.
const symmetryTol = 1e-10

// VertexIndex is the fixed bijection between vertex labels and positions
// 0..N-1 established by a fit.
type VertexIndex struct {
	labels []string
	pos    map[string]int
}

func newVertexIndex(labels []string) *VertexIndex {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}

	return &VertexIndex{labels: labels, pos: pos}
}

// Len returns N.
func (x *VertexIndex) Len() int { return len(x.labels) }

// Label returns the label at position i.
func (x *VertexIndex) Label(i int) string { return x.labels[i] }

// Position returns the position of label and whether it exists.
func (x *VertexIndex) Position(label string) (int, bool) {
	p, ok := x.pos[label]
	return p, ok
}

// Labels returns a copy of all labels in position order.
func (x *VertexIndex) Labels() []string {
	return append([]string(nil), x.labels...)
}

// graphInput is a resolved Fit argument.
type graphInput struct {
	index *VertexIndex
	adj   *matrix.Dense
}

// resolveInput turns a Fit argument into labels plus a symmetric adjacency
// matrix. Matrix inputs are labeled "0".."N-1".
func resolveInput(g any) (*graphInput, error) {
	var (
		labels []string
		adj    *matrix.Dense
		err    error
	)
	switch v := g.(type) {
	case nil:
		return nil, ErrNilInput
	case *core.Graph:
		if v == nil {
			return nil, ErrNilInput
		}
		if v.Directed() {
			return nil, ErrDirectedGraph
		}
		if v.VertexCount() == 0 {
			return nil, ErrEmptyGraph
		}
		if labels, adj, err = matrix.AdjacencyFromGraph(v); err != nil {
			return nil, err
		}
		return &graphInput{index: newVertexIndex(labels), adj: adj}, nil
	case [][]float64:
		if len(v) == 0 {
			return nil, ErrEmptyGraph
		}
		if adj, err = matrix.NewDenseFrom(v); err != nil {
			return nil, err
		}
	case *matrix.Dense:
		if v == nil {
			return nil, ErrNilInput
		}
		adj = v.Clone().(*matrix.Dense)
	case matrix.Matrix:
		if err = matrix.ValidateNotNil(v); err != nil {
			return nil, ErrNilInput
		}
		if adj, err = matrix.AsDense(v); err != nil {
			return nil, err
		}
		adj = adj.Clone().(*matrix.Dense)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedInput, g)
	}

	n := adj.Rows()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if err = matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("%w: adjacency is %dx%d", ErrUnsupportedInput, n, adj.Cols())
	}
	if err = matrix.ValidateFinite(adj); err != nil {
		return nil, err
	}
	if err = matrix.ValidateSymmetric(adj, symmetryTol); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectedGraph, err)
	}
	labels = make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return &graphInput{index: newVertexIndex(labels), adj: adj}, nil
}
