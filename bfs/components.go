// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// Components partitions the vertices of m into weakly connected components.
// Each component lists its vertex indices in ascending order; components are
// ordered by their smallest index.
//
// Complexity: O(N²).
func Components(m matrix.Matrix) ([][]int, error) {
	adj, err := neighborLists(m, false)
	if err != nil {
		return nil, err
	}

	n := len(adj)
	w := newWalker(adj, DefaultOptions())
	var comps [][]int
	var from int
	for s := 0; s < n; s++ {
		if w.res.Depth[s] >= 0 {
			continue
		}
		from = len(w.res.Order)
		w.enqueue(s, 0, -1)
		if err = w.loop(); err != nil {
			return nil, err
		}
		comp := append([]int(nil), w.res.Order[from:]...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether the graph with adjacency m has exactly one
// weakly connected component. A single vertex is connected.
func IsConnected(m matrix.Matrix) (bool, error) {
	adj, err := neighborLists(m, false)
	if err != nil {
		return false, err
	}
	w := newWalker(adj, DefaultOptions())
	w.enqueue(0, 0, -1)
	if err = w.loop(); err != nil {
		return false, err
	}

	return len(w.res.Order) == len(adj), nil
}

// LargestComponent returns the ascending vertex indices of the largest
// weakly connected component. Ties go to the component with the smallest index.
func LargestComponent(m matrix.Matrix) ([]int, error) {
	comps, err := Components(m)
	if err != nil {
		return nil, err
	}
	best := comps[0]
	for _, c := range comps[1:] {
		if len(c) > len(best) {
			best = c
		}
	}

	return best, nil
}
