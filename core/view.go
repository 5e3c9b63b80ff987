// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Derived graphs: InducedSubgraph and Clone.
// Determinism:
//   - Vertex order of a derived graph is the order of the requested IDs
//     (InducedSubgraph) or the source insertion order (Clone).

package core

import "fmt"

// InducedSubgraph returns a new Graph on the vertices ids, holding every edge
// of g whose endpoints are both in ids. The result inherits g's flags and
// orders its vertices as given by ids.
//
// Implementation:
//   - Stage 1: validate that each id exists; duplicates are ignored.
//   - Stage 2: copy vertices in request order, then edges among kept vertices.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the offending ID).
//
// Complexity:
//   - Time O(k + Σ deg), Space O(k + E_induced) for k = len(ids).
func (g *Graph) InducedSubgraph(ids []string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sub := NewGraph(WithDirected(g.directed))
	sub.allowLoops = g.allowLoops

	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := g.pos[id]; !ok {
			return nil, fmt.Errorf("InducedSubgraph(%q): %w", id, ErrVertexNotFound)
		}
		keep[id] = struct{}{}
		sub.addVertexLocked(id)
	}

	var (
		u, v string
		w    float64
	)
	for _, u = range sub.order {
		for v, w = range g.adj[u] {
			if _, ok := keep[v]; !ok {
				continue
			}
			if _, dup := sub.adj[u][v]; dup {
				continue // mirrored while visiting v
			}
			sub.adj[u][v] = w
			if !g.directed {
				sub.adj[v][u] = w
			}
			sub.edgeCount++
		}
	}

	return sub, nil
}

// Clone returns a deep copy of g with identical flags, order and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithDirected(g.directed))
	c.allowLoops = g.allowLoops
	c.edgeCount = g.edgeCount
	for _, id := range g.order {
		c.addVertexLocked(id)
		for v, w := range g.adj[id] {
			c.adj[id][v] = w
		}
	}

	return c
}
