// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction flags and a compact Stats snapshot.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}

// Directed reports whether the graph was constructed as directed.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic snapshot of flags and sizes.
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
	}
	for _, id := range g.order {
		if _, ok := g.adj[id][id]; ok {
			stats.LoopCount++
		}
	}

	return &stats
}
