// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount/NeighborIDs.
// Determinism:
//   - Edges() and NeighborIDs() follow vertex insertion order, never map order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"math"
	"sort"
)

// AddEdge stores an edge from→to with the given weight, creating missing
// endpoints in argument order.
//
// Steps:
//  1. Validate IDs, weight finiteness and the loop policy.
//  2. Under the write lock, ensure both endpoints exist.
//  3. Reject a second edge between the same endpoints (ErrMultiEdgeNotAllowed).
//  4. Store adj[from][to]; mirror adj[to][from] when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, exists := g.adj[from][to]; exists {
		return ErrMultiEdgeNotAllowed
	}

	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror when undirected).
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	row, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = row[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(row, to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]

	return w, ok
}

// EdgeCount returns the number of stored edges (undirected edges count once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the neighbors of id ordered by vertex position.
// For directed graphs these are out-neighbors.
//
// Errors:
//   - ErrVertexNotFound if id is unknown.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.sortedKeysLocked(row), nil
}

// Edges returns every stored edge once, ordered by (pos(From), pos(To)).
// Undirected edges are reported with pos(From) ≤ pos(To).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var (
		u, v string
		row  map[string]float64
	)
	for _, u = range g.order {
		row = g.adj[u]
		for _, v = range g.sortedKeysLocked(row) {
			if !g.directed && g.pos[v] < g.pos[u] {
				continue // mirror entry; reported from the other endpoint
			}
			out = append(out, Edge{From: u, To: v, Weight: row[v]})
		}
	}

	return out
}

// sortedKeysLocked orders a neighbor row by vertex position; caller holds mu.
func (g *Graph) sortedKeysLocked(row map[string]float64) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return g.pos[keys[i]] < g.pos[keys[j]] })

	return keys
}
