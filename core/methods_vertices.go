// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount/Position.
// Determinism:
//   - Vertices() returns IDs in insertion order; Position(id) is the index in that order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddVertex inserts a vertex with the given ID if it is not already present.
//
// Implementation:
//   - Stage 1: Reject empty IDs.
//   - Stage 2: Under the write lock, append to the insertion order and
//     allocate an empty adjacency row. Existing IDs are a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller must hold the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.pos[id]; exists {
		return // idempotent
	}
	g.pos[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]float64)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pos[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Position returns the insertion index of id, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Position(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.pos[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return p, nil
}

// Degree returns the number of distinct neighbors of id (out-neighbors for
// directed graphs). A self-loop counts once.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}
