// Package core provides a small, thread-safe in-memory Graph used as the
// graph-object input of the embedding pipeline.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - float64 weights carried unchanged into the adjacency matrix
//   - Deterministic ordering: Vertices(), NeighborIDs() and Edges() follow
//     vertex insertion order, which is the row order of every matrix built
//     from the graph
//
// Core Methods:
//
//	AddVertex(id string) error                  // O(1)
//	AddEdge(from, to string, w float64) error   // O(1), creates endpoints
//	RemoveEdge(from, to string) error           // O(1)
//	InducedSubgraph(ids []string) (*Graph, error)
//	Clone() *Graph
//
// Errors are package sentinels (ErrVertexNotFound, ErrLoopNotAllowed, ...)
// matched with errors.Is.
package core
