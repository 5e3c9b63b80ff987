// SPDX-License-Identifier: MIT

// Package core defines the Graph and Edge types consumed by the embedding
// pipeline, together with the sentinel errors and the NewGraph constructor.
//
// A Graph keeps its vertex labels in insertion order. That order is the
// canonical vertex ordering used by adjacency materialization (matrix
// package) and therefore by every embedding row produced downstream.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is NaN or ±Inf.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - an edge between the same endpoints already exists.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultWeight is the weight stored by AddEdge callers that have no weight
// of their own (unweighted graphs are 0/1 adjacency).
const DefaultWeight = 1.0

// Edge is a read-only snapshot of one stored edge.
//
// For undirected graphs each edge is reported once, with From preceding To
// in vertex insertion order.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the numeric adjacency value carried into A[From][To].
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected marks the graph as directed (true) or undirected (false).
// Directed graphs store only the from→to entry.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph with ordered string vertex labels and float64
// edge weights.
//
// mu guards every field below it. order holds vertex IDs in insertion order
// and pos is its inverse. adj[u][v] is the weight of the u→v entry; for
// undirected graphs adj[v][u] mirrors it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph).
	directed   bool
	allowLoops bool

	// Storage
	order     []string
	pos       map[string]int
	adj       map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and rejects self-loops.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pos: make(map[string]int),
		adj: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
