// Package bfs provides tunable options and error definitions
// for breadth-first search over adjacency matrices.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a row of the matrix.
	ErrStartOutOfRange = errors.New("bfs: start index out of range")

	// ErrMatrixNil is returned if a nil matrix is passed.
	ErrMatrixNil = errors.New("bfs: matrix is nil")

	// ErrNotSquare is returned for non-square adjacency input.
	ErrNotSquare = errors.New("bfs: adjacency matrix must be square")

	// ErrEmptyMatrix is returned when the adjacency matrix has no vertices.
	ErrEmptyMatrix = errors.New("bfs: adjacency matrix has no vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Directed follows only A[u][v] != 0 when true. The default treats an
	// edge as present when either A[u][v] or A[v][u] is non-zero.
	Directed bool

	err error
}

// DefaultOptions returns Options with no depth limit, a background
// context and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithDirected restricts traversal to out-edges (row-wise non-zeros).
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertex indices in visit sequence.
//   - Depth: Depth[v] is the hop distance from the start, -1 if unreached.
//   - Parent: Parent[v] is the predecessor in the BFS tree, -1 for the
//     start vertex and unreached vertices.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the vertex path from the start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
