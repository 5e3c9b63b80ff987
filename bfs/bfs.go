// Package bfs provides breadth-first search over a square adjacency matrix,
// returning hop distances, parent links and visit order by vertex index.
package bfs

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search over the adjacency matrix m starting at
// vertex index start. Any non-zero entry is an edge; weights are ignored.
//
// Errors: ErrMatrixNil, ErrNotSquare, ErrEmptyMatrix, ErrStartOutOfRange,
// ErrOptionViolation, context errors, or the OnVisit hook error.
//
// Complexity: O(N²) to read the matrix, then O(N + E) for the walk.
func BFS(m matrix.Matrix, start int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	adj, err := neighborLists(m, o.Directed)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= len(adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, len(adj))
	}

	w := newWalker(adj, o)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func newWalker(adj [][]int, o Options) *walker {
	n := len(adj)
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return &walker{adj: adj, opts: o, queue: make([]queueItem, 0, n), res: res}
}

// neighborLists reads m once into ascending neighbor lists.
func neighborLists(m matrix.Matrix, directed bool) ([][]int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMatrixNil, err)
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, n, m.Cols())
	}
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	adj := make([][]int, n)
	var (
		i, j   int
		uv, vu float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			uv, _ = d.At(i, j)
			if !directed {
				vu, _ = d.At(j, i)
			}
			if uv != 0 || vu != 0 {
				adj[i] = append(adj[i], j)
			}
			vu = 0
		}
	}

	return adj, nil
}

// enqueue marks v reached at depth d from parent and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.v] {
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, next, item.v)
			}
		}
	}

	return nil
}
