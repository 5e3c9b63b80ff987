// SPDX-License-Identifier: MIT

package embed

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// committedCache holds out-of-sample rows folded into the reference
// embedding by semi-supervised Predict calls, ordered by commit sequence.
// A positive limit evicts the oldest rows first.
type committedCache struct {
	tree  *redblacktree.Tree // seq (int) → []float64
	next  int
	limit int
}

func newCommittedCache(limit int) *committedCache {
	return &committedCache{tree: redblacktree.NewWithIntComparator(), limit: limit}
}

// Len returns the number of committed rows currently held.
func (c *committedCache) Len() int { return c.tree.Size() }

// add commits rows in order and returns how many old rows were evicted.
func (c *committedCache) add(rows [][]float64) int {
	for _, r := range rows {
		c.tree.Put(c.next, append([]float64(nil), r...))
		c.next++
	}
	evicted := 0
	for c.limit > 0 && c.tree.Size() > c.limit {
		c.tree.Remove(c.tree.Left().Key)
		evicted++
	}

	return evicted
}

// rows returns the committed rows oldest first.
func (c *committedCache) rows() [][]float64 {
	out := make([][]float64, 0, c.tree.Size())
	it := c.tree.Iterator()
	for it.Next() {
		out = append(out, it.Value().([]float64))
	}

	return out
}

// entries returns sequence numbers and rows oldest first, for snapshots.
func (c *committedCache) entries() ([]int, [][]float64) {
	seqs := make([]int, 0, c.tree.Size())
	it := c.tree.Iterator()
	for it.Next() {
		seqs = append(seqs, it.Key().(int))
	}

	return seqs, c.rows()
}

// restore replaces the content with snapshot entries.
func (c *committedCache) restore(seqs []int, rows [][]float64, next int) {
	c.tree.Clear()
	for i, s := range seqs {
		c.tree.Put(s, append([]float64(nil), rows[i]...))
	}
	c.next = next
}

func (c *committedCache) reset() {
	c.tree.Clear()
}
