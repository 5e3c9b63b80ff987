// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Undirected: unordered pairs {i,j}, i<j. Directed: ordered pairs i≠j.
//   - No self-loops regardless of the graph's loop policy.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		directed := g.Directed()
		var (
			i, j int
			u, v string
		)
		for i = 0; i < n; i++ {
			u = cfg.id(i)
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				v = cfg.id(j)
				if err := g.AddEdge(u, v, cfg.weight()); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
