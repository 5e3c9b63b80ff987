// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices cfg.id(0..n-1); edges i→i+1 for i=0..n-2 in ascending order.
//   - Each edge weight is cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the n-vertex path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}

		var u, v string
		for i := 0; i < n-1; i++ {
			u, v = cfg.id(i), cfg.id(i+1)
			if err := g.AddEdge(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
