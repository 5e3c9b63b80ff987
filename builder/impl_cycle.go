// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges emitted in stable order i→(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}

		var u, v string
		for i := 0; i < n; i++ {
			u, v = cfg.id(i), cfg.id((i+1)%n)
			if err := g.AddEdge(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
