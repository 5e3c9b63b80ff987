// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; edges 0→i for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star S_n with hub cfg.id(0).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}

		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			leaf := cfg.id(i)
			if err := g.AddEdge(hub, leaf, cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}
