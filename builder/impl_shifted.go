// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_shifted.go - index offsetting for disjoint unions.
//
// Shifted(k, c) runs c with every local vertex index i mapped to ID
// idFn(k+i). Stacking Shifted constructors with non-overlapping ranges in a
// single BuildGraph call yields their disjoint union; overlapping ranges
// share vertices and fail on the first duplicated edge.

package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const methodShifted = "Shifted"

// Shifted returns c with its vertex indices offset by k (k ≥ 0).
func Shifted(k int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodShifted, "k", k, 0); err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodShifted, ErrConstructFailed)
		}
		cfg.offset += k

		return c(g, cfg)
	}
}
