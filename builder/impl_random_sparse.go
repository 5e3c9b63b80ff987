// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each admissible edge independently with prob p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed: ordered pairs (i,j); self-loops iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required only for 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. One rng.Float64 per trial.

package builder

import (
	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}

		// One block with a 1×1 probability matrix is exactly G(n,p).
		return sampleBlocks(methodRandomSparse, g, cfg, []int{n}, [][]float64{{p}})
	}
}
