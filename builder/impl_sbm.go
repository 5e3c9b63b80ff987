// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// impl_sbm.go - implementation of StochasticBlock(sizes, probs) constructor.
//
// Model:
//   - Vertices are partitioned into consecutive blocks: block b holds
//     sizes[b] vertices. An edge between u ∈ block a and v ∈ block b is
//     included independently with probability probs[a][b].
//   - Undirected graphs require a symmetric probs matrix.
//
// Contract:
//   - len(sizes) ≥ 1 and every size ≥ 1 (else ErrTooFewVertices).
//   - probs is len(sizes)×len(sizes) (else ErrBadBlocks); entries in [0,1].
//   - cfg.rng is required when any entry is strictly inside (0,1).
//
// Complexity: O(N²) Bernoulli trials for N = Σ sizes.

package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	methodSBM    = "StochasticBlock"
	minBlocks    = 1
	minBlockSize = 1
)

// StochasticBlock returns a Constructor sampling a stochastic block model.
// sizes and probs are copied so later mutation by the caller has no effect.
func StochasticBlock(sizes []int, probs [][]float64) Constructor {
	sz := append([]int(nil), sizes...)
	pr := make([][]float64, len(probs))
	for i := range probs {
		pr[i] = append([]float64(nil), probs[i]...)
	}

	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodSBM, "blocks", len(sz), minBlocks); err != nil {
			return err
		}
		for b, n := range sz {
			if err := validateMin(methodSBM, fmt.Sprintf("sizes[%d]", b), n, minBlockSize); err != nil {
				return err
			}
		}

		return sampleBlocks(methodSBM, g, cfg, sz, pr)
	}
}

// BlockLabels returns the block index of every vertex for the given sizes,
// in the vertex order StochasticBlock uses.
func BlockLabels(sizes []int) []int {
	var out []int
	for b, n := range sizes {
		for i := 0; i < n; i++ {
			out = append(out, b)
		}
	}

	return out
}

// sampleBlocks validates probs against sizes and the graph mode, adds the
// vertices and runs the Bernoulli trials in stable (i asc, j asc) order.
func sampleBlocks(method string, g *core.Graph, cfg builderConfig, sizes []int, probs [][]float64) error {
	k := len(sizes)
	if len(probs) != k {
		return fmt.Errorf("%s: probs has %d rows, want %d: %w", method, len(probs), k, ErrBadBlocks)
	}
	directed := g.Directed()
	stochastic := false
	var a, b int
	for a = 0; a < k; a++ {
		if len(probs[a]) != k {
			return fmt.Errorf("%s: probs row %d has %d cols, want %d: %w", method, a, len(probs[a]), k, ErrBadBlocks)
		}
		for b = 0; b < k; b++ {
			if err := validateProbability(method, probs[a][b]); err != nil {
				return err
			}
			if !directed && probs[a][b] != probs[b][a] {
				return fmt.Errorf("%s: probs[%d][%d] != probs[%d][%d] on undirected graph: %w", method, a, b, b, a, ErrBadBlocks)
			}
			if probs[a][b] > probMin && probs[a][b] < probMax {
				stochastic = true
			}
		}
	}
	if stochastic && cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	labels := BlockLabels(sizes)
	n := len(labels)
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}

	loops := g.Looped()
	var (
		i, j int
		p    float64
		u, v string
	)
	for i = 0; i < n; i++ {
		u = cfg.id(i)
		for j = 0; j < n; j++ {
			if i == j && !(directed && loops) {
				continue
			}
			if !directed && j < i {
				continue
			}
			p = probs[labels[i]][labels[j]]
			if p == probMin {
				continue
			}
			if p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			v = cfg.id(j)
			if err := g.AddEdge(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
			}
		}
	}

	return nil
}
