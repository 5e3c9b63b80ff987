// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"math/rand"

	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/PerifanosPrometheus/graspologic/reduce"
)

// Topology is the edge-direction capability of a fitted model.
// Only Undirected is implemented; a Directed model would carry a right
// latent matrix next to the left one and project onto their concatenation.
type Topology int

const (
	// Undirected graphs have a symmetric adjacency and a single latent matrix.
	Undirected Topology = iota
	// Directed is reserved; Fit rejects directed input with ErrDirectedGraph.
	Directed
)

func (t Topology) String() string {
	if t == Directed {
		return "directed"
	}

	return "undirected"
}

// latentSpace is the output of the latent space builder.
type latentSpace struct {
	left     *matrix.Dense // n_s × d
	right    *matrix.Dense // nil for Undirected
	singular []float64     // length d, descending
}

// buildLatent factorizes the in-sample adjacency as.
//
// Implementation:
//   - Stage 1: optional diagonal augmentation A_ii = Σ_j A_ij / (n_s-1).
//   - Stage 2: reduce.SelectSVDElbows with the configured dimension,
//     elbow count, backend and iterations.
//   - Stage 3: shape checks on the reducer output.
func buildLatent(as *matrix.Dense, cfg *Settings, rng *rand.Rand) (*latentSpace, error) {
	if err := matrix.ValidateSymmetric(as, symmetryTol); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectedGraph, err)
	}
	ns := as.Rows()
	if cfg.Components > ns {
		return nil, fmt.Errorf("%w: components %d exceed in-sample size %d", ErrInvalidOption, cfg.Components, ns)
	}

	a := as
	if cfg.DiagonalAug && ns > 1 {
		var err error
		if a, err = augmentDiagonal(as); err != nil {
			return nil, err
		}
	}

	z, s, err := reduce.SelectSVDElbows(a, cfg.Components, cfg.Elbows, cfg.Algorithm, cfg.Iterations, rng)
	if err != nil {
		return nil, err
	}
	if z.Rows() != ns || z.Cols() != len(s) {
		return nil, fmt.Errorf("buildLatent: reducer returned %dx%d with %d values: %w",
			z.Rows(), z.Cols(), len(s), matrix.ErrDimensionMismatch)
	}

	return &latentSpace{left: z, singular: s}, nil
}

// augmentDiagonal returns a copy of a whose diagonal holds the off-diagonal
// row sum divided by n-1.
func augmentDiagonal(a *matrix.Dense) (*matrix.Dense, error) {
	n := a.Rows()
	out := a.Clone().(*matrix.Dense)
	var (
		i, j int
		v, s float64
	)
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = a.At(i, j)
			s += v
		}
		if err := out.Set(i, i, s/float64(n-1)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
