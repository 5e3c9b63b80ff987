// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/core"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// validateMin ensures got ≥ min, returning ErrTooFewVertices with context.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if !(p >= probMin && p <= probMax) { // also rejects NaN
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// addVertices inserts n vertices with IDs cfg.id(0..n-1).
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
