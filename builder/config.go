// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn      ("0","1","2",...)
//   - rng      = nil              (stochastic constructors demand WithSeed/WithRand)
//   - weightFn = DefaultWeightFn  (constant 1.0, i.e. 0/1 adjacency)
//   - offset   = 0                (index shift applied by Shifted)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value, so Shifted can adjust offset without leaking the
// change to sibling constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	offset   int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id returns the vertex ID for local index i, honoring the Shifted offset.
func (c builderConfig) id(i int) string {
	return c.idFn(c.offset + i)
}

// weight draws the next edge weight from the configured policy.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
