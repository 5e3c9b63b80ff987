// SPDX-License-Identifier: MIT
// Package: graspologic/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, block size) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadBlocks indicates an inconsistent block structure: the probability
// matrix is not len(sizes)×len(sizes), or is asymmetric for an undirected
// graph.
var ErrBadBlocks = errors.New("builder: inconsistent block structure")

// ErrConstructFailed indicates a programmer error in constructor
// composition (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
