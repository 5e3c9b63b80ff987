// SPDX-License-Identifier: MIT

package embed

import "errors"

// Sentinel errors returned by the embedding model. Every error is wrapped
// with the failing operation ("New: ...", "Fit: ...", "Predict: ...") and
// must be matched with errors.Is.
var (
	// ErrNoInSample indicates neither a proportion in (0,1] nor an explicit
	// in-sample list was configured.
	ErrNoInSample = errors.New("embed: must give either a proportion of in-sample vertices or a list of in-sample vertices")

	// ErrUnsupportedInput indicates Fit received a value that is neither a
	// graph nor a dense matrix.
	ErrUnsupportedInput = errors.New("embed: only *core.Graph, matrix.Matrix and [][]float64 inputs are supported")

	// ErrDirectedGraph indicates a directed graph or an asymmetric adjacency matrix.
	ErrDirectedGraph = errors.New("embed: only undirected (symmetric) graphs are supported")

	// ErrDimensionMismatch indicates the similarity column count differs from the reference size.
	ErrDimensionMismatch = errors.New("embed: similarity columns must match the reference embedding size")

	// ErrZeroSimilarity indicates a similarity row with no weight on any reference vertex.
	ErrZeroSimilarity = errors.New("embed: at least one similarity vector is the zero vector; embed vertices with non-zero similarity first with semi-supervised mode enabled")

	// ErrNotFitted indicates Predict or an accessor was called before Fit.
	ErrNotFitted = errors.New("embed: model is not fitted")

	// ErrInvalidOption indicates an out-of-range option value.
	ErrInvalidOption = errors.New("embed: invalid option")

	// ErrInSampleIndex indicates an explicit in-sample entry that is out of
	// range, duplicated or unknown.
	ErrInSampleIndex = errors.New("embed: invalid in-sample vertex")

	// ErrEmptyGraph indicates a graph or matrix without vertices.
	ErrEmptyGraph = errors.New("embed: graph has no vertices")

	// ErrNilInput indicates a nil graph, matrix or similarity input.
	ErrNilInput = errors.New("embed: nil input")
)
