// SPDX-License-Identifier: MIT

// Package graspologic embeds graphs into a low-dimensional latent space
// with out-of-sample adjacency spectral embedding.
//
// A connected sample of the vertices is embedded through a truncated SVD
// of its adjacency matrix. Every other vertex is then placed by projecting
// its similarity to the sample onto the pseudoinverse of the sample's
// latent positions, so large graphs never need a full decomposition.
//
// The module is organized as flat subpackages:
//
//	core/      - thread-safe Graph with string vertex IDs
//	matrix/    - row-major Dense matrices, adjacency export, SVD and pseudoinverse
//	bfs/       - traversal and connected components
//	reduce/    - SVD backends and elbow dimension selection
//	embed/     - the OOSE model: Fit, Predict, FitPredict, snapshots
//	builder/   - deterministic and random graph generators (path, SBM, G(n,p), ...)
//	graphexpr/ - "a -- b [w];" text format for graphs
//	config/    - YAML + environment configuration
//	store/     - badger-backed model catalog
//	cmd/graspologic - command line front end
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.StochasticBlock([]int{50, 50}, [][]float64{{0.5, 0.05}, {0.05, 0.5}}))
//	m, _ := embed.New(embed.WithInSampleProportion(0.5), embed.WithComponents(2))
//	z, _ := m.FitPredict(g) // 100 × 2
package graspologic
