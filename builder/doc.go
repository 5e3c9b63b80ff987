// Package builder provides deterministic graph generators used as fixtures
// for the embedding pipeline and by the simulate command.
//
// The package offers:
//
//   - One orchestrator, BuildGraph(gopts, bopts, cons...), creating a
//     core.Graph and running constructors in order.
//   - Classic topologies: Path, Cycle, Complete, Star.
//   - Random models: RandomSparse (Erdős–Rényi G(n,p)) and StochasticBlock
//     (a stochastic block model with per-block-pair probabilities).
//   - Composition: Shifted offsets a constructor's vertex indices so several
//     generators can be stacked into one disjoint union.
//   - Vertex-ID schemes (IDFn) and edge-weight policies (WeightFn).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical
//     graphs.
//   - Option constructors panic on meaningless input (nil functions,
//     negative weights). Constructors never panic; they return sentinel
//     errors wrapped with the method name.
package builder
