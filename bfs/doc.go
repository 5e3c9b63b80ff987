// Package bfs provides breadth-first search over a dense adjacency matrix,
// indexed by vertex position rather than label.
//
// What
//
//   - BFS walks vertices in non-decreasing hop distance from a start index
//     and returns a Result with the visit Order, per-vertex Depth and the
//     Parent links of the BFS tree.
//   - Components, IsConnected and LargestComponent answer the connectivity
//     questions the embedding sampler asks of induced subgraphs.
//
// Edges
//
//	Any non-zero entry is an edge; weights are not interpreted. By default
//	an edge u–v exists when A[u][v] or A[v][u] is non-zero, so components
//	are weakly connected. WithDirected follows row entries only.
//	Self-loops are ignored.
//
// Determinism
//
//	Neighbors are visited in ascending index order, so results are
//	reproducible for a given matrix.
//
// Complexity (N = vertices, E = edges)
//
//   - Time:   O(N²) to read the dense matrix plus O(N + E) for the walk.
//   - Memory: O(N + E).
package bfs
