// Package matrix offers the dense linear-algebra layer of the embedding
// pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors and
//     copy-based submatrix extraction (Induced).
//   - Kernels: Mul, Transpose, VStack, RowSums, RowAbsSums, AllClose.
//   - Factorizations through gonum: ThinSVD, SymEigen, QRThin and the
//     Moore–Penrose pseudoinverse Pinv.
//   - AdjacencyFromGraph, converting a core.Graph into an N×N adjacency
//     matrix keyed by vertex insertion order.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrAsymmetry, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
