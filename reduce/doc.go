// Package reduce turns a (typically symmetric) adjacency matrix into a
// low-rank latent-position matrix.
//
// What
//
//   - SelectSVD factorizes a matrix and returns U·diag(√σ) for the top d
//     singular triplets together with σ in descending order.
//   - SelectDimension picks d automatically from a singular-value spectrum
//     with the Zhu & Ghodsi profile-likelihood elbow.
//
// Algorithms
//
//   - Full:       dense thin SVD (gonum mat.SVD).
//   - Truncated:  symmetric eigendecomposition (gonum mat.EigenSym) ordered
//     by |λ|; the input must be symmetric.
//   - Randomized: Halko–Martinsson–Tropp range finder with power iterations,
//     orthonormalized by thin QR, then an exact SVD of the small projection.
//     Draws its Gaussian test matrix from the caller's *rand.Rand.
//
// Signs
//
//	Singular vectors are defined up to sign. Every column of U is flipped so
//	that its largest-magnitude entry is positive, making results comparable
//	across algorithms.
package reduce
