// Package embed implements out-of-sample adjacency spectral embedding.
//
// A model learns latent positions for a connected subset of a graph's
// vertices and then places further vertices in the same space from their
// similarity to that subset alone.
//
// Pipeline
//
//   - Sampler: picks the in-sample set, either as configured or by drawing
//     ceil(p·N) vertices without replacement, redrawing up to K times until
//     the induced subgraph is connected. Disconnection is reported as a
//     Warning, never as an error.
//   - Latent space builder: factorizes the in-sample adjacency with
//     reduce.SelectSVD into Z (n_s × d) and its singular values.
//   - Projector: Predict maps a similarity matrix X (m × n_ref) to
//     X · pinv(Z)ᵀ. Rows with no similarity mass are rejected.
//   - Assembler: FitPredict embeds every vertex of a graph and returns the
//     rows in the original vertex order.
//
// Semi-supervised mode
//
//	With WithSemiSupervised(true) every Predict appends its output to the
//	reference embedding, so the next call must supply one more similarity
//	column per previously embedded vertex. WithCommittedLimit bounds that
//	growth by evicting the oldest appended rows. The in-sample rows are
//	never evicted.
//
// Reproducibility
//
//	Each model owns a *rand.Rand seeded at construction (WithSeed; 0 picks
//	a fixed default). Two models built with the same options and fitted on
//	the same graph choose the same in-sample set and latent positions.
//
// Concurrency
//
//	A model is not safe for concurrent use. Independent models may be used
//	from different goroutines.
package embed
