// SPDX-License-Identifier: MIT

package embed

import (
	"math/rand"
	"sort"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns the model-scoped generator.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// drawWithoutReplacement returns k distinct values from 0..n-1 in ascending
// order, using a partial Fisher–Yates shuffle driven by rng.
//
// Complexity: O(n) time and space, plus O(k log k) for the sort.
func drawWithoutReplacement(n, k int, rng *rand.Rand) []int {
	perm := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	out := perm[:k:k]
	sort.Ints(out)

	return out
}
