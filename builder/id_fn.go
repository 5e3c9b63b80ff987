// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be deterministic: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Matrix inputs to the embedder are labeled the same way, so graphs built
// with this scheme round-trip through both input forms.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn rendering prefix followed by the decimal index,
// e.g. PrefixIDFn("v")(3) → "v3". Panics on an empty prefix.
func PrefixIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("PrefixIDFn: prefix must be non-empty")
	}

	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 0→"0", 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}
