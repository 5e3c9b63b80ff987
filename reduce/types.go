// SPDX-License-Identifier: MIT

package reduce

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects the factorization backend used by SelectSVD.
type Algorithm int

const (
	// Randomized is the Halko range-finder SVD.
	Randomized Algorithm = iota
	// Full is the dense thin SVD.
	Full
	// Truncated is the symmetric eigendecomposition ordered by |λ|.
	Truncated
)

// Defaults applied by callers that do not configure the reducer.
const (
	DefaultAlgorithm  = Randomized
	DefaultIterations = 5
	DefaultElbows     = 2

	// oversample is the number of extra random directions in the range finder.
	oversample = 10
)

var (
	// ErrInvalidComponents indicates d larger than min(rows, cols).
	ErrInvalidComponents = errors.New("reduce: invalid number of components")

	// ErrInvalidIterations indicates a negative power-iteration count.
	ErrInvalidIterations = errors.New("reduce: iterations must be >= 0")

	// ErrUnknownAlgorithm indicates an Algorithm value or name outside the supported set.
	ErrUnknownAlgorithm = errors.New("reduce: unknown algorithm")

	// ErrNilRNG indicates the randomized algorithm was requested without a generator.
	ErrNilRNG = errors.New("reduce: randomized algorithm requires a *rand.Rand")

	// ErrEmptySpectrum indicates SelectDimension received no singular values.
	ErrEmptySpectrum = errors.New("reduce: empty singular value spectrum")

	// ErrInvalidElbows indicates a non-positive elbow count.
	ErrInvalidElbows = errors.New("reduce: number of elbows must be > 0")
)

var algorithmNames = map[Algorithm]string{
	Randomized: "randomized",
	Full:       "full",
	Truncated:  "truncated",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler so Algorithm round-trips
// through YAML and msgpack as its name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
