// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"math"

	"github.com/PerifanosPrometheus/graspologic/reduce"
)

// Defaults for a model built with no options.
const (
	DefaultInSampleProportion = 1.0
	DefaultConnectedAttempts  = 100
	DefaultZeroRowTolerance   = 1e-12
)

// Option configures an OOSE model at construction time.
type Option func(*Settings)

// Settings is the validated configuration of a model. It is exported so
// that snapshots can carry it; build one through Option values.
type Settings struct {
	Components        int              `msgpack:"components" yaml:"components"`
	Elbows            int              `msgpack:"elbows" yaml:"elbows"`
	Algorithm         reduce.Algorithm `msgpack:"algorithm" yaml:"algorithm"`
	Iterations        int              `msgpack:"iterations" yaml:"iterations"`
	CheckLCC          bool             `msgpack:"check_lcc" yaml:"check_lcc"`
	Proportion        float64          `msgpack:"proportion" yaml:"proportion"`
	Indices           []int            `msgpack:"indices" yaml:"indices"`
	Vertices          []string         `msgpack:"vertices" yaml:"vertices"`
	ConnectedAttempts int              `msgpack:"connected_attempts" yaml:"connected_attempts"`
	SemiSupervised    bool             `msgpack:"semi_supervised" yaml:"semi_supervised"`
	Seed              int64            `msgpack:"seed" yaml:"seed"`
	ZeroRowTolerance  float64          `msgpack:"zero_row_tolerance" yaml:"zero_row_tolerance"`
	CommittedLimit    int              `msgpack:"committed_limit" yaml:"committed_limit"`
	DiagonalAug       bool             `msgpack:"diag_aug" yaml:"diag_aug"`

	warn func(Warning)
}

func defaultSettings() Settings {
	return Settings{
		Elbows:            reduce.DefaultElbows,
		Algorithm:         reduce.DefaultAlgorithm,
		Iterations:        reduce.DefaultIterations,
		CheckLCC:          true,
		Proportion:        DefaultInSampleProportion,
		ConnectedAttempts: DefaultConnectedAttempts,
		ZeroRowTolerance:  DefaultZeroRowTolerance,
	}
}

// WithComponents fixes the embedding dimension d. 0 selects d automatically.
func WithComponents(d int) Option {
	return func(s *Settings) { s.Components = d }
}

// WithElbows sets the elbow count used when d is selected automatically.
func WithElbows(n int) Option {
	return func(s *Settings) { s.Elbows = n }
}

// WithAlgorithm selects the factorization backend.
func WithAlgorithm(a reduce.Algorithm) Option {
	return func(s *Settings) { s.Algorithm = a }
}

// WithIterations sets the power-iteration count of the randomized backend.
func WithIterations(n int) Option {
	return func(s *Settings) { s.Iterations = n }
}

// WithCheckLCC toggles every connectivity check. With false, the sampler
// takes a single draw and emits no connectivity warnings.
func WithCheckLCC(on bool) Option {
	return func(s *Settings) { s.CheckLCC = on }
}

// WithInSampleProportion sets the fraction p ∈ (0,1] of vertices drawn in sample.
func WithInSampleProportion(p float64) Option {
	return func(s *Settings) { s.Proportion = p }
}

// WithInSampleIndices fixes the in-sample set by vertex position.
// The order given is the row order of the latent matrix.
func WithInSampleIndices(idx ...int) Option {
	return func(s *Settings) {
		s.Indices = append([]int{}, idx...)
		s.Vertices = nil
	}
}

// WithInSampleVertices fixes the in-sample set by vertex label.
func WithInSampleVertices(ids ...string) Option {
	return func(s *Settings) {
		s.Vertices = append([]string{}, ids...)
		s.Indices = nil
	}
}

// WithConnectedAttempts sets the retry budget K of the connectivity-aware sampler.
func WithConnectedAttempts(k int) Option {
	return func(s *Settings) { s.ConnectedAttempts = k }
}

// WithSemiSupervised makes Predict fold its output into the reference embedding.
func WithSemiSupervised(on bool) Option {
	return func(s *Settings) { s.SemiSupervised = on }
}

// WithSeed seeds the model's random generator. 0 selects a fixed default seed.
func WithSeed(seed int64) Option {
	return func(s *Settings) { s.Seed = seed }
}

// WithZeroRowTolerance sets the threshold on |row sum| at or below which a
// similarity row is rejected as zero. 0 rejects only rows summing exactly to 0.
func WithZeroRowTolerance(tol float64) Option {
	return func(s *Settings) { s.ZeroRowTolerance = tol }
}

// WithCommittedLimit bounds the number of out-of-sample rows kept in the
// reference embedding under semi-supervised mode; the oldest are evicted
// first. 0 means unbounded.
func WithCommittedLimit(n int) Option {
	return func(s *Settings) { s.CommittedLimit = n }
}

// WithDiagonalAugmentation replaces the in-sample diagonal with
// degree/(n_s-1) before factorization.
func WithDiagonalAugmentation(on bool) Option {
	return func(s *Settings) { s.DiagonalAug = on }
}

// WithWarningHandler registers fn to receive connectivity warnings as they occur.
func WithWarningHandler(fn func(Warning)) Option {
	return func(s *Settings) { s.warn = fn }
}

// explicit reports whether an in-sample list was configured.
func (s *Settings) explicit() bool {
	return s.Indices != nil || s.Vertices != nil
}

// validate checks option ranges. Index bounds are checked at fit time.
func (s *Settings) validate() error {
	switch {
	case s.Components < 0:
		return fmt.Errorf("%w: components %d < 0", ErrInvalidOption, s.Components)
	case s.Elbows <= 0:
		return fmt.Errorf("%w: elbows %d <= 0", ErrInvalidOption, s.Elbows)
	case s.Iterations < 0:
		return fmt.Errorf("%w: iterations %d < 0", ErrInvalidOption, s.Iterations)
	case s.ConnectedAttempts < 0:
		return fmt.Errorf("%w: connected attempts %d < 0", ErrInvalidOption, s.ConnectedAttempts)
	case s.CommittedLimit < 0:
		return fmt.Errorf("%w: committed limit %d < 0", ErrInvalidOption, s.CommittedLimit)
	case !(s.ZeroRowTolerance >= 0) || math.IsInf(s.ZeroRowTolerance, 0):
		return fmt.Errorf("%w: zero-row tolerance %v", ErrInvalidOption, s.ZeroRowTolerance)
	}
	if _, err := s.Algorithm.MarshalText(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	if !s.explicit() {
		if !(s.Proportion > 0 && s.Proportion <= 1) {
			return fmt.Errorf("%w: proportion %v", ErrNoInSample, s.Proportion)
		}
		return nil
	}
	if len(s.Indices)+len(s.Vertices) == 0 {
		return fmt.Errorf("%w: empty in-sample list", ErrNoInSample)
	}
	seen := make(map[int]struct{}, len(s.Indices))
	for _, i := range s.Indices {
		if i < 0 {
			return fmt.Errorf("%w: index %d", ErrInSampleIndex, i)
		}
		if _, dup := seen[i]; dup {
			return fmt.Errorf("%w: duplicate index %d", ErrInSampleIndex, i)
		}
		seen[i] = struct{}{}
	}
	names := make(map[string]struct{}, len(s.Vertices))
	for _, v := range s.Vertices {
		if _, dup := names[v]; dup {
			return fmt.Errorf("%w: duplicate vertex %q", ErrInSampleIndex, v)
		}
		names[v] = struct{}{}
	}

	return nil
}
