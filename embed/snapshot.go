// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// Snapshot is the serializable fitted state of a model. The random
// generator is not captured: a restored model is re-seeded from
// Settings.Seed.
type Snapshot struct {
	Settings      Settings      `msgpack:"settings"`
	Vertices      []string      `msgpack:"vertices"`
	InSample      []int         `msgpack:"in_sample"`
	Latent        [][]float64   `msgpack:"latent"`
	Singular      []float64     `msgpack:"singular"`
	Base          [][]float64   `msgpack:"base"`
	CommittedSeqs []int         `msgpack:"committed_seqs"`
	Committed     [][]float64   `msgpack:"committed"`
	NextSeq       int           `msgpack:"next_seq"`
	Sample        SampleResult  `msgpack:"sample"`
	Warnings      []Warning     `msgpack:"warnings"`
}

// Snapshot exports the fitted state.
func (m *OOSE) Snapshot() (*Snapshot, error) {
	if m.st == nil {
		return nil, fmt.Errorf("Snapshot: %w", ErrNotFitted)
	}
	seqs, rows := m.st.committed.entries()

	return &Snapshot{
		Settings:      m.Settings(),
		Vertices:      m.st.index.Labels(),
		InSample:      append([]int(nil), m.st.inSample...),
		Latent:        m.st.latent.left.ToRows(),
		Singular:      append([]float64(nil), m.st.latent.singular...),
		Base:          m.st.base.ToRows(),
		CommittedSeqs: seqs,
		Committed:     rows,
		NextSeq:       m.st.committed.next,
		Sample:        m.st.sample,
		Warnings:      append([]Warning(nil), m.st.warnings...),
	}, nil
}

// Restore rebuilds a fitted model from a snapshot. opts are applied on top
// of the snapshot settings, which is how a warning handler is reattached.
//
// Errors: ErrNilInput, ErrInvalidOption, ErrDimensionMismatch (inconsistent shapes).
func Restore(s *Snapshot, opts ...Option) (*OOSE, error) {
	if s == nil {
		return nil, fmt.Errorf("Restore: %w", ErrNilInput)
	}
	cfg := s.Settings
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("Restore: %w", err)
	}
	if len(s.Vertices) == 0 {
		return nil, fmt.Errorf("Restore: %w", ErrEmptyGraph)
	}

	left, err := matrix.NewDenseFrom(s.Latent)
	if err != nil {
		return nil, fmt.Errorf("Restore: latent: %w", err)
	}
	d := left.Cols()
	if left.Rows() != len(s.InSample) || d != len(s.Singular) {
		return nil, fmt.Errorf("Restore: %w: latent %dx%d, %d in-sample, %d singular values",
			ErrDimensionMismatch, left.Rows(), d, len(s.InSample), len(s.Singular))
	}
	for _, p := range s.InSample {
		if p < 0 || p >= len(s.Vertices) {
			return nil, fmt.Errorf("Restore: %w: position %d", ErrInSampleIndex, p)
		}
	}
	base, err := matrix.NewDenseFrom(s.Base)
	if err != nil {
		return nil, fmt.Errorf("Restore: base: %w", err)
	}
	if base.Cols() != d {
		return nil, fmt.Errorf("Restore: %w: base has %d columns, want %d", ErrDimensionMismatch, base.Cols(), d)
	}
	if len(s.CommittedSeqs) != len(s.Committed) {
		return nil, fmt.Errorf("Restore: %w: %d sequence numbers for %d committed rows",
			ErrDimensionMismatch, len(s.CommittedSeqs), len(s.Committed))
	}
	for _, r := range s.Committed {
		if len(r) != d {
			return nil, fmt.Errorf("Restore: %w: committed row has %d values, want %d", ErrDimensionMismatch, len(r), d)
		}
	}

	cache := newCommittedCache(cfg.CommittedLimit)
	cache.restore(s.CommittedSeqs, s.Committed, s.NextSeq)

	return &OOSE{
		cfg: cfg,
		st: &state{
			index:     newVertexIndex(append([]string(nil), s.Vertices...)),
			inSample:  append([]int(nil), s.InSample...),
			latent:    &latentSpace{left: left, singular: append([]float64(nil), s.Singular...)},
			sample:    s.Sample,
			warnings:  append([]Warning(nil), s.Warnings...),
			base:      base,
			committed: cache,
		},
	}, nil
}
