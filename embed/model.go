// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/plan-systems/klog"
)

// OOSE is an out-of-sample adjacency spectral embedding model.
//
// A model is fitted once and then queried serially. It is not safe for
// concurrent use: semi-supervised Predict replaces the reference embedding.
type OOSE struct {
	cfg Settings
	st  *state // nil until a fit succeeds
}

// state is everything a successful fit produces.
type state struct {
	index    *VertexIndex
	inSample []int
	latent   *latentSpace
	sample   SampleResult
	warnings []Warning

	// base holds reference rows that are never evicted: Z after Fit, the full
	// embedding after a semi-supervised FitPredict.
	base      *matrix.Dense
	committed *committedCache

	ref   *matrix.Dense // base stacked over committed rows; nil when stale
	pinvT *matrix.Dense // pinv(ref)ᵀ; nil when stale
}

// New validates opts and returns an unfitted model.
//
// Errors: ErrNoInSample, ErrInvalidOption, ErrInSampleIndex.
func New(opts ...Option) (*OOSE, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &OOSE{cfg: cfg}, nil
}

// Fit selects the in-sample vertices of g and builds their latent positions.
// g may be a *core.Graph, a *matrix.Dense or other matrix.Matrix, or a
// [][]float64 adjacency. On error the model keeps its previous state.
// Every fit draws from a generator freshly seeded with the model seed, so
// refitting the same graph selects the same in-sample vertices.
//
// Errors: ErrNilInput, ErrUnsupportedInput, ErrDirectedGraph, ErrEmptyGraph,
// ErrInSampleIndex, ErrInvalidOption, plus reducer and matrix errors.
func (m *OOSE) Fit(g any) error {
	st, _, err := m.fit(g)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	m.st = st

	return nil
}

// fit runs sampler and latent builder without touching m.st.
func (m *OOSE) fit(g any) (*state, *matrix.Dense, error) {
	in, err := resolveInput(g)
	if err != nil {
		return nil, nil, err
	}
	explicit, err := resolveExplicit(&m.cfg, in.index)
	if err != nil {
		return nil, nil, err
	}

	rng := rngFromSeed(m.cfg.Seed)
	ws := &warnings{handler: m.cfg.warn}
	smp := &sampler{adj: in.adj, cfg: &m.cfg, rng: rng, warn: ws}
	idx, res, err := smp.sample(explicit)
	if err != nil {
		return nil, nil, err
	}
	as, err := in.adj.Induced(idx, idx)
	if err != nil {
		return nil, nil, err
	}
	lat, err := buildLatent(as, &m.cfg, rng)
	if err != nil {
		return nil, nil, err
	}
	klog.V(2).Infof("embed: fitted n=%d in-sample=%d d=%d attempts=%d warnings=%d",
		in.index.Len(), len(idx), lat.left.Cols(), res.Attempts, len(ws.list))

	return &state{
		index:     in.index,
		inSample:  idx,
		latent:    lat,
		sample:    res,
		warnings:  ws.list,
		base:      lat.left,
		committed: newCommittedCache(m.cfg.CommittedLimit),
	}, in.adj, nil
}

// Fitted reports whether a fit has succeeded.
func (m *OOSE) Fitted() bool { return m.st != nil }

// Settings returns a copy of the model configuration.
func (m *OOSE) Settings() Settings {
	s := m.cfg
	s.Indices = append([]int(nil), m.cfg.Indices...)
	s.Vertices = append([]string(nil), m.cfg.Vertices...)

	return s
}

// Topology reports the edge-direction capability of the model.
func (m *OOSE) Topology() Topology { return Undirected }

// Components returns the fitted embedding dimension d, or 0 before Fit.
func (m *OOSE) Components() int {
	if m.st == nil {
		return 0
	}

	return m.st.latent.left.Cols()
}

// LatentLeft returns a copy of the in-sample latent positions Z (n_s × d),
// or nil before Fit.
func (m *OOSE) LatentLeft() *matrix.Dense {
	if m.st == nil {
		return nil
	}

	return m.st.latent.left.Clone().(*matrix.Dense)
}

// LatentRight is nil for undirected models.
func (m *OOSE) LatentRight() *matrix.Dense {
	if m.st == nil || m.st.latent.right == nil {
		return nil
	}

	return m.st.latent.right.Clone().(*matrix.Dense)
}

// SingularValues returns the d retained singular values, descending.
func (m *OOSE) SingularValues() []float64 {
	if m.st == nil {
		return nil
	}

	return append([]float64(nil), m.st.latent.singular...)
}

// InSampleIndices returns the in-sample vertex positions in latent row order.
func (m *OOSE) InSampleIndices() []int {
	if m.st == nil {
		return nil
	}

	return append([]int(nil), m.st.inSample...)
}

// InSampleVertices returns the in-sample vertex labels in latent row order.
func (m *OOSE) InSampleVertices() []string {
	if m.st == nil {
		return nil
	}
	out := make([]string, len(m.st.inSample))
	for k, p := range m.st.inSample {
		out[k] = m.st.index.Label(p)
	}

	return out
}

// Vertices returns every vertex label in position order.
func (m *OOSE) Vertices() []string {
	if m.st == nil {
		return nil
	}

	return m.st.index.Labels()
}

// Index returns the vertex index of the last fit, or nil.
func (m *OOSE) Index() *VertexIndex {
	if m.st == nil {
		return nil
	}

	return m.st.index
}

// Sample returns diagnostics of the last in-sample selection.
func (m *OOSE) Sample() SampleResult {
	if m.st == nil {
		return SampleResult{}
	}

	return m.st.sample
}

// Warnings returns the connectivity warnings of the last fit.
func (m *OOSE) Warnings() []Warning {
	if m.st == nil {
		return nil
	}

	return append([]Warning(nil), m.st.warnings...)
}

// ReferenceSize is the column count the next Predict call must supply.
func (m *OOSE) ReferenceSize() int {
	if m.st == nil {
		return 0
	}

	return m.st.base.Rows() + m.st.committed.Len()
}

// ReferenceEmbedding returns a copy of the matrix Predict projects onto.
func (m *OOSE) ReferenceEmbedding() (*matrix.Dense, error) {
	if m.st == nil {
		return nil, fmt.Errorf("ReferenceEmbedding: %w", ErrNotFitted)
	}
	ref, err := m.st.reference()
	if err != nil {
		return nil, fmt.Errorf("ReferenceEmbedding: %w", err)
	}

	return ref.Clone().(*matrix.Dense), nil
}

// reference returns base stacked over the committed rows.
func (st *state) reference() (*matrix.Dense, error) {
	if st.ref != nil {
		return st.ref, nil
	}
	if st.committed.Len() == 0 {
		st.ref = st.base
		return st.ref, nil
	}
	extra, err := matrix.NewDenseFrom(st.committed.rows())
	if err != nil {
		return nil, err
	}
	if st.ref, err = matrix.VStack(st.base, extra); err != nil {
		return nil, err
	}

	return st.ref, nil
}

// invalidate drops the cached reference and pseudoinverse.
func (st *state) invalidate() {
	st.ref, st.pinvT = nil, nil
}
