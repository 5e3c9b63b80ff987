// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/PerifanosPrometheus/graspologic/bfs"
	"github.com/PerifanosPrometheus/graspologic/matrix"
	"github.com/plan-systems/klog"
)

// sizeEpsilon absorbs float noise in p·N before the ceiling (0.6·10 must be 6, not 7).
const sizeEpsilon = 1e-9

// SampleResult describes how the in-sample set of the last fit was chosen.
type SampleResult struct {
	// Attempts is the number of random draws taken; 0 for explicit or full sets.
	Attempts int `msgpack:"attempts"`
	// Connected reports whether the induced in-sample subgraph is connected.
	// Meaningful only when Checked is true.
	Connected bool `msgpack:"connected"`
	// Checked is false when connectivity checks were disabled.
	Checked bool `msgpack:"checked"`
}

// sampleSize returns ceil(p·N) clamped to [1, N].
func sampleSize(p float64, n int) int {
	k := int(math.Ceil(p*float64(n) - sizeEpsilon))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	return k
}

// sampler is the connectivity-aware in-sample selector for one fit.
type sampler struct {
	adj  *matrix.Dense
	cfg  *Settings
	rng  *rand.Rand
	warn *warnings
}

// resolveExplicit maps configured indices or labels to positions, or
// returns nil when no explicit list was configured.
func resolveExplicit(cfg *Settings, index *VertexIndex) ([]int, error) {
	n := index.Len()
	if cfg.Indices != nil {
		for _, i := range cfg.Indices {
			if i >= n {
				return nil, fmt.Errorf("%w: index %d not in [0,%d)", ErrInSampleIndex, i, n)
			}
		}
		return append([]int(nil), cfg.Indices...), nil
	}
	if cfg.Vertices != nil {
		out := make([]int, len(cfg.Vertices))
		for k, label := range cfg.Vertices {
			p, ok := index.Position(label)
			if !ok {
				return nil, fmt.Errorf("%w: unknown vertex %q", ErrInSampleIndex, label)
			}
			out[k] = p
		}
		return out, nil
	}

	return nil, nil
}

// connected reports whether the subgraph induced by idx is connected.
func (s *sampler) connected(idx []int) (bool, error) {
	sub, err := s.adj.Induced(idx, idx)
	if err != nil {
		return false, err
	}

	return bfs.IsConnected(sub)
}

// sample chooses the in-sample positions.
//
// Behavior:
//   - The whole graph is checked once (WarnGraphDisconnected) when CheckLCC is on.
//   - An explicit list is used as given; its induced subgraph is checked once.
//   - A proportion reaching N selects every vertex in position order.
//   - Otherwise up to max(K,1) independent draws of ceil(p·N) vertices without
//     replacement are taken until one induces a connected subgraph; the last
//     draw is kept either way. Without CheckLCC exactly one draw is taken.
func (s *sampler) sample(explicit []int) ([]int, SampleResult, error) {
	var res SampleResult
	n := s.adj.Rows()

	graphOK := false
	if s.cfg.CheckLCC {
		ok, err := bfs.IsConnected(s.adj)
		if err != nil {
			return nil, res, err
		}
		graphOK = ok
		if !ok {
			s.warn.emit(graphDisconnected())
		}
	}

	if explicit != nil {
		if !s.cfg.CheckLCC {
			return explicit, res, nil
		}
		ok, err := s.connected(explicit)
		if err != nil {
			return nil, res, err
		}
		res.Checked, res.Connected = true, ok
		if !ok {
			s.warn.emit(subgraphDisconnected(0))
		}
		return explicit, res, nil
	}

	size := sampleSize(s.cfg.Proportion, n)
	if size == n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		res.Checked, res.Connected = s.cfg.CheckLCC, graphOK
		return all, res, nil
	}

	if !s.cfg.CheckLCC {
		res.Attempts = 1
		return drawWithoutReplacement(n, size, s.rng), res, nil
	}

	budget := s.cfg.ConnectedAttempts
	if budget < 1 {
		budget = 1
	}
	var idx []int
	res.Checked = true
	for res.Attempts < budget {
		idx = drawWithoutReplacement(n, size, s.rng)
		res.Attempts++
		ok, err := s.connected(idx)
		if err != nil {
			return nil, res, err
		}
		klog.V(2).Infof("embed: sample attempt %d/%d size=%d connected=%t", res.Attempts, budget, size, ok)
		if ok {
			res.Connected = true
			break
		}
	}
	if !res.Connected {
		s.warn.emit(subgraphDisconnected(res.Attempts))
	}

	return idx, res, nil
}
