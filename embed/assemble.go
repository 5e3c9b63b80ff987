// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// FitPredict fits on g and embeds every vertex, returning an N × d matrix
// in the original vertex order.
//
// Implementation:
//   - Stage 1: fit (sampler + latent builder) on the whole graph.
//   - Stage 2: out-of-sample positions are the complement of the in-sample
//     set, ascending; X = A[oos, S] is read from the original adjacency.
//   - Stage 3: project X without committing rows, then place Z rows at the
//     in-sample positions and projected rows at the out-of-sample ones.
//
// With semi-supervised mode on, the reference embedding becomes the full
// N × d result and previously committed rows are dropped. The model is
// updated only if every stage succeeds.
func (m *OOSE) FitPredict(g any) (*matrix.Dense, error) {
	st, adj, err := m.fit(g)
	if err != nil {
		return nil, fmt.Errorf("FitPredict: %w", err)
	}

	n := adj.Rows()
	z := st.latent.left
	d := z.Cols()
	full, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, fmt.Errorf("FitPredict: %w", err)
	}

	in := make([]bool, n)
	for k, p := range st.inSample {
		in[p] = true
		if err = copyRow(full, p, z, k); err != nil {
			return nil, fmt.Errorf("FitPredict: %w", err)
		}
	}
	oos := make([]int, 0, n-len(st.inSample))
	for p := 0; p < n; p++ {
		if !in[p] {
			oos = append(oos, p)
		}
	}

	if len(oos) > 0 {
		x, err := adj.Induced(oos, st.inSample)
		if err != nil {
			return nil, fmt.Errorf("FitPredict: %w", err)
		}
		proj, err := st.project(x, m.cfg.ZeroRowTolerance)
		if err != nil {
			return nil, fmt.Errorf("FitPredict: %w", err)
		}
		for k, p := range oos {
			if err = copyRow(full, p, proj, k); err != nil {
				return nil, fmt.Errorf("FitPredict: %w", err)
			}
		}
	}

	if m.cfg.SemiSupervised {
		st.base = full.Clone().(*matrix.Dense)
		st.committed.reset()
		st.invalidate()
	}
	m.st = st

	return full, nil
}

// copyRow writes row src of from into row dst of to.
func copyRow(to *matrix.Dense, dst int, from *matrix.Dense, src int) error {
	row, err := from.Row(src)
	if err != nil {
		return err
	}
	for j, v := range row {
		if err = to.Set(dst, j, v); err != nil {
			return err
		}
	}

	return nil
}
