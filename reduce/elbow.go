// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// minSigma floors the pooled standard deviation so that a split of
// identical values scores high instead of producing NaN.
const minSigma = 1e-12

// SelectDimension finds up to nElbows elbows in a descending spectrum sv
// using the profile likelihood of Zhu & Ghodsi (2006). Each elbow is
// searched in the tail that follows the previous one.
//
// elbows[k] is a 1-based dimension (the number of leading values kept) and
// values[k] = sv[elbows[k]-1]. Fewer than nElbows elbows are returned when
// the remaining tail has at most one value.
//
// Errors: ErrEmptySpectrum, ErrInvalidElbows.
//
// Complexity: O(nElbows * n²).
func SelectDimension(sv []float64, nElbows int) (elbows []int, values []float64, err error) {
	if len(sv) == 0 {
		return nil, nil, ErrEmptySpectrum
	}
	if nElbows <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidElbows, nElbows)
	}

	idx := 0
	for k := 0; k < nElbows; k++ {
		tail := sv[idx:]
		if len(tail) <= 1 {
			break
		}
		ll := profileLikelihood(tail)
		idx += floats.MaxIdx(ll) + 1
		elbows = append(elbows, idx)
		values = append(values, sv[idx-1])
	}
	if len(elbows) == 0 {
		// A single value: keep it.
		elbows, values = []int{1}, []float64{sv[0]}
	}

	return elbows, values, nil
}

// profileLikelihood returns, for every split q in 1..n, the log-likelihood of
// arr[:q] and arr[q:] modeled as two normals with separate means and a pooled
// variance.
func profileLikelihood(arr []float64) []float64 {
	n := len(arr)
	out := make([]float64, n)
	for q := 1; q <= n; q++ {
		s1, s2 := arr[:q], arr[q:]
		mu1 := stat.Mean(s1, nil)
		ss := sumSquares(s1, mu1)
		var mu2 float64
		if len(s2) > 0 {
			mu2 = stat.Mean(s2, nil)
			ss += sumSquares(s2, mu2)
		}
		dof := n - 1
		if q < n {
			dof--
		}
		if dof < 1 {
			dof = 1
		}
		sigma := math.Sqrt(ss / float64(dof))
		if !(sigma > minSigma) {
			sigma = minSigma
		}

		d1 := distuv.Normal{Mu: mu1, Sigma: sigma}
		d2 := distuv.Normal{Mu: mu2, Sigma: sigma}
		var ll float64
		for _, x := range s1 {
			ll += d1.LogProb(x)
		}
		for _, x := range s2 {
			ll += d2.LogProb(x)
		}
		out[q-1] = ll
	}

	return out
}

func sumSquares(xs []float64, mu float64) float64 {
	var s float64
	for _, x := range xs {
		s += (x - mu) * (x - mu)
	}

	return s
}
