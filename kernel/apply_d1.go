package kernel

import (
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
)

// apply1D computes the forward operator for a 1-D table. Cells are visited
// in descending index order so that, when dst aliases src, every tap read
// src[i-lag] (lag >= 0 in 1-D) targets an index <= i that has not yet been
// overwritten.
func apply1D(t *lag.Table, dst, src grid.Buffer) {
	n := src.Extent.N(0)
	lags := t.Lags(0)
	coeffs := t.Coeffs()
	z := grid.NewZoning(t, src.Extent, grid.DirForward)
	lo, hi := z.Lo(0), z.Hi(0)

	for i := n - 1; i >= 0; i-- {
		var sum float64
		if i >= lo && i < hi {
			for j, l := range lags {
				sum += coeffs[j] * src.Data[i-l]
			}
		} else {
			for j, l := range lags {
				k := i - l
				if k >= 0 && k < n {
					sum += coeffs[j] * src.Data[k]
				}
			}
		}
		dst.Data[i] = sum
	}
}

// applyTranspose1D computes the adjoint operator. Cells are visited in
// ascending order so that taps reading src[i+lag] (lag >= 0) target
// not-yet-visited indices when dst aliases src.
func applyTranspose1D(t *lag.Table, dst, src grid.Buffer) {
	n := src.Extent.N(0)
	lags := t.Lags(0)
	coeffs := t.Coeffs()
	z := grid.NewZoning(t, src.Extent, grid.DirBackward)
	lo, hi := z.Lo(0), z.Hi(0)

	for i := 0; i < n; i++ {
		var sum float64
		if i >= lo && i < hi {
			for j, l := range lags {
				sum += coeffs[j] * src.Data[i+l]
			}
		} else {
			for j, l := range lags {
				k := i + l
				if k >= 0 && k < n {
					sum += coeffs[j] * src.Data[k]
				}
			}
		}
		dst.Data[i] = sum
	}
}

// applyInverse1D runs the causal recursion dst[i] = (src[i] - Σ aⱼ dst[i-ℓⱼ]) / a0
// in ascending order: every dst[i-lag] the recursion needs (lag > 0) has
// already been written by the time cell i is processed.
func applyInverse1D(t *lag.Table, dst, src grid.Buffer) {
	n := src.Extent.N(0)
	lags := t.Lags(0)[1:]
	coeffs := t.Coeffs()[1:]
	invA0 := 1 / t.A0()
	z := grid.NewZoning(t, src.Extent, grid.DirForward)
	lo, hi := z.Lo(0), z.Hi(0)

	for i := 0; i < n; i++ {
		y := src.Data[i]
		var sum float64
		if i >= lo && i < hi {
			for j, l := range lags {
				sum += coeffs[j] * dst.Data[i-l]
			}
		} else {
			for j, l := range lags {
				k := i - l
				if k >= 0 && k < n {
					sum += coeffs[j] * dst.Data[k]
				}
			}
		}
		dst.Data[i] = (y - sum) * invA0
	}
}

// applyInverseTranspose1D runs the anti-causal recursion in descending
// order: every dst[i+lag] the recursion needs has already been written.
func applyInverseTranspose1D(t *lag.Table, dst, src grid.Buffer) {
	n := src.Extent.N(0)
	lags := t.Lags(0)[1:]
	coeffs := t.Coeffs()[1:]
	invA0 := 1 / t.A0()
	z := grid.NewZoning(t, src.Extent, grid.DirBackward)
	lo, hi := z.Lo(0), z.Hi(0)

	for i := n - 1; i >= 0; i-- {
		y := src.Data[i]
		var sum float64
		if i >= lo && i < hi {
			for j, l := range lags {
				sum += coeffs[j] * dst.Data[i+l]
			}
		} else {
			for j, l := range lags {
				k := i + l
				if k >= 0 && k < n {
					sum += coeffs[j] * dst.Data[k]
				}
			}
		}
		dst.Data[i] = (y - sum) * invA0
	}
}
