package kernel

import (
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
)

// In 2-D, dimension 1 (ℓ2) is the more significant coordinate under NSHP
// lexicographic ordering (see package lag), so it is the outer loop /
// slowest-varying array dimension; dimension 0 (ℓ1) is inner / fastest,
// matching grid.Extent.Index and spec.md §4.4's U[i2][i1] nesting.

func apply2D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1 := src.Extent.N(0), src.Extent.N(1)
	l0, l1 := t.Lags(0), t.Lags(1)
	coeffs := t.Coeffs()
	z := grid.NewZoning(t, src.Extent, grid.DirForward)
	lo0, hi0, lo1, hi1 := z.Lo(0), z.Hi(0), z.Lo(1), z.Hi(1)

	for i2 := n1 - 1; i2 >= 0; i2-- {
		interior1 := i2 >= lo1 && i2 < hi1
		for i1 := n0 - 1; i1 >= 0; i1-- {
			var sum float64
			if interior1 && i1 >= lo0 && i1 < hi0 {
				for j := range coeffs {
					sum += coeffs[j] * src.Data[(i2-l1[j])*n0+(i1-l0[j])]
				}
			} else {
				for j := range coeffs {
					k0, k1 := i1-l0[j], i2-l1[j]
					if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 {
						sum += coeffs[j] * src.Data[k1*n0+k0]
					}
				}
			}
			dst.Data[i2*n0+i1] = sum
		}
	}
}

func applyTranspose2D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1 := src.Extent.N(0), src.Extent.N(1)
	l0, l1 := t.Lags(0), t.Lags(1)
	coeffs := t.Coeffs()
	z := grid.NewZoning(t, src.Extent, grid.DirBackward)
	lo0, hi0, lo1, hi1 := z.Lo(0), z.Hi(0), z.Lo(1), z.Hi(1)

	for i2 := 0; i2 < n1; i2++ {
		interior1 := i2 >= lo1 && i2 < hi1
		for i1 := 0; i1 < n0; i1++ {
			var sum float64
			if interior1 && i1 >= lo0 && i1 < hi0 {
				for j := range coeffs {
					sum += coeffs[j] * src.Data[(i2+l1[j])*n0+(i1+l0[j])]
				}
			} else {
				for j := range coeffs {
					k0, k1 := i1+l0[j], i2+l1[j]
					if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 {
						sum += coeffs[j] * src.Data[k1*n0+k0]
					}
				}
			}
			dst.Data[i2*n0+i1] = sum
		}
	}
}

func applyInverse2D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1 := src.Extent.N(0), src.Extent.N(1)
	l0, l1 := t.Lags(0)[1:], t.Lags(1)[1:]
	coeffs := t.Coeffs()[1:]
	invA0 := 1 / t.A0()
	z := grid.NewZoning(t, src.Extent, grid.DirForward)
	lo0, hi0, lo1, hi1 := z.Lo(0), z.Hi(0), z.Lo(1), z.Hi(1)

	for i2 := 0; i2 < n1; i2++ {
		interior1 := i2 >= lo1 && i2 < hi1
		for i1 := 0; i1 < n0; i1++ {
			y := src.Data[i2*n0+i1]
			var sum float64
			if interior1 && i1 >= lo0 && i1 < hi0 {
				for j := range coeffs {
					sum += coeffs[j] * dst.Data[(i2-l1[j])*n0+(i1-l0[j])]
				}
			} else {
				for j := range coeffs {
					k0, k1 := i1-l0[j], i2-l1[j]
					if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 {
						sum += coeffs[j] * dst.Data[k1*n0+k0]
					}
				}
			}
			dst.Data[i2*n0+i1] = (y - sum) * invA0
		}
	}
}

func applyInverseTranspose2D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1 := src.Extent.N(0), src.Extent.N(1)
	l0, l1 := t.Lags(0)[1:], t.Lags(1)[1:]
	coeffs := t.Coeffs()[1:]
	invA0 := 1 / t.A0()
	z := grid.NewZoning(t, src.Extent, grid.DirBackward)
	lo0, hi0, lo1, hi1 := z.Lo(0), z.Hi(0), z.Lo(1), z.Hi(1)

	for i2 := n1 - 1; i2 >= 0; i2-- {
		interior1 := i2 >= lo1 && i2 < hi1
		for i1 := n0 - 1; i1 >= 0; i1-- {
			y := src.Data[i2*n0+i1]
			var sum float64
			if interior1 && i1 >= lo0 && i1 < hi0 {
				for j := range coeffs {
					sum += coeffs[j] * dst.Data[(i2+l1[j])*n0+(i1+l0[j])]
				}
			} else {
				for j := range coeffs {
					k0, k1 := i1+l0[j], i2+l1[j]
					if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 {
						sum += coeffs[j] * dst.Data[k1*n0+k0]
					}
				}
			}
			dst.Data[i2*n0+i1] = (y - sum) * invA0
		}
	}
}
