package kernel

import (
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
)

// In 3-D, dimension 2 (ℓ3) is outermost/slowest, dimension 1 (ℓ2) middle,
// dimension 0 (ℓ1) innermost/fastest, matching grid.Extent.Index and
// spec.md §4.4's U[i3][i2][i1] nesting.

func apply3D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1, n2 := src.Extent.N(0), src.Extent.N(1), src.Extent.N(2)
	l0, l1, l2 := t.Lags(0), t.Lags(1), t.Lags(2)
	coeffs := t.Coeffs()
	z := grid.NewZoning(t, src.Extent, grid.DirForward)
	lo0, hi0 := z.Lo(0), z.Hi(0)
	lo1, hi1 := z.Lo(1), z.Hi(1)
	lo2, hi2 := z.Lo(2), z.Hi(2)
	plane := n0 * n1

	for i3 := n2 - 1; i3 >= 0; i3-- {
		interior2 := i3 >= lo2 && i3 < hi2
		for i2 := n1 - 1; i2 >= 0; i2-- {
			interior1 := interior2 && i2 >= lo1 && i2 < hi1
			row := i3*plane + i2*n0
			for i1 := n0 - 1; i1 >= 0; i1-- {
				var sum float64
				if interior1 && i1 >= lo0 && i1 < hi0 {
					for j := range coeffs {
						sum += coeffs[j] * src.Data[(i3-l2[j])*plane+(i2-l1[j])*n0+(i1-l0[j])]
					}
				} else {
					for j := range coeffs {
						k0, k1, k2 := i1-l0[j], i2-l1[j], i3-l2[j]
						if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 && k2 >= 0 && k2 < n2 {
							sum += coeffs[j] * src.Data[k2*plane+k1*n0+k0]
						}
					}
				}
				dst.Data[row+i1] = sum
			}
		}
	}
}

func applyTranspose3D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1, n2 := src.Extent.N(0), src.Extent.N(1), src.Extent.N(2)
	l0, l1, l2 := t.Lags(0), t.Lags(1), t.Lags(2)
	coeffs := t.Coeffs()
	z := grid.NewZoning(t, src.Extent, grid.DirBackward)
	lo0, hi0 := z.Lo(0), z.Hi(0)
	lo1, hi1 := z.Lo(1), z.Hi(1)
	lo2, hi2 := z.Lo(2), z.Hi(2)
	plane := n0 * n1

	for i3 := 0; i3 < n2; i3++ {
		interior2 := i3 >= lo2 && i3 < hi2
		for i2 := 0; i2 < n1; i2++ {
			interior1 := interior2 && i2 >= lo1 && i2 < hi1
			row := i3*plane + i2*n0
			for i1 := 0; i1 < n0; i1++ {
				var sum float64
				if interior1 && i1 >= lo0 && i1 < hi0 {
					for j := range coeffs {
						sum += coeffs[j] * src.Data[(i3+l2[j])*plane+(i2+l1[j])*n0+(i1+l0[j])]
					}
				} else {
					for j := range coeffs {
						k0, k1, k2 := i1+l0[j], i2+l1[j], i3+l2[j]
						if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 && k2 >= 0 && k2 < n2 {
							sum += coeffs[j] * src.Data[k2*plane+k1*n0+k0]
						}
					}
				}
				dst.Data[row+i1] = sum
			}
		}
	}
}

func applyInverse3D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1, n2 := src.Extent.N(0), src.Extent.N(1), src.Extent.N(2)
	l0, l1, l2 := t.Lags(0)[1:], t.Lags(1)[1:], t.Lags(2)[1:]
	coeffs := t.Coeffs()[1:]
	invA0 := 1 / t.A0()
	z := grid.NewZoning(t, src.Extent, grid.DirForward)
	lo0, hi0 := z.Lo(0), z.Hi(0)
	lo1, hi1 := z.Lo(1), z.Hi(1)
	lo2, hi2 := z.Lo(2), z.Hi(2)
	plane := n0 * n1

	for i3 := 0; i3 < n2; i3++ {
		interior2 := i3 >= lo2 && i3 < hi2
		for i2 := 0; i2 < n1; i2++ {
			interior1 := interior2 && i2 >= lo1 && i2 < hi1
			row := i3*plane + i2*n0
			for i1 := 0; i1 < n0; i1++ {
				y := src.Data[row+i1]
				var sum float64
				if interior1 && i1 >= lo0 && i1 < hi0 {
					for j := range coeffs {
						sum += coeffs[j] * dst.Data[(i3-l2[j])*plane+(i2-l1[j])*n0+(i1-l0[j])]
					}
				} else {
					for j := range coeffs {
						k0, k1, k2 := i1-l0[j], i2-l1[j], i3-l2[j]
						if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 && k2 >= 0 && k2 < n2 {
							sum += coeffs[j] * dst.Data[k2*plane+k1*n0+k0]
						}
					}
				}
				dst.Data[row+i1] = (y - sum) * invA0
			}
		}
	}
}

func applyInverseTranspose3D(t *lag.Table, dst, src grid.Buffer) {
	n0, n1, n2 := src.Extent.N(0), src.Extent.N(1), src.Extent.N(2)
	l0, l1, l2 := t.Lags(0)[1:], t.Lags(1)[1:], t.Lags(2)[1:]
	coeffs := t.Coeffs()[1:]
	invA0 := 1 / t.A0()
	z := grid.NewZoning(t, src.Extent, grid.DirBackward)
	lo0, hi0 := z.Lo(0), z.Hi(0)
	lo1, hi1 := z.Lo(1), z.Hi(1)
	lo2, hi2 := z.Lo(2), z.Hi(2)
	plane := n0 * n1

	for i3 := n2 - 1; i3 >= 0; i3-- {
		interior2 := i3 >= lo2 && i3 < hi2
		for i2 := n1 - 1; i2 >= 0; i2-- {
			interior1 := interior2 && i2 >= lo1 && i2 < hi1
			row := i3*plane + i2*n0
			for i1 := n0 - 1; i1 >= 0; i1-- {
				y := src.Data[row+i1]
				var sum float64
				if interior1 && i1 >= lo0 && i1 < hi0 {
					for j := range coeffs {
						sum += coeffs[j] * dst.Data[(i3+l2[j])*plane+(i2+l1[j])*n0+(i1+l0[j])]
					}
				} else {
					for j := range coeffs {
						k0, k1, k2 := i1+l0[j], i2+l1[j], i3+l2[j]
						if k0 >= 0 && k0 < n0 && k1 >= 0 && k1 < n1 && k2 >= 0 && k2 < n2 {
							sum += coeffs[j] * dst.Data[k2*plane+k1*n0+k0]
						}
					}
				}
				dst.Data[row+i1] = (y - sum) * invA0
			}
		}
	}
}
