package wilsonburg

import (
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
)

// causalize implements the "zero earlier than c" step of spec.md §4.4: it
// halves U at the center coordinate c and zeroes every sample that is
// strictly earlier than c under the NSHP ordering. The NSHP "earlier"
// region is the disjoint union of per-dimension slabs (spec.md §4.4's
// worked-out 1-D/2-D/3-D cases), so each dimensionality below zeroes one
// slab per populated dimension, most significant first.
func causalize(dim lag.Dim, u grid.Buffer, c [3]int) {
	half := u.At(c)
	u.Set(c, half/2)

	switch dim {
	case lag.Dim1:
		for i0 := 0; i0 < c[0]; i0++ {
			u.Set([3]int{i0, 0, 0}, 0)
		}
	case lag.Dim2:
		n0 := u.Extent.N(0)
		for i1 := 0; i1 < c[1]; i1++ {
			for i0 := 0; i0 < n0; i0++ {
				u.Set([3]int{i0, i1, 0}, 0)
			}
		}
		for i0 := 0; i0 < c[0]; i0++ {
			u.Set([3]int{i0, c[1], 0}, 0)
		}
	case lag.Dim3:
		n0, n1 := u.Extent.N(0), u.Extent.N(1)
		for i2 := 0; i2 < c[2]; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				for i0 := 0; i0 < n0; i0++ {
					u.Set([3]int{i0, i1, i2}, 0)
				}
			}
		}
		for i1 := 0; i1 < c[1]; i1++ {
			for i0 := 0; i0 < n0; i0++ {
				u.Set([3]int{i0, i1, c[2]}, 0)
			}
		}
		for i0 := 0; i0 < c[0]; i0++ {
			u.Set([3]int{i0, c[1], c[2]}, 0)
		}
	}
}
