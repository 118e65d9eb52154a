// Package arrayops implements the array-utility collaborator spec.md §6
// leaves abstract: zero-fill, element copy with offset, and allocation of
// D-dimensional buffers, plus the reduction helpers MaxAbsDiff (used by the
// Wilson–Burg per-iteration trace) and Dot. Grounded on
// the explicit-loop, float64-accumulation style of gopus's util/abs.go and
// silk/inner_prod.go — no reflection, no generics beyond grid.Buffer's
// single []float64 representation.
package arrayops

import (
	"math"

	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/internal/floatx"
	"github.com/nshpfilter/nshpfilter/lag"
)

// Zero overwrites every element of b with 0.
func Zero(b grid.Buffer) {
	for i := range b.Data {
		b.Data[i] = 0
	}
}

// Alloc1D allocates a zeroed 1-D buffer of size n0.
func Alloc1D(n0 int) grid.Buffer {
	return grid.NewBuffer(grid.NewExtent(lag.Dim1, n0))
}

// Alloc2D allocates a zeroed 2-D buffer of size n0 x n1.
func Alloc2D(n0, n1 int) grid.Buffer {
	return grid.NewBuffer(grid.NewExtent(lag.Dim2, n0, n1))
}

// Alloc3D allocates a zeroed 3-D buffer of size n0 x n1 x n2.
func Alloc3D(n0, n1, n2 int) grid.Buffer {
	return grid.NewBuffer(grid.NewExtent(lag.Dim3, n0, n1, n2))
}

// CopyOffset copies every element of src into dst, shifting each coordinate
// by offset. Destination coordinates that fall outside dst's extent are
// silently dropped, matching the zero-extension convention the rest of the
// module uses for out-of-range reads and writes of caller-sized workspace.
func CopyOffset(dst, src grid.Buffer, offset [3]int) {
	dim := int(src.Extent.Dim())
	var idx [3]int
	walk(dim, src.Extent, 0, &idx, func(idx [3]int) {
		var dstIdx [3]int
		for k := 0; k < dim; k++ {
			dstIdx[k] = idx[k] + offset[k]
		}
		if !dst.Extent.Contains(dstIdx) {
			return
		}
		dst.Set(dstIdx, src.At(idx))
	})
}

// walk enumerates every coordinate in e's populated dimensions, innermost
// dimension varying fastest, invoking visit once per coordinate.
func walk(dim int, e grid.Extent, k int, idx *[3]int, visit func([3]int)) {
	if k == dim {
		visit(*idx)
		return
	}
	// Recurse from the most significant populated dimension down, so the
	// innermost (dimension 0) varies fastest — order doesn't affect correctness
	// here since visit is independent per coordinate, but it mirrors the
	// kernel package's outer-to-inner nesting.
	for i := 0; i < e.N(dim-1-k); i++ {
		idx[dim-1-k] = i
		walk(dim, e, k+1, idx, visit)
	}
}

// MaxAbsDiff returns the largest absolute element-wise difference between a
// and b, which must share the same extent.
func MaxAbsDiff(a, b grid.Buffer) float64 {
	max := 0.0
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > max {
			max = d
		}
	}
	return max
}

// Dot returns the inner product of a and b, which must share the same
// extent. Terms are accumulated with floatx.KahanSum, since plain summation
// loses precision over long buffers.
func Dot(a, b grid.Buffer) float64 {
	terms := make([]float64, len(a.Data))
	for i := range a.Data {
		terms[i] = a.Data[i] * b.Data[i]
	}
	return floatx.KahanSum(terms)
}
