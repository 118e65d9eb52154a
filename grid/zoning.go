package grid

import "github.com/nshpfilter/nshpfilter/lag"

// Direction selects which of the two stencil-read patterns a kernel uses:
// DirForward reads taps at i - ℓⱼ (used by Apply and ApplyInverse),
// DirBackward reads taps at i + ℓⱼ (used by ApplyTranspose and
// ApplyInverseTranspose).
type Direction int

const (
	DirForward Direction = iota
	DirBackward
)

// Zoning is the boundary-zone partition of spec.md §4.3: for each
// dimension, the half-open interval of indices at which every stencil tap
// in that dimension reads in range. A cell is in the overall interior zone
// iff its coordinate lies in the interior interval of every populated
// dimension; such cells need no per-tap guard. Any other cell needs a
// guarded (zero-extending) read for at least one tap.
type Zoning struct {
	dim lag.Dim
	lo  [3]int
	hi  [3]int
}

// NewZoning computes the partition for table t, applied to a buffer of
// extent e, reading in direction dir.
func NewZoning(t *lag.Table, e Extent, dir Direction) Zoning {
	z := Zoning{dim: t.Dim()}
	for k := 0; k < int(t.Dim()); k++ {
		min, max := t.Bounds(k)
		n := e.N(k)
		var lo, hi int
		switch dir {
		case DirForward:
			// every tap ℓ in [min,max] must satisfy 0 <= i-ℓ < n for all ℓ,
			// i.e. i in [max, n+min).
			lo, hi = max, n+min
		default: // DirBackward
			// every tap must satisfy 0 <= i+ℓ < n for all ℓ, i.e.
			// i in [-min, n-max).
			lo, hi = -min, n-max
		}
		if lo < 0 {
			lo = 0
		}
		if hi > n {
			hi = n
		}
		if hi < lo {
			hi = lo // empty interior in this dimension
		}
		z.lo[k] = lo
		z.hi[k] = hi
	}
	return z
}

// Interior reports whether idx lies in the interior zone (no tap guard
// needed in any populated dimension).
func (z Zoning) Interior(idx [3]int) bool {
	for k := 0; k < int(z.dim); k++ {
		if idx[k] < z.lo[k] || idx[k] >= z.hi[k] {
			return false
		}
	}
	return true
}

// Lo returns the interior interval's lower bound (inclusive) for dimension k.
func (z Zoning) Lo(k int) int { return z.lo[k] }

// Hi returns the interior interval's upper bound (exclusive) for dimension k.
func (z Zoning) Hi(k int) int { return z.hi[k] }
