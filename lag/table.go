// Package lag implements the sparse stencil representation at the core of
// nshpfilter: an ordered set of integer lag tuples and real coefficients,
// constrained to a non-symmetric half-plane (NSHP) so that the stencil
// defines a causal filter in one, two or three dimensions.
package lag

import "fmt"

// Dim identifies the dimensionality of a Table.
type Dim int

const (
	// Dim1 is a one-dimensional lag table: tuples are (l1).
	Dim1 Dim = 1
	// Dim2 is a two-dimensional lag table: tuples are (l1, l2).
	Dim2 Dim = 2
	// Dim3 is a three-dimensional lag table: tuples are (l1, l2, l3).
	Dim3 Dim = 3
)

// String implements fmt.Stringer.
func (d Dim) String() string {
	switch d {
	case Dim1:
		return "1D"
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	default:
		return fmt.Sprintf("Dim(%d)", int(d))
	}
}

// Table is the sparse filter stencil: m lag tuples ℓ0..ℓ(m-1) (ℓ0 pinned to
// the zero tuple) and a parallel coefficient array a0..a(m-1). Shape (the
// lag tuples, their count, and the derived Min/Max bounds) is immutable
// once constructed; coefficients may be overwritten in place by
// wilsonburg.Factorize.
//
// A Table is not safe for concurrent use: callers must not call Apply-family
// methods concurrently with a coefficient-mutating Factorize call on the
// same Table.
type Table struct {
	dim Dim

	// lags[k] holds the k-th coordinate of every tuple, k in [0, dim).
	// lags[k][j] is ℓ_{k+1,j} in the spec's 1-indexed notation.
	lags [3][]int

	coeffs []float64

	// min[k], max[k] are the cached per-dimension bounds of lags[k].
	min [3]int
	max [3]int
}

// New constructs a Table of the given dimensionality from parallel lag
// arrays (one per populated dimension, in order) and a coefficient array.
// If coeffs is nil, the table is initialized to the unit impulse: a0 = 1,
// all other coefficients 0.
//
// New validates the NSHP causality invariant from the package doc and
// returns ErrMismatchedLengths, ErrEmptyTable, ErrZeroLagNotFirst or
// ErrNotNSHP on violation.
func New(dim Dim, lagCols [][]int, coeffs []float64) (*Table, error) {
	if int(dim) != len(lagCols) {
		return nil, fmt.Errorf("%w: dim %s requires %d lag columns, got %d", ErrMismatchedLengths, dim, int(dim), len(lagCols))
	}
	m := 0
	if len(lagCols) > 0 {
		m = len(lagCols[0])
	}
	for _, col := range lagCols {
		if len(col) != m {
			return nil, ErrMismatchedLengths
		}
	}
	if m == 0 {
		return nil, ErrEmptyTable
	}
	if coeffs == nil {
		coeffs = make([]float64, m)
		coeffs[0] = 1
	} else if len(coeffs) != m {
		return nil, ErrMismatchedLengths
	} else {
		coeffs = append([]float64(nil), coeffs...)
	}

	t := &Table{dim: dim, coeffs: coeffs}
	for k := 0; k < int(dim); k++ {
		t.lags[k] = append([]int(nil), lagCols[k]...)
	}

	if err := t.validateZeroLag(); err != nil {
		return nil, err
	}
	for j := 1; j < m; j++ {
		if err := t.validateNSHP(j); err != nil {
			return nil, err
		}
	}
	t.computeBounds()
	return t, nil
}

// New1D constructs a one-dimensional Table. lags holds ℓ1 for each entry.
func New1D(lags []int, coeffs []float64) (*Table, error) {
	return New(Dim1, [][]int{lags}, coeffs)
}

// New2D constructs a two-dimensional Table. lags1, lags2 hold ℓ1, ℓ2 for
// each entry.
func New2D(lags1, lags2 []int, coeffs []float64) (*Table, error) {
	return New(Dim2, [][]int{lags1, lags2}, coeffs)
}

// New3D constructs a three-dimensional Table. lags1, lags2, lags3 hold
// ℓ1, ℓ2, ℓ3 for each entry.
func New3D(lags1, lags2, lags3 []int, coeffs []float64) (*Table, error) {
	return New(Dim3, [][]int{lags1, lags2, lags3}, coeffs)
}

func (t *Table) validateZeroLag() error {
	for k := 0; k < int(t.dim); k++ {
		if t.lags[k][0] != 0 {
			return ErrZeroLagNotFirst
		}
	}
	return nil
}

// validateNSHP checks entry j (j >= 1) against the causality ordering from
// spec.md §3: let d* be the highest-indexed dimension in which the tuple is
// non-zero; then the d*-th coordinate must be > 0, and every coordinate
// past d* must be zero.
func (t *Table) validateNSHP(j int) error {
	dstar := -1
	for k := int(t.dim) - 1; k >= 0; k-- {
		if t.lags[k][j] != 0 {
			dstar = k
			break
		}
	}
	if dstar < 0 {
		// the all-zero tuple, other than entry 0, is not NSHP-positive.
		return ErrNotNSHP
	}
	if t.lags[dstar][j] <= 0 {
		return ErrNotNSHP
	}
	for k := dstar + 1; k < int(t.dim); k++ {
		if t.lags[k][j] != 0 {
			return ErrNotNSHP
		}
	}
	return nil
}

func (t *Table) computeBounds() {
	for k := 0; k < int(t.dim); k++ {
		mn, mx := t.lags[k][0], t.lags[k][0]
		for _, v := range t.lags[k] {
			if v < mn {
				mn = v
			}
			if v > mx {
				mx = v
			}
		}
		t.min[k] = mn
		t.max[k] = mx
	}
}

// Dim returns the table's dimensionality.
func (t *Table) Dim() Dim { return t.dim }

// Len returns the number of lag entries, m.
func (t *Table) Len() int { return len(t.coeffs) }

// Lags returns a defensive copy of the lag column for dimension k
// (0-indexed, k < int(Dim())).
func (t *Table) Lags(k int) []int {
	return append([]int(nil), t.lags[k]...)
}

// Coeffs returns a defensive copy of the coefficient array.
func (t *Table) Coeffs() []float64 {
	return append([]float64(nil), t.coeffs...)
}

// Coeff returns the j-th coefficient without allocating.
func (t *Table) Coeff(j int) float64 { return t.coeffs[j] }

// A0 returns the pinned leading coefficient a0.
func (t *Table) A0() float64 { return t.coeffs[0] }

// Bounds returns the cached (min, max) lag for dimension k.
func (t *Table) Bounds(k int) (min, max int) { return t.min[k], t.max[k] }

// SetCoeffs replaces the table's coefficients in place. len(c) must equal
// t.Len(). This is exported for use by package wilsonburg's factorization
// loop; ordinary Apply-family use never needs to call it.
func (t *Table) SetCoeffs(c []float64) error {
	if len(c) != t.Len() {
		return ErrMismatchedLengths
	}
	copy(t.coeffs, c)
	return nil
}
