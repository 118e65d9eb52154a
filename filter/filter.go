// Package filter exposes the module's public operator surface: Filter binds
// a lag.Table and offers the four operator methods plus Factorize, rather
// than requiring callers to juggle kernel and wilsonburg directly. This
// mirrors spec.md §9's "either is acceptable" note: one generic entry
// point per operator family instead of three dimensionality-specific
// overloads.
package filter

import (
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/kernel"
	"github.com/nshpfilter/nshpfilter/lag"
	"github.com/nshpfilter/nshpfilter/wilsonburg"
)

// Filter binds a *lag.Table and applies the four kernel operators, plus
// Wilson–Burg factorization, to caller-owned buffers. Filter itself holds
// no additional state beyond the table: it is a thin, stateless facade.
type Filter struct {
	table *lag.Table
}

// New wraps an existing lag.Table in a Filter.
func New(table *lag.Table) *Filter {
	return &Filter{table: table}
}

// Dim returns the underlying table's dimensionality.
func (f *Filter) Dim() lag.Dim { return f.table.Dim() }

// Lags returns a defensive copy of the lag column for dimension k.
func (f *Filter) Lags(k int) []int { return f.table.Lags(k) }

// Coefficients returns a defensive copy of the filter's coefficients.
func (f *Filter) Coefficients() []float64 { return f.table.Coeffs() }

func wrapShapeErr(err error) error {
	if err == kernel.ErrShapeMismatch {
		return ErrShapeMismatch
	}
	return err
}

// Apply computes dst = A(src), the forward causal convolution. src and dst
// may alias the same buffer.
func (f *Filter) Apply(dst, src grid.Buffer) error {
	return wrapShapeErr(kernel.Apply(f.table, dst, src))
}

// ApplyTranspose computes dst = Aᵀ(src), the anti-causal convolution. src
// and dst may alias the same buffer.
func (f *Filter) ApplyTranspose(dst, src grid.Buffer) error {
	return wrapShapeErr(kernel.ApplyTranspose(f.table, dst, src))
}

// ApplyInverse solves A(dst) = src for dst via the causal recursion. src
// and dst may alias the same buffer.
func (f *Filter) ApplyInverse(dst, src grid.Buffer) error {
	return wrapShapeErr(kernel.ApplyInverse(f.table, dst, src))
}

// ApplyInverseTranspose solves Aᵀ(dst) = src for dst via the anti-causal
// recursion. src and dst may alias the same buffer.
func (f *Filter) ApplyInverseTranspose(dst, src grid.Buffer) error {
	return wrapShapeErr(kernel.ApplyInverseTranspose(f.table, dst, src))
}

// Factorize runs Wilson–Burg against r, replacing the filter's coefficients
// in place. See wilsonburg.Factorize for the error set.
func (f *Filter) Factorize(r grid.Buffer, opts wilsonburg.Options) error {
	return wilsonburg.Factorize(f.table, r, opts)
}
