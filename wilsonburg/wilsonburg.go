// Package wilsonburg implements the Wilson–Burg spectral-factorization
// iteration of spec.md §4.4: given a symmetric autocorrelation sampled on a
// 1-D, 2-D or 3-D grid, it rewrites a lag.Table's coefficients in place so
// that the cascade Aᵀ A reproduces the autocorrelation on the table's lag
// support, to within a caller-supplied tolerance.
package wilsonburg

import (
	"errors"
	"math"

	"github.com/nshpfilter/nshpfilter/arrayops"
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/internal/fxtrace"
	"github.com/nshpfilter/nshpfilter/kernel"
	"github.com/nshpfilter/nshpfilter/lag"
)

// Options configures a Factorize call. MaxIter and Epsilon must be
// positive; Logger may be left nil, in which case iterations are not
// traced.
type Options struct {
	MaxIter int
	Epsilon float64
	Logger  fxtrace.Logger
}

// Option mutates Options during construction, following the functional-
// options shape used elsewhere in the module's public constructors.
type Option func(*Options)

// WithLogger attaches a logger that receives one Debugf call per iteration,
// reporting the iteration number, the updated a0, and the largest absolute
// difference between A·U and the padded autocorrelation workspace.
func WithLogger(l fxtrace.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// NewOptions builds an Options with the given maxiter/epsilon and applies
// opts on top, defaulting Logger to a no-op.
func NewOptions(maxIter int, epsilon float64, opts ...Option) Options {
	o := Options{MaxIter: maxIter, Epsilon: epsilon, Logger: fxtrace.NoOp()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func allocLike(dim lag.Dim, n [3]int) grid.Buffer {
	sizes := make([]int, int(dim))
	for k := 0; k < int(dim); k++ {
		sizes[k] = n[k]
	}
	return grid.NewBuffer(grid.NewExtent(dim, sizes...))
}

// Factorize runs the Wilson–Burg iteration of spec.md §4.4 against r,
// mutating t's coefficients in place. It returns ErrShapeMismatch if r's
// dimensionality doesn't match t, ErrAutocorrelationNotOdd if r's extent is
// not odd, ErrInvalidOptions if MaxIter/Epsilon are non-positive,
// ErrLagOutsideWorkspace if a lag's padded-workspace index falls outside
// the allocated workspace, ErrDegenerateCoefficient if a0 becomes zero
// mid-iteration, and ErrNotConverged if the iteration budget is exhausted
// without satisfying the convergence test.
func Factorize(t *lag.Table, r grid.Buffer, opts Options) error {
	dim := t.Dim()
	if r.Extent.Dim() != dim {
		return ErrShapeMismatch
	}
	if !r.Extent.Odd() {
		return ErrAutocorrelationNotOdd
	}
	if opts.MaxIter <= 0 || opts.Epsilon <= 0 {
		return ErrInvalidOptions
	}
	logger := opts.Logger
	if logger == nil {
		logger = fxtrace.NoOp()
	}

	var m, n, c, offset [3]int
	for k := 0; k < int(dim); k++ {
		min, max := t.Bounds(k)
		m[k] = max - min
		n[k] = r.Extent.N(k) + 10*m[k]
		c[k] = n[k] - 1 - max
		centerR := (r.Extent.N(k) - 1) / 2
		offset[k] = c[k] - centerR
	}

	s := allocLike(dim, n)
	tbuf := allocLike(dim, n)
	u := allocLike(dim, n)
	arrayops.CopyOffset(s, r, offset)

	sc := s.At(c)
	if sc <= 0 {
		return ErrDegenerateCoefficient
	}
	a0 := math.Sqrt(sc)
	coeffs := make([]float64, t.Len())
	coeffs[0] = a0
	if err := t.SetCoeffs(coeffs); err != nil {
		return err
	}

	epsConv := sc * opts.Epsilon

	lagCols := make([][]int, int(dim))
	for k := 0; k < int(dim); k++ {
		lagCols[k] = t.Lags(k)
	}

	for iter := 0; iter < opts.MaxIter; iter++ {
		if err := kernel.ApplyInverseTranspose(t, tbuf, s); err != nil {
			return mapKernelErr(err)
		}
		if err := kernel.ApplyInverse(t, u, tbuf); err != nil {
			return mapKernelErr(err)
		}
		u.Set(c, u.At(c)+1)
		causalize(dim, u, c)
		if err := kernel.Apply(t, tbuf, u); err != nil {
			return mapKernelErr(err)
		}

		next := make([]float64, t.Len())
		converged := true
		for j := 0; j < t.Len(); j++ {
			var ij [3]int
			for k := 0; k < int(dim); k++ {
				ij[k] = c[k] + lagCols[k][j]
				if ij[k] < 0 || ij[k] >= n[k] {
					return ErrLagOutsideWorkspace
				}
			}
			aPrime := tbuf.At(ij)
			diff := t.Coeff(j) - aPrime
			if diff*diff > epsConv {
				converged = false
			}
			next[j] = aPrime
		}

		if err := t.SetCoeffs(next); err != nil {
			return err
		}
		if t.A0() == 0 {
			return ErrDegenerateCoefficient
		}

		logger.Debugf("wilsonburg: iter=%d a0=%v residual=%v", iter, t.A0(), arrayops.MaxAbsDiff(tbuf, s))

		if converged {
			return nil
		}
	}
	return ErrNotConverged
}

func mapKernelErr(err error) error {
	if errors.Is(err, lag.ErrDegenerateLeadingCoefficient) {
		return ErrDegenerateCoefficient
	}
	return err
}
