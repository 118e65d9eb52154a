// Package nshpfilter implements causal multidimensional recursive filtering
// on regularly sampled real-valued grids, together with a Wilson–Burg
// spectral-factorization routine for computing minimum-phase causal filters
// from a sampled autocorrelation.
//
// A filter is defined by a sparse stencil (see package lag) whose support is
// constrained to a non-symmetric half-plane (NSHP): the zero lag plus a set
// of lags that generalize "past" to two and three dimensions. Package kernel
// implements the four linear operators every such stencil admits — forward,
// adjoint, causal inverse, adjoint inverse — safe to apply in place. Package
// wilsonburg implements the outer fixed-point iteration that, given a
// symmetric autocorrelation with odd extent in every dimension, finds the
// coefficients making the filter's cascade with its own adjoint reproduce
// that autocorrelation.
//
// # Dimensionality
//
// The library supports 1-D, 2-D and 3-D grids. Dimensionality is carried as
// a tagged value (lag.Dim1, lag.Dim2, lag.Dim3) on the lag table rather than
// through three parallel type hierarchies; the same filter.Filter type
// handles all three.
//
// # Concurrency
//
// Every type in this module is single-threaded and holds no locks. A
// filter.Filter's coefficients are mutated only by Factorize, which the
// caller must not invoke concurrently with Apply/ApplyTranspose/
// ApplyInverse/ApplyInverseTranspose on the same Filter.
package nshpfilter
