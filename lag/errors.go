package lag

import "errors"

// Sentinel errors returned by the constructors in this package.
var (
	// ErrMismatchedLengths indicates the per-dimension lag arrays (and the
	// coefficient array) do not all share the same length.
	ErrMismatchedLengths = errors.New("lag: mismatched array lengths")

	// ErrEmptyTable indicates a lag table with zero entries.
	ErrEmptyTable = errors.New("lag: table must have at least one entry")

	// ErrZeroLagNotFirst indicates entry 0 is not the zero lag tuple.
	ErrZeroLagNotFirst = errors.New("lag: first entry must be the zero lag")

	// ErrNotNSHP indicates an entry j >= 1 violates the non-symmetric
	// half-plane causality ordering for the table's dimensionality.
	ErrNotNSHP = errors.New("lag: entry violates NSHP causality ordering")

	// ErrDegenerateLeadingCoefficient indicates a0 == 0, which makes the
	// table non-invertible. Returned by the kernel operations that invert
	// the filter (ApplyInverse, ApplyInverseTranspose); wilsonburg.Factorize
	// reports the same condition as wilsonburg.ErrDegenerateCoefficient.
	ErrDegenerateLeadingCoefficient = errors.New("lag: leading coefficient a0 is zero")
)
