package wilsonburg

import "errors"

var (
	// ErrNotConverged is raised when Factorize exhausts its iteration
	// budget without satisfying the convergence test, per spec.md §4.4
	// step 6 and §7.
	ErrNotConverged = errors.New("wilsonburg: factorization did not converge within maxiter")

	// ErrDegenerateCoefficient is raised when a0 becomes zero during
	// factorization, making the causal recursion unsolvable. Treated as a
	// factorization failure per spec.md §7.
	ErrDegenerateCoefficient = errors.New("wilsonburg: leading coefficient a0 is zero during factorization")

	// ErrAutocorrelationNotOdd is raised when R's extent is not odd in
	// every populated dimension, violating the autocorrelation buffer
	// shape spec.md §3 requires.
	ErrAutocorrelationNotOdd = errors.New("wilsonburg: autocorrelation buffer must have odd extent in every dimension")

	// ErrShapeMismatch is raised when R's dimensionality does not match
	// the lag table being factorized.
	ErrShapeMismatch = errors.New("wilsonburg: autocorrelation dimensionality does not match lag table")

	// ErrLagOutsideWorkspace is raised when a lag tuple's padded-workspace
	// coefficient index falls outside the allocated workspace. spec.md §9
	// leaves this an open question between silently skipping the update
	// and raising; this module raises, since a silent skip would corrupt
	// a coefficient without any caller-visible signal.
	ErrLagOutsideWorkspace = errors.New("wilsonburg: lag tuple falls outside the padded workspace")

	// ErrInvalidOptions is raised when MaxIter <= 0 or Epsilon <= 0.
	ErrInvalidOptions = errors.New("wilsonburg: maxiter and epsilon must be positive")
)
