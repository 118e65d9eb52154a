// Package floatx holds small numeric helpers used by arrayops and the
// kernel tests: a tolerance-based equality check and a compensated
// summation routine for the reduction loops that accumulate many terms.
package floatx

import "math"

// NearlyEqual reports whether a and b differ by no more than tol, using an
// absolute comparison scaled by the larger operand's magnitude so the check
// stays meaningful for both near-zero and large values.
func NearlyEqual(a, b, tol float64) bool {
	d := math.Abs(a - b)
	if d <= tol {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return d <= tol*scale
}

// KahanSum adds terms with compensated summation, reducing the rounding
// error that accumulates when summing many float64 values of varying
// magnitude, as arrayops.Dot does over whole buffers.
func KahanSum(terms []float64) float64 {
	var sum, c float64
	for _, t := range terms {
		y := t - c
		s := sum + y
		c = (s - sum) - y
		sum = s
	}
	return sum
}
