// Package conv implements the finite linear convolution and cross-correlation
// collaborator spec.md §6 leaves abstract ("given lengths, origins, and
// buffers, computes linear convolution and cross-correlation"). It is a
// direct O(n·m) time-domain routine, grounded on the windowed
// accumulate-with-explicit-offset shape of silk/lpc_analysis.go's Burg
// loops, with exported names (Linear, CrossCorrelate) following
// CWBudde/algo-dsp's dsp/conv package conventions.
//
// Neither wilsonburg nor kernel calls into this package on their hot path —
// spec.md's Non-goals exclude a frequency-domain implementation of the four
// core operators, and the recursive core never needs a convolution utility
// of its own. This package exists for callers building FIR filters or
// synthetic test signals outside the recursive core, exactly as spec.md §6
// describes it: "not strictly needed by the recursive core, but the core
// must compose with it."
package conv

// Signal pairs a sample buffer with the index of its zero-lag sample
// (its origin), following the (length, origin, buffer) convention spec.md
// §6 specifies for the convolution collaborator.
type Signal struct {
	Data   []float64
	Origin int
}

// at returns s.Data[i + s.Origin], or 0 if that index is out of range.
func (s Signal) at(i int) float64 {
	k := i + s.Origin
	if k < 0 || k >= len(s.Data) {
		return 0
	}
	return s.Data[k]
}

// Linear computes the finite linear convolution z[i] = Σⱼ x[j]·y[i-j] over
// the index range implied by x and y's lengths and origins, returning a
// Signal whose Data spans every index at which the product support is
// non-empty and whose Origin marks that range's zero-lag sample.
func Linear(x, y Signal) Signal {
	lo := -x.Origin + -y.Origin
	hi := (len(x.Data) - 1 - x.Origin) + (len(y.Data) - 1 - y.Origin)
	out := make([]float64, hi-lo+1)
	for i := lo; i <= hi; i++ {
		var sum float64
		for jx := 0; jx < len(x.Data); jx++ {
			j := jx - x.Origin
			sum += x.at(j) * y.at(i-j)
		}
		out[i-lo] = sum
	}
	return Signal{Data: out, Origin: -lo}
}

// CrossCorrelate computes z[i] = Σⱼ x[j]·y[i+j], the cross-correlation of x
// against y, using the same (length, origin) convention as Linear.
func CrossCorrelate(x, y Signal) Signal {
	lo := -x.Origin - (len(y.Data) - 1 - y.Origin)
	hi := (len(x.Data) - 1 - x.Origin) - (-y.Origin)
	out := make([]float64, hi-lo+1)
	for i := lo; i <= hi; i++ {
		var sum float64
		for jx := 0; jx < len(x.Data); jx++ {
			j := jx - x.Origin
			sum += x.at(j) * y.at(i+j)
		}
		out[i-lo] = sum
	}
	return Signal{Data: out, Origin: -lo}
}
