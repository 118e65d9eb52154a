// Package spectral implements the FFT-backed auxiliary routine spec.md §6
// leaves abstract: here, a periodogram-based autocorrelation estimator used
// by cmd/nshpdemo to manufacture a
// realistic, positive-semi-definite autocorrelation buffer from a synthetic
// signal instead of a hand-typed literal.
//
// This ships a correct, not maximally fast, transform (a direct O(n²) DFT
// over math/cmplx, arbitrary length, no radix-2 restriction), mirroring
// celt/mdct_libopus.go's "ship a correct general transform first" posture
// in the teacher. Nothing on wilsonburg's or kernel's hot path calls this
// package; it exists purely to construct test and demo inputs.
package spectral

import (
	"math"
	"math/cmplx"

	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
)

func dft(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func idft(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for t := 0; t < n; t++ {
		var sum complex128
		for k := 0; k < n; k++ {
			angle := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[k] * cmplx.Exp(complex(0, angle))
		}
		out[t] = sum / complex(float64(n), 0)
	}
	return out
}

// Autocorrelation estimates a 1-D autocorrelation sequence from signal via
// the Wiener–Khinchin theorem: the inverse transform of the periodogram
// (squared magnitude of the forward transform). signal is zero-padded to
// twice its length before transforming so the circular autocorrelation of
// the padded sequence approximates the linear autocorrelation for lags up
// to len(signal). The result is returned as an odd-extent grid.Buffer of
// size 2*lags+1 with the zero-lag sample at the center and R[-h] = R[h],
// matching the symmetric autocorrelation buffer convention of spec.md §3.
func Autocorrelation(signal []float64, lags int) grid.Buffer {
	if lags < 0 {
		lags = 0
	}
	n := len(signal)
	padded := make([]complex128, 2*n)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	spectrum := dft(padded)
	periodogram := make([]complex128, len(spectrum))
	for i, c := range spectrum {
		mag := cmplx.Abs(c)
		periodogram[i] = complex(mag*mag, 0)
	}
	r := idft(periodogram)

	e := grid.NewExtent(lag.Dim1, 2*lags+1)
	out := grid.NewBuffer(e)
	center := lags
	scale := 1.0 / float64(n)
	for h := 0; h <= lags; h++ {
		var v float64
		if h < len(r) {
			v = real(r[h]) * scale
		}
		out.Data[center+h] = v
		out.Data[center-h] = v
	}
	return out
}
