package spectral_test

import (
	"math"
	"testing"

	"github.com/nshpfilter/nshpfilter/spectral"
)

func TestAutocorrelation_SymmetricAndOddExtent(t *testing.T) {
	signal := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	r := spectral.Autocorrelation(signal, 3)

	if !r.Extent.Odd() {
		t.Fatal("expected odd extent")
	}
	if r.Extent.Size() != 7 {
		t.Fatalf("expected size 7, got %d", r.Extent.Size())
	}
	for h := 1; h <= 3; h++ {
		pos := r.Data[3+h]
		neg := r.Data[3-h]
		if math.Abs(pos-neg) > 1e-9 {
			t.Fatalf("expected R[%d] == R[-%d], got %v vs %v", h, h, pos, neg)
		}
	}
}

func TestAutocorrelation_ZeroLagIsEnergy(t *testing.T) {
	signal := []float64{2, 2, 2, 2}
	r := spectral.Autocorrelation(signal, 1)

	// Zero-lag of the (1/n-scaled, zero-padded) autocorrelation is
	// non-negative and the dominant sample for a constant signal.
	zeroLag := r.Data[1]
	if zeroLag <= 0 {
		t.Fatalf("expected positive zero-lag energy, got %v", zeroLag)
	}
	if zeroLag < math.Abs(r.Data[0]) || zeroLag < math.Abs(r.Data[2]) {
		t.Fatalf("expected zero-lag to dominate, got R=%v", r.Data)
	}
}
