package floatx_test

import (
	"testing"

	"github.com/nshpfilter/nshpfilter/internal/floatx"
)

func TestNearlyEqual(t *testing.T) {
	cases := []struct {
		a, b, tol float64
		want      bool
	}{
		{1.0, 1.0, 1e-9, true},
		{1.0, 1.0 + 1e-12, 1e-9, true},
		{1.0, 1.1, 1e-9, false},
		{0.0, 0.0, 1e-12, true},
		{1e6, 1e6 * (1 + 1e-10), 1e-9, true},
	}
	for _, c := range cases {
		if got := floatx.NearlyEqual(c.a, c.b, c.tol); got != c.want {
			t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", c.a, c.b, c.tol, got, c.want)
		}
	}
}

func TestKahanSum(t *testing.T) {
	terms := make([]float64, 1000)
	for i := range terms {
		terms[i] = 0.1
	}
	got := floatx.KahanSum(terms)
	want := 100.0
	if !floatx.NearlyEqual(got, want, 1e-9) {
		t.Errorf("KahanSum = %v, want %v", got, want)
	}
}

func TestKahanSum_Empty(t *testing.T) {
	if got := floatx.KahanSum(nil); got != 0 {
		t.Errorf("KahanSum(nil) = %v, want 0", got)
	}
}
