package kernel_test

import (
	"math"
	"testing"

	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/internal/floatx"
	"github.com/nshpfilter/nshpfilter/kernel"
	"github.com/nshpfilter/nshpfilter/lag"
)

func buf1D(vals ...float64) grid.Buffer {
	e := grid.NewExtent(lag.Dim1, len(vals))
	b := grid.NewBuffer(e)
	copy(b.Data, vals)
	return b
}

func almostEqual(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if !floatx.NearlyEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got %v want %v", i, got, want)
		}
	}
}

// Scenario 1: 1-D unit-impulse filter.
func TestScenario1_UnitImpulse(t *testing.T) {
	tbl, err := lag.New1D([]int{0}, []float64{1.0})
	if err != nil {
		t.Fatal(err)
	}
	src := buf1D(1, 2, 3, 4)
	dst := grid.NewBuffer(src.Extent)

	if err := kernel.Apply(tbl, dst, src); err != nil {
		t.Fatal(err)
	}
	almostEqual(t, dst.Data, []float64{1, 2, 3, 4}, 1e-12)

	dst2 := grid.NewBuffer(src.Extent)
	if err := kernel.ApplyInverse(tbl, dst2, src); err != nil {
		t.Fatal(err)
	}
	almostEqual(t, dst2.Data, []float64{1, 2, 3, 4}, 1e-12)
}

// Scenario 2: 1-D 2-tap filter, apply and applyInverse.
func TestScenario2_TwoTapFilter(t *testing.T) {
	tbl, err := lag.New1D([]int{0, 1}, []float64{1.0, -0.5})
	if err != nil {
		t.Fatal(err)
	}
	src := buf1D(1, 0, 0, 0)
	dst := grid.NewBuffer(src.Extent)

	if err := kernel.Apply(tbl, dst, src); err != nil {
		t.Fatal(err)
	}
	almostEqual(t, dst.Data, []float64{1, -0.5, 0, 0}, 1e-12)

	dst2 := grid.NewBuffer(src.Extent)
	if err := kernel.ApplyInverse(tbl, dst2, src); err != nil {
		t.Fatal(err)
	}
	almostEqual(t, dst2.Data, []float64{1, 0.5, 0.25, 0.125}, 1e-12)
}

// Scenario 3: adjoint check, same filter as scenario 2.
func TestScenario3_ApplyTranspose(t *testing.T) {
	tbl, err := lag.New1D([]int{0, 1}, []float64{1.0, -0.5})
	if err != nil {
		t.Fatal(err)
	}
	src := buf1D(0, 0, 0, 1)
	dst := grid.NewBuffer(src.Extent)

	if err := kernel.ApplyTranspose(tbl, dst, src); err != nil {
		t.Fatal(err)
	}
	almostEqual(t, dst.Data, []float64{0, 0, -0.5, 1}, 1e-12)
}

// In-place equivalence: applying with dst == src matches a separate-buffer
// apply followed by a copy, for all four operators.
func TestInPlaceEquivalence1D(t *testing.T) {
	tbl, err := lag.New1D([]int{0, 1, 3}, []float64{1.0, -0.3, 0.2})
	if err != nil {
		t.Fatal(err)
	}
	input := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	ops := []func(*lag.Table, grid.Buffer, grid.Buffer) error{
		kernel.Apply, kernel.ApplyTranspose, kernel.ApplyInverse, kernel.ApplyInverseTranspose,
	}
	for _, op := range ops {
		src := buf1D(input...)
		dst := grid.NewBuffer(src.Extent)
		if err := op(tbl, dst, src); err != nil {
			t.Fatal(err)
		}

		inplace := buf1D(input...)
		if err := op(tbl, inplace, inplace); err != nil {
			t.Fatal(err)
		}
		almostEqual(t, inplace.Data, dst.Data, 1e-12)
	}
}

// Adjoint identity: <Ax, y> == <x, A^T y>.
func TestAdjointIdentity1D(t *testing.T) {
	tbl, err := lag.New1D([]int{0, 1, 2}, []float64{1.0, -0.4, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	x := buf1D(1, -2, 3, -4, 5, -6)
	y := buf1D(0.5, 1.5, -0.5, 2, -1, 0.25)

	ax := grid.NewBuffer(x.Extent)
	if err := kernel.Apply(tbl, ax, x); err != nil {
		t.Fatal(err)
	}
	aty := grid.NewBuffer(y.Extent)
	if err := kernel.ApplyTranspose(tbl, aty, y); err != nil {
		t.Fatal(err)
	}

	var lhs, rhs float64
	for i := range ax.Data {
		lhs += ax.Data[i] * y.Data[i]
		rhs += x.Data[i] * aty.Data[i]
	}
	if math.Abs(lhs-rhs) > 1e-9 {
		t.Fatalf("adjoint identity violated: <Ax,y>=%v <x,Aty>=%v", lhs, rhs)
	}
}

// Scenario 5: 2-D causality, impulse at an interior cell.
func TestScenario5_2DCausality(t *testing.T) {
	tbl, err := lag.New2D([]int{0, 1, 0, 1}, []int{0, 0, 1, 1}, []float64{1, -0.25, -0.25, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	e := grid.NewExtent(lag.Dim2, 6, 6)
	src := grid.NewBuffer(e)
	i1, i2 := 2, 2
	src.Set([3]int{i1, i2, 0}, 1)
	dst := grid.NewBuffer(e)

	if err := kernel.Apply(tbl, dst, src); err != nil {
		t.Fatal(err)
	}

	expectedNonZero := map[[2]int]bool{
		{i1, i2}:     true,
		{i1 + 1, i2}: true,
		{i1, i2 + 1}: true,
		{i1 + 1, i2 + 1}: true,
	}
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			v := dst.At([3]int{a, b, 0})
			if expectedNonZero[[2]int{a, b}] {
				if v == 0 {
					t.Errorf("expected non-zero at (%d,%d)", a, b)
				}
			} else if v != 0 {
				t.Errorf("expected zero at (%d,%d), got %v", a, b, v)
			}
		}
	}
}

// Scenario 6: in-place 3-D forward/inverse round trip on a 16x16x16 grid.
func TestScenario6_3DRoundTrip(t *testing.T) {
	l1 := []int{0, 1, 0, 0, 1, 1, 0, 1}
	l2 := []int{0, 0, 1, 0, 1, 0, 1, 1}
	l3 := []int{0, 0, 0, 1, 0, 1, 1, 1}
	coeffs := []float64{1.0, -0.1, -0.1, -0.1, 0.05, 0.05, 0.05, -0.02}
	tbl, err := lag.New3D(l1, l2, l3, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	e := grid.NewExtent(lag.Dim3, 16, 16, 16)
	src := grid.NewBuffer(e)
	seed := uint64(12345)
	next := func() float64 {
		seed = seed*6364136223846793005 + 1442695040888963407
		return float64(int32(seed>>32)) / float64(1<<31)
	}
	for i := range src.Data {
		src.Data[i] = next()
	}
	original := append([]float64(nil), src.Data...)

	forward := grid.NewBuffer(e)
	if err := kernel.Apply(tbl, forward, src); err != nil {
		t.Fatal(err)
	}

	inplace := grid.NewBuffer(e)
	copy(inplace.Data, forward.Data)
	if err := kernel.ApplyInverse(tbl, inplace, inplace); err != nil {
		t.Fatal(err)
	}

	_, max1 := tbl.Bounds(0)
	_, max2 := tbl.Bounds(1)
	_, max3 := tbl.Bounds(2)

	maxErr := 0.0
	for i3 := max3; i3 < 16; i3++ {
		for i2 := max2; i2 < 16; i2++ {
			for i1 := max1; i1 < 16; i1++ {
				idx := e.Index([3]int{i1, i2, i3})
				d := math.Abs(inplace.Data[idx] - original[idx])
				if d > maxErr {
					maxErr = d
				}
			}
		}
	}
	if maxErr > 1e-5 {
		t.Fatalf("max abs error %v exceeds 1e-5", maxErr)
	}
}

func TestShapeMismatch(t *testing.T) {
	tbl, _ := lag.New1D([]int{0}, []float64{1})
	src := buf1D(1, 2, 3)
	dst := grid.NewBuffer(grid.NewExtent(lag.Dim1, 4))
	if err := kernel.Apply(tbl, dst, src); err != kernel.ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestDegenerateLeadingCoefficient(t *testing.T) {
	tbl, _ := lag.New1D([]int{0, 1}, []float64{0, 1})
	src := buf1D(1, 2, 3)
	dst := grid.NewBuffer(src.Extent)
	if err := kernel.ApplyInverse(tbl, dst, src); err != lag.ErrDegenerateLeadingCoefficient {
		t.Fatalf("expected ErrDegenerateLeadingCoefficient, got %v", err)
	}
}
