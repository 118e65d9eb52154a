package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nshpfilter/nshpfilter/filter"
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
	"github.com/nshpfilter/nshpfilter/wilsonburg"
)

func TestFilter_ApplyAndInverseRoundTrip(t *testing.T) {
	tbl, err := lag.New1D([]int{0, 1}, []float64{1.0, -0.5})
	require.NoError(t, err)
	f := filter.New(tbl)

	e := grid.NewExtent(lag.Dim1, 4)
	src := grid.NewBuffer(e)
	src.Data = []float64{1, 0, 0, 0}

	applied := grid.NewBuffer(e)
	require.NoError(t, f.Apply(applied, src))

	inverted := grid.NewBuffer(e)
	require.NoError(t, f.ApplyInverse(inverted, applied))

	assert.InDeltaSlice(t, src.Data, inverted.Data, 1e-9)
}

func TestFilter_ShapeMismatch(t *testing.T) {
	tbl, _ := lag.New1D([]int{0}, []float64{1})
	f := filter.New(tbl)

	src := grid.NewBuffer(grid.NewExtent(lag.Dim1, 3))
	dst := grid.NewBuffer(grid.NewExtent(lag.Dim1, 5))

	err := f.Apply(dst, src)
	assert.ErrorIs(t, err, filter.ErrShapeMismatch)
}

func TestFilter_AccessorsReturnDefensiveCopies(t *testing.T) {
	tbl, _ := lag.New1D([]int{0, 2}, []float64{1, 0.5})
	f := filter.New(tbl)

	lags := f.Lags(0)
	lags[0] = 99
	assert.Equal(t, []int{0, 2}, f.Lags(0))

	coeffs := f.Coefficients()
	coeffs[0] = 99
	assert.Equal(t, []float64{1, 0.5}, f.Coefficients())
}

func TestFilter_Factorize(t *testing.T) {
	tbl, err := lag.New1D([]int{0, 1}, nil)
	require.NoError(t, err)
	f := filter.New(tbl)

	e := grid.NewExtent(lag.Dim1, 3)
	r := grid.NewBuffer(e)
	r.Data = []float64{-0.5, 1.25, -0.5}

	err = f.Factorize(r, wilsonburg.NewOptions(50, 1e-8))
	require.NoError(t, err)

	coeffs := f.Coefficients()
	assert.InDelta(t, 1.0, coeffs[0], 1e-4)
	assert.InDelta(t, -0.5, coeffs[1], 1e-4)
}
