// Package kernel implements the four linear operators a lag.Table defines
// (spec.md §4.2): Apply (forward causal convolution), ApplyTranspose
// (anti-causal convolution), ApplyInverse (causal recursion) and
// ApplyInverseTranspose (anti-causal recursion), for tables of
// dimensionality 1, 2 or 3. Every kernel supports aliased src/dst buffers
// via the visitation-order invariant described in spec.md §4.3: see the
// per-dimension apply_d{1,2,3}.go files for the concrete traversal each
// operator uses.
package kernel

import (
	"github.com/nshpfilter/nshpfilter/grid"
	"github.com/nshpfilter/nshpfilter/lag"
)

func checkShape(t *lag.Table, dst, src grid.Buffer) error {
	if !dst.Extent.Equal(src.Extent) {
		return ErrShapeMismatch
	}
	if dst.Extent.Dim() != t.Dim() {
		return ErrShapeMismatch
	}
	return nil
}

// Apply computes dst = A(src), the forward causal convolution defined by
// t: dst[i] = Σⱼ aⱼ·src[i-ℓⱼ], zero-extended at boundaries. src and dst may
// alias the same buffer.
func Apply(t *lag.Table, dst, src grid.Buffer) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	switch t.Dim() {
	case lag.Dim1:
		apply1D(t, dst, src)
	case lag.Dim2:
		apply2D(t, dst, src)
	case lag.Dim3:
		apply3D(t, dst, src)
	}
	return nil
}

// ApplyTranspose computes dst = Aᵀ(src), the anti-causal convolution:
// dst[i] = Σⱼ aⱼ·src[i+ℓⱼ], zero-extended at boundaries. src and dst may
// alias the same buffer.
func ApplyTranspose(t *lag.Table, dst, src grid.Buffer) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	switch t.Dim() {
	case lag.Dim1:
		applyTranspose1D(t, dst, src)
	case lag.Dim2:
		applyTranspose2D(t, dst, src)
	case lag.Dim3:
		applyTranspose3D(t, dst, src)
	}
	return nil
}

// ApplyInverse solves A(dst) = src for dst via the causal recursion
// dst[i] = (src[i] - Σ_{j≥1} aⱼ·dst[i-ℓⱼ]) / a0. Returns
// lag.ErrDegenerateLeadingCoefficient if a0 == 0. src and dst may alias the
// same buffer.
func ApplyInverse(t *lag.Table, dst, src grid.Buffer) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	if t.A0() == 0 {
		return lag.ErrDegenerateLeadingCoefficient
	}
	switch t.Dim() {
	case lag.Dim1:
		applyInverse1D(t, dst, src)
	case lag.Dim2:
		applyInverse2D(t, dst, src)
	case lag.Dim3:
		applyInverse3D(t, dst, src)
	}
	return nil
}

// ApplyInverseTranspose solves Aᵀ(dst) = src for dst via the anti-causal
// recursion dst[i] = (src[i] - Σ_{j≥1} aⱼ·dst[i+ℓⱼ]) / a0. Returns
// lag.ErrDegenerateLeadingCoefficient if a0 == 0. src and dst may alias the
// same buffer.
func ApplyInverseTranspose(t *lag.Table, dst, src grid.Buffer) error {
	if err := checkShape(t, dst, src); err != nil {
		return err
	}
	if t.A0() == 0 {
		return lag.ErrDegenerateLeadingCoefficient
	}
	switch t.Dim() {
	case lag.Dim1:
		applyInverseTranspose1D(t, dst, src)
	case lag.Dim2:
		applyInverseTranspose2D(t, dst, src)
	case lag.Dim3:
		applyInverseTranspose3D(t, dst, src)
	}
	return nil
}
