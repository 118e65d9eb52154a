package kernel

import "errors"

// ErrShapeMismatch indicates the source and destination buffers passed to
// an operator kernel do not share the same extent, or do not share the
// lag table's dimensionality. This is a programmer error, raised
// synchronously, per spec.md §4.3 and §7.
var ErrShapeMismatch = errors.New("kernel: source and destination buffer shapes do not match")
