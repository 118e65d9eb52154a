package filter

import "errors"

// ErrShapeMismatch mirrors kernel.ErrShapeMismatch at the public surface, so
// callers depending only on package filter never need to import kernel to
// check error identity.
var ErrShapeMismatch = errors.New("filter: source and destination buffer shapes do not match")
