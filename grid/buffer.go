package grid

// Buffer is a caller-owned dense D-dimensional array of reals, addressed in
// row-major order by Extent.Index. The core never retains a Buffer beyond
// the call it was passed to; it writes only into buffers the caller
// explicitly designates as a destination.
type Buffer struct {
	Extent Extent
	Data   []float64
}

// NewBuffer allocates a zeroed Buffer of the given extent.
func NewBuffer(e Extent) Buffer {
	return Buffer{Extent: e, Data: make([]float64, e.Size())}
}

// At returns the value at idx, or 0 if idx is out of range — the
// zero-extension convention from spec.md §4.2/§4.3.
func (b Buffer) At(idx [3]int) float64 {
	if !b.Extent.Contains(idx) {
		return 0
	}
	return b.Data[b.Extent.Index(idx)]
}

// Set writes v at idx. Unlike At, it does not check idx against the
// extent: an out-of-range coordinate panics only when its flat offset falls
// outside Data, and otherwise writes to a different cell. Callers that may
// hold an out-of-range coordinate check it with Extent.Contains first.
func (b Buffer) Set(idx [3]int, v float64) {
	b.Data[b.Extent.Index(idx)] = v
}
