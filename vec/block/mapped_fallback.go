//go:build !unix

package block

// NewMapped falls back to the heap backend on platforms without anonymous
// mappings. The pointer-free restriction still applies so code written
// against mapped blocks behaves identically everywhere.
func NewMapped[T any](capacity int) (Block[T], error) {
	if err := rejectPointerElems[T](); err != nil {
		return Block[T]{}, err
	}
	return New[T](capacity)
}

func unmap(raw []byte) error {
	return nil
}
