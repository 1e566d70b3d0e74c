package block

import "errors"

var (
	// ErrTooLarge indicates the requested capacity does not fit in the
	// address space once multiplied by the element size.
	ErrTooLarge = errors.New("block: capacity exceeds addressable size")

	// ErrPointerElems indicates a mapped block was requested for an element
	// type containing pointers. Mapped regions are invisible to the garbage
	// collector, so pointers stored there would not keep referents alive.
	ErrPointerElems = errors.New("block: mapped blocks require pointer-free element types")
)
