//go:build unix

package block

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/veckit/internal/assert"
	"github.com/joshuapare/veckit/internal/buf"
)

// NewMapped allocates a block backed by a private anonymous mapping. The
// region lives outside the Go heap, so T must be pointer-free. A capacity
// of zero allocates nothing. A zero-size element type degrades to the heap
// backend, since a zero-length mapping is invalid.
func NewMapped[T any](capacity int) (Block[T], error) {
	assert.That(capacity >= 0, "block: negative capacity %d", capacity)
	if err := rejectPointerElems[T](); err != nil {
		return Block[T]{}, err
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}
	var zero T
	size, ok := buf.MulFits(capacity, int(unsafe.Sizeof(zero)))
	if !ok {
		return Block[T]{}, ErrTooLarge
	}
	if size == 0 {
		return New[T](capacity)
	}
	raw, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return Block[T]{}, fmt.Errorf("block: mmap %d bytes: %w", size, err)
	}
	slots := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), capacity)
	return Block[T]{slots: slots, raw: raw}, nil
}

func unmap(raw []byte) error {
	if err := unix.Munmap(raw); err != nil {
		return fmt.Errorf("block: munmap: %w", err)
	}
	return nil
}
