package block

import (
	"unsafe"

	"github.com/joshuapare/veckit/internal/assert"
	"github.com/joshuapare/veckit/internal/buf"
)

// Block owns one contiguous region of element slots. The zero value is an
// empty block (capacity 0, no region).
//
// Slots start out as zeroed memory, not live elements. A Block never
// constructs or destroys elements; it only carries the region.
type Block[T any] struct {
	slots []T

	// raw is the backing mapping when the region came from NewMapped.
	// nil for heap-backed and empty blocks.
	raw []byte
}

// New allocates a heap-backed block with room for capacity elements.
// A capacity of zero allocates nothing.
func New[T any](capacity int) (Block[T], error) {
	assert.That(capacity >= 0, "block: negative capacity %d", capacity)
	if capacity == 0 {
		return Block[T]{}, nil
	}
	var zero T
	if _, ok := buf.MulFits(capacity, int(unsafe.Sizeof(zero))); !ok {
		return Block[T]{}, ErrTooLarge
	}
	return Block[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of element slots in the region.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// Mapped reports whether the region is a private anonymous mapping.
func (b *Block[T]) Mapped() bool {
	return b.raw != nil
}

// Ptr returns the address of slot i. The slot may or may not hold a live
// element; the caller tracks liveness. i must be < Cap().
func (b *Block[T]) Ptr(i int) *T {
	assert.That(i >= 0 && i < len(b.slots), "block: slot %d out of range (cap %d)", i, len(b.slots))
	return &b.slots[i]
}

// Slots returns the full slot region as a slice of length Cap().
func (b *Block[T]) Slots() []T {
	return b.slots
}

// Swap exchanges the regions of b and o in constant time. This is the
// building block for commit-by-exchange operations in package vec.
func (b *Block[T]) Swap(o *Block[T]) {
	b.slots, o.slots = o.slots, b.slots
	b.raw, o.raw = o.raw, b.raw
}

// Take transfers ownership of the region to the returned block, leaving b
// empty (capacity 0, no region). No allocation occurs.
func (b *Block[T]) Take() Block[T] {
	var out Block[T]
	out.Swap(b)
	return out
}

// Release frees the region and leaves b empty. Any live elements must
// already have been dropped by the owner; Release has no knowledge of them.
// Releasing an empty block is a no-op.
func (b *Block[T]) Release() error {
	raw := b.raw
	b.slots = nil
	b.raw = nil
	if raw != nil {
		return unmap(raw)
	}
	return nil
}
