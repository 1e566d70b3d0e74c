package vec

import (
	"github.com/joshuapare/veckit/internal/assert"
	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/vec/block"
)

// Vector is a growable sequence with contiguous storage. It owns exactly
// one storage region plus a live count: slots [0, Len()) hold live
// elements, slots [Len(), Cap()) are dead memory.
//
// A Vector is not safe for concurrent use; callers serialize access.
type Vector[T any] struct {
	lc    Lifecycle[T]
	data  block.Block[T]
	size  int
	cfg   config
	stats Stats
}

// New returns an empty vector for plain value types. Never allocates.
func New[T any](opts ...Option) *Vector[T] {
	return NewWith(Values[T](), opts...)
}

// NewWith returns an empty vector using the given element lifecycle.
// Never allocates.
func NewWith[T any](lc Lifecycle[T], opts ...Option) *Vector[T] {
	v := &Vector[T]{lc: lc}
	for _, o := range opts {
		o(&v.cfg)
	}
	return v
}

// NewSized returns a vector of n default-constructed plain values.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	return NewSizedWith(Values[T](), n, opts...)
}

// NewSizedWith returns a vector of n default-constructed elements with
// capacity n. If construction fails partway, every element built so far is
// dropped and the region released before the error propagates.
func NewSizedWith[T any](lc Lifecycle[T], n int, opts ...Option) (*Vector[T], error) {
	assert.That(n >= 0, "vec: negative size %d", n)
	v := NewWith(lc, opts...)
	if n == 0 {
		return v, nil
	}
	b, err := v.alloc(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x, err := lc.Init()
		if err != nil {
			for j := 0; j < i; j++ {
				lc.Drop(b.Ptr(j))
			}
			releaseQuiet(&b)
			return nil, err
		}
		*b.Ptr(i) = x
	}
	v.data.Swap(&b)
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the element at index i. i must be < Len().
func (v *Vector[T]) At(i int) T {
	assert.That(i >= 0 && i < v.size, "vec: index %d out of range (len %d)", i, v.size)
	return *v.slot(i)
}

// Ptr returns the address of the element at index i. i must be < Len().
// The address is invalidated by any reallocating operation.
func (v *Vector[T]) Ptr(i int) *T {
	assert.That(i >= 0 && i < v.size, "vec: index %d out of range (len %d)", i, v.size)
	return v.slot(i)
}

// Set replaces the element at index i with x, dropping the old value.
// i must be < Len(). The vector takes ownership of x.
func (v *Vector[T]) Set(i int, x T) {
	assert.That(i >= 0 && i < v.size, "vec: index %d out of range (len %d)", i, v.size)
	v.drop(v.slot(i))
	*v.slot(i) = x
}

// Reserve grows capacity to at least n, relocating live elements into a
// fresh region per the lifecycle's relocation policy. No-op when capacity
// already suffices. Under RelocateCopy a failure leaves the vector
// untouched; under RelocateMove a move failure downgrades to the basic
// guarantee (elements already moved out are left reset).
func (v *Vector[T]) Reserve(n int) error {
	assert.That(n >= 0, "vec: negative capacity %d", n)
	if n <= v.data.Cap() {
		return nil
	}
	nb, err := v.alloc(n)
	if err != nil {
		return err
	}
	if err := v.relocateSplit(&nb, v.size, 0); err != nil {
		releaseQuiet(&nb)
		return err
	}
	v.commit(&nb)
	return nil
}

// Resize grows or shrinks the live range to exactly n elements. Shrinking
// drops the tail; growing reserves capacity and default-constructs the new
// tail. A construction failure leaves the already-grown prefix live.
func (v *Vector[T]) Resize(n int) error {
	assert.That(n >= 0, "vec: negative size %d", n)
	switch {
	case n < v.size:
		for i := n; i < v.size; i++ {
			v.drop(v.slot(i))
		}
		v.size = n
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for v.size < n {
			x, err := v.lc.Init()
			if err != nil {
				return err
			}
			*v.slot(v.size) = x
			v.size++
		}
	}
	return nil
}

// slot returns the address of slot i without a liveness check.
func (v *Vector[T]) slot(i int) *T {
	return v.data.Ptr(i)
}

func (v *Vector[T]) drop(p *T) {
	v.lc.Drop(p)
	v.stats.Dropped++
}

// alloc allocates a region for the configured backend.
func (v *Vector[T]) alloc(capacity int) (block.Block[T], error) {
	var (
		b   block.Block[T]
		err error
	)
	if v.cfg.mapped {
		b, err = block.NewMapped[T](capacity)
	} else {
		b, err = block.New[T](capacity)
	}
	if err != nil {
		return block.Block[T]{}, err
	}
	v.stats.Allocs++
	return b, nil
}

// grownCap returns the capacity for implicit growth: max(1, cap*2).
func (v *Vector[T]) grownCap() (int, error) {
	c := v.data.Cap()
	if c == 0 {
		return 1, nil
	}
	nc, ok := buf.MulFits(c, 2)
	if !ok {
		return 0, block.ErrTooLarge
	}
	return nc, nil
}

// relocateSplit populates nb from the live range: slots [0, at) land at
// the same index, slots [at, size) land gap slots further right. Reserve
// uses at=size, gap=0; insertion-with-reallocation leaves a one-slot gap
// for the element already constructed at index at.
//
// Under RelocateCopy a failure drops every duplicate made so far and
// returns with the old region intact. Under RelocateMove a failure drops
// the values already landed in nb; their sources remain live as reset
// values, so invariants hold but content may have changed.
func (v *Vector[T]) relocateSplit(nb *block.Block[T], at, gap int) error {
	byCopy := v.lc.Policy() == RelocateCopy
	place := func(i int) int {
		if i < at {
			return i
		}
		return i + gap
	}
	for i := 0; i < v.size; i++ {
		var (
			x   T
			err error
		)
		if byCopy {
			x, err = v.lc.Copy(*v.slot(i))
		} else {
			x, err = v.lc.Move(v.slot(i))
		}
		if err != nil {
			for j := 0; j < i; j++ {
				v.lc.Drop(nb.Ptr(place(j)))
			}
			return err
		}
		*nb.Ptr(place(i)) = x
		if byCopy {
			v.stats.Copied++
		} else {
			v.stats.Moved++
		}
	}
	return nil
}

// commit adopts nb as the live region: the old live slots (now moved-from
// values or duplicated originals) are dropped and the old region released.
func (v *Vector[T]) commit(nb *block.Block[T]) {
	for i := 0; i < v.size; i++ {
		v.drop(v.slot(i))
	}
	v.data.Swap(nb)
	releaseQuiet(nb)
	v.stats.Grows++
}

// releaseQuiet releases a region, discarding the error: unmapping an owned
// private mapping fails only for arguments Release never produces.
func releaseQuiet[T any](b *block.Block[T]) {
	_ = b.Release()
}
