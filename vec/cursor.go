package vec

import "github.com/joshuapare/veckit/internal/assert"

// Cursor is a position within a vector's live range, acting as a
// contiguous pointer. Cursors index the vector rather than holding raw
// addresses, so a cursor held across a mutation keeps pointing at a
// position, not at a value:
//
//   - any reallocating operation invalidates every outstanding Ptr, and a
//     cursor's Ptr must be re-fetched;
//   - a non-reallocating insert at position p shifts what cursors in
//     [p, oldEnd) observe;
//   - an erase at position p does the same for [p, oldEnd).
type Cursor[T any] struct {
	v *Vector[T]
	i int
}

// Begin returns a cursor at position 0.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{v: v, i: 0}
}

// End returns the one-past-the-end cursor.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{v: v, i: v.size}
}

// CursorAt returns a cursor at position i. i may equal Len().
func (v *Vector[T]) CursorAt(i int) Cursor[T] {
	assert.That(i >= 0 && i <= v.size, "vec: cursor position %d out of range (len %d)", i, v.size)
	return Cursor[T]{v: v, i: i}
}

// Index returns the cursor's position.
func (c Cursor[T]) Index() int {
	return c.i
}

// Valid reports whether the cursor points at a live element.
func (c Cursor[T]) Valid() bool {
	return c.v != nil && c.i >= 0 && c.i < c.v.size
}

// Next returns the cursor one position to the right.
func (c Cursor[T]) Next() Cursor[T] {
	return Cursor[T]{v: c.v, i: c.i + 1}
}

// Prev returns the cursor one position to the left.
func (c Cursor[T]) Prev() Cursor[T] {
	return Cursor[T]{v: c.v, i: c.i - 1}
}

// Add returns the cursor n positions to the right (n may be negative).
func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{v: c.v, i: c.i + n}
}

// Get returns the element under the cursor. The cursor must be Valid.
func (c Cursor[T]) Get() T {
	assert.That(c.Valid(), "vec: cursor %d not valid", c.i)
	return *c.v.slot(c.i)
}

// Ptr returns the address of the element under the cursor. The cursor
// must be Valid. Invalidated by any reallocating operation.
func (c Cursor[T]) Ptr() *T {
	assert.That(c.Valid(), "vec: cursor %d not valid", c.i)
	return c.v.slot(c.i)
}

// Set replaces the element under the cursor, dropping the old value.
// The cursor must be Valid. The vector takes ownership of x.
func (c Cursor[T]) Set(x T) {
	assert.That(c.Valid(), "vec: cursor %d not valid", c.i)
	c.v.Set(c.i, x)
}
