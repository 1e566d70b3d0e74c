package vec

import "github.com/joshuapare/veckit/internal/assert"

// Insert places x before position i, taking ownership of the value.
// i may equal Len() (append). See Emplace for the guarantee rules.
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func() (T, error) { return v.lc.Move(&x) })
	return err
}

// Emplace constructs a new element before position i and returns a cursor
// to it. i may equal Len(). A nil ctor default-constructs.
//
// When the vector is at capacity the whole operation reallocates and is
// strong under RelocateCopy: any failure leaves the vector untouched.
// When spare capacity exists the tail is shifted in place instead, which
// is cheaper but only basic: a move failure mid-shift leaves a valid
// vector whose arrangement is unspecified. The two paths deliberately
// differ; callers needing the strong guarantee at all times can Reserve
// ahead or use a RelocateCopy lifecycle and full vectors.
func (v *Vector[T]) Emplace(i int, ctor Ctor[T]) (Cursor[T], error) {
	assert.That(i >= 0 && i <= v.size, "vec: insert position %d out of range (len %d)", i, v.size)
	if ctor == nil {
		ctor = v.lc.Init
	}
	if v.size == v.data.Cap() {
		return v.emplaceGrow(i, ctor)
	}
	if i == v.size {
		// Construct directly in the end slot; nothing to undo on failure.
		x, err := ctor()
		if err != nil {
			return Cursor[T]{}, err
		}
		*v.slot(i) = x
		v.size++
		return Cursor[T]{v: v, i: i}, nil
	}
	return v.emplaceShift(i, ctor)
}

// Erase removes the element at position i by shifting [i+1, Len()) left
// one slot, then popping the duplicated last slot. Returns a cursor to the
// element now at position i. Basic guarantee: a move failure mid-shift
// leaves a valid vector with unspecified arrangement.
func (v *Vector[T]) Erase(i int) (Cursor[T], error) {
	assert.That(i >= 0 && i < v.size, "vec: erase position %d out of range (len %d)", i, v.size)
	for j := i; j < v.size-1; j++ {
		if err := v.lc.Set(v.slot(j), v.slot(j+1)); err != nil {
			return Cursor[T]{}, err
		}
		v.stats.Moved++
	}
	v.PopBack()
	return Cursor[T]{v: v, i: i}, nil
}

// emplaceShift inserts into spare capacity. The element is built as a
// temporary first, the old last element is moved into the new end slot,
// [i, oldLen-1) is shifted right one slot back-to-front, and the temporary
// is move-assigned into slot i.
func (v *Vector[T]) emplaceShift(i int, ctor Ctor[T]) (Cursor[T], error) {
	tmp, err := ctor()
	if err != nil {
		// Nothing touched yet; strong.
		return Cursor[T]{}, err
	}
	last, err := v.lc.Move(v.slot(v.size - 1))
	if err != nil {
		v.lc.Drop(&tmp)
		return Cursor[T]{}, err
	}
	*v.slot(v.size) = last
	v.size++
	v.stats.Moved++
	for j := v.size - 2; j > i; j-- {
		if err := v.lc.Set(v.slot(j), v.slot(j-1)); err != nil {
			v.lc.Drop(&tmp)
			return Cursor[T]{}, err
		}
		v.stats.Moved++
	}
	if err := v.lc.Set(v.slot(i), &tmp); err != nil {
		v.lc.Drop(&tmp)
		return Cursor[T]{}, err
	}
	return Cursor[T]{v: v, i: i}, nil
}

// emplaceGrow reallocates and inserts in one pass. The new element is
// constructed first, directly in its final slot of the new region: if that
// fails nothing has been touched. Only then are the elements before and
// after i relocated around it.
func (v *Vector[T]) emplaceGrow(i int, ctor Ctor[T]) (Cursor[T], error) {
	nc, err := v.grownCap()
	if err != nil {
		return Cursor[T]{}, err
	}
	nb, err := v.alloc(nc)
	if err != nil {
		return Cursor[T]{}, err
	}
	x, err := ctor()
	if err != nil {
		releaseQuiet(&nb)
		return Cursor[T]{}, err
	}
	*nb.Ptr(i) = x
	if err := v.relocateSplit(&nb, i, 1); err != nil {
		v.lc.Drop(nb.Ptr(i))
		releaseQuiet(&nb)
		return Cursor[T]{}, err
	}
	v.commit(&nb)
	v.size++
	return Cursor[T]{v: v, i: i}, nil
}
