package vec

import "github.com/joshuapare/veckit/internal/assert"

// PushBack appends x, taking ownership of the value. Amortized O(1).
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.EmplaceBack(func() (T, error) { return v.lc.Move(&x) })
	return err
}

// EmplaceBack constructs a new element at the end and returns its address.
// A nil ctor default-constructs. If the constructor fails, the vector is
// left exactly as it was (strong guarantee). Amortized O(1).
func (v *Vector[T]) EmplaceBack(ctor Ctor[T]) (*T, error) {
	c, err := v.Emplace(v.size, ctor)
	if err != nil {
		return nil, err
	}
	return c.Ptr(), nil
}

// PopBack drops the last element. The vector must be non-empty. O(1),
// never allocates.
func (v *Vector[T]) PopBack() {
	assert.That(v.size > 0, "vec: pop from empty vector")
	v.size--
	v.drop(v.slot(v.size))
}
