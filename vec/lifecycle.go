package vec

// RelocatePolicy selects how live elements travel into a new region when a
// vector grows. The policy is a property of the element type, answered once
// per Lifecycle rather than per operation.
type RelocatePolicy uint8

const (
	// RelocateMove relocates elements by moving them. Correct for types
	// whose Move and Set cannot fail, and for types that cannot be
	// duplicated at all.
	RelocateMove RelocatePolicy = iota

	// RelocateCopy relocates elements by duplicating them, keeping the old
	// region fully intact until every slot of the new region is populated.
	// Choose this when Copy can fail but duplication is possible: a failed
	// duplication then leaves the vector untouched, which a failed move
	// partway through a relocation cannot.
	RelocateCopy
)

// Ctor produces one new element value. It is the argument-forwarding hook
// used by Emplace and EmplaceBack: closure captures stand in for
// constructor arguments.
type Ctor[T any] func() (T, error)

// Lifecycle defines how a Vector constructs, duplicates, relocates and
// tears down elements of type T. Every element entering or leaving a
// vector does so through exactly one of these hooks.
//
// Contracts:
//   - Move takes ownership of *src and leaves it reset to a valid empty
//     value on success. On failure *src must remain valid (its logical
//     content is unspecified).
//   - Set move-assigns *src over the live value in *dst, resetting *src on
//     success. Same failure contract as Move.
//   - Drop tears down a live value and never fails. Dropping a reset
//     (moved-from) value must be harmless.
type Lifecycle[T any] interface {
	// Init default-constructs a new element.
	Init() (T, error)

	// Copy duplicates v into an independent value.
	Copy(v T) (T, error)

	// Move takes ownership of *src, resetting it.
	Move(src *T) (T, error)

	// Set move-assigns *src into the live slot *dst.
	Set(dst *T, src *T) error

	// Drop tears down the live value at v.
	Drop(v *T)

	// Policy reports how elements of this type should be relocated.
	Policy() RelocatePolicy
}

// Values returns the lifecycle for plain value types: zero-value init,
// assignment copies, infallible moves, RelocateMove. This is what New and
// NewSized install.
func Values[T any]() Lifecycle[T] {
	return valueLifecycle[T]{}
}

type valueLifecycle[T any] struct{}

func (valueLifecycle[T]) Init() (T, error) {
	var zero T
	return zero, nil
}

func (valueLifecycle[T]) Copy(v T) (T, error) {
	return v, nil
}

func (valueLifecycle[T]) Move(src *T) (T, error) {
	out := *src
	var zero T
	*src = zero
	return out, nil
}

func (valueLifecycle[T]) Set(dst *T, src *T) error {
	*dst = *src
	var zero T
	*src = zero
	return nil
}

func (valueLifecycle[T]) Drop(v *T) {
	// Reset so dead slots hold no references the GC would keep alive.
	var zero T
	*v = zero
}

func (valueLifecycle[T]) Policy() RelocatePolicy {
	return RelocateMove
}

// Compile-time interface check
var _ Lifecycle[int] = valueLifecycle[int]{}
