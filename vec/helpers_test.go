package vec

import (
	"errors"
	"testing"
)

// errInjected is the failure injected by faultLifecycle hooks.
var errInjected = errors.New("injected element failure")

// faultLifecycle is an int lifecycle whose hooks can be made to fail on a
// chosen call, for exercising the rollback paths.
type faultLifecycle struct {
	policy RelocatePolicy

	// 1-based call number at which the hook fails; 0 means never.
	initFailAt, copyFailAt, moveFailAt, setFailAt int

	initCalls, copyCalls, moveCalls, setCalls, dropCalls int
}

func (f *faultLifecycle) Init() (int, error) {
	f.initCalls++
	if f.initFailAt != 0 && f.initCalls == f.initFailAt {
		return 0, errInjected
	}
	return 0, nil
}

func (f *faultLifecycle) Copy(v int) (int, error) {
	f.copyCalls++
	if f.copyFailAt != 0 && f.copyCalls == f.copyFailAt {
		return 0, errInjected
	}
	return v, nil
}

func (f *faultLifecycle) Move(src *int) (int, error) {
	f.moveCalls++
	if f.moveFailAt != 0 && f.moveCalls == f.moveFailAt {
		return 0, errInjected
	}
	out := *src
	*src = 0
	return out, nil
}

func (f *faultLifecycle) Set(dst *int, src *int) error {
	f.setCalls++
	if f.setFailAt != 0 && f.setCalls == f.setFailAt {
		return errInjected
	}
	*dst = *src
	*src = 0
	return nil
}

func (f *faultLifecycle) Drop(v *int) {
	f.dropCalls++
	*v = 0
}

func (f *faultLifecycle) Policy() RelocatePolicy {
	return f.policy
}

// Compile-time interface check
var _ Lifecycle[int] = (*faultLifecycle)(nil)

// contents snapshots the live range.
func contents[T any](v *Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, v.At(i))
	}
	return out
}

// fill appends vals, failing the test on error.
func fill[T any](t testing.TB, v *Vector[T], vals ...T) {
	t.Helper()
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			t.Fatalf("PushBack(%v): %v", x, err)
		}
	}
}

// valueOf builds a Ctor returning a fixed value.
func valueOf[T any](x T) Ctor[T] {
	return func() (T, error) {
		return x, nil
	}
}

// failingCtor builds a Ctor that always fails.
func failingCtor[T any]() Ctor[T] {
	return func() (T, error) {
		var zero T
		return zero, errInjected
	}
}
