package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dbg "github.com/joshuapare/veckit/internal/assert"
)

// Contract violations are undefined behavior, checked only in debug
// builds. These tests pin the debug-build behavior; run with
// -tags vecdebug to enable them.
func TestContractViolationsPanicUnderDebug(t *testing.T) {
	if !dbg.Enabled {
		t.Skip("contract checks compiled out; run with -tags vecdebug")
	}

	v := New[int]()
	defer v.Close()
	fill(t, v, 1, 2, 3)

	assert.Panics(t, func() { _ = v.At(3) }, "index at size")
	assert.Panics(t, func() { _ = v.At(-1) }, "negative index")
	assert.Panics(t, func() { _ = v.Ptr(99) }, "index beyond capacity")
	assert.Panics(t, func() { v.Set(3, 0) }, "set at size")
	assert.Panics(t, func() { _, _ = v.Emplace(4, nil) }, "insert past end")
	assert.Panics(t, func() { _, _ = v.Erase(3) }, "erase at size")
	assert.Panics(t, func() { _ = v.CursorAt(4) }, "cursor past end")
	assert.Panics(t, func() { _ = v.End().Get() }, "dereference end cursor")

	empty := New[int]()
	defer empty.Close()
	assert.Panics(t, func() { empty.PopBack() }, "pop from empty")
}
