package vec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independence(t *testing.T) {
	orig := New[int]()
	defer orig.Close()
	fill(t, orig, 1, 2, 3, 4)

	cp, err := orig.Clone()
	require.NoError(t, err)
	defer cp.Close()

	assert.Equal(t, orig.Len(), cp.Cap(), "clone capacity equals source size")
	if diff := cmp.Diff(contents(orig), contents(cp)); diff != "" {
		t.Fatalf("clone differs from source (-orig +copy):\n%s", diff)
	}

	// Mutating either side must not affect the other.
	cp.Set(0, 100)
	require.NoError(t, cp.PushBack(5))
	orig.Set(3, -4)

	assert.Equal(t, []int{1, 2, 3, -4}, contents(orig))
	assert.Equal(t, []int{100, 2, 3, 4, 5}, contents(cp))
}

func TestClone_Empty(t *testing.T) {
	v := New[string]()
	cp, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, 0, cp.Len())
	assert.Equal(t, 0, cp.Cap(), "cloning an empty vector should not allocate")
}

func TestCopyFrom_RebuildPath(t *testing.T) {
	dst := New[int]()
	defer dst.Close()
	fill(t, dst, 9, 9)

	src := New[int]()
	defer src.Close()
	fill(t, src, 1, 2, 3, 4, 5)

	require.Greater(t, src.Len(), dst.Cap(), "test requires the rebuild path")
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, contents(dst))

	// Independence after assignment.
	dst.Set(0, 77)
	assert.Equal(t, 1, src.At(0))
}

func TestCopyFrom_ReuseShrinks(t *testing.T) {
	dst := New[int]()
	defer dst.Close()
	fill(t, dst, 1, 2, 3, 4, 5)

	src := New[int]()
	defer src.Close()
	fill(t, src, 8, 9)

	capBefore := dst.Cap()
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{8, 9}, contents(dst))
	assert.Equal(t, capBefore, dst.Cap(), "reuse path keeps existing storage")
}

func TestCopyFrom_ReuseGrowsWithinCapacity(t *testing.T) {
	dst := New[int]()
	defer dst.Close()
	require.NoError(t, dst.Reserve(8))
	fill(t, dst, 1, 2)

	src := New[int]()
	defer src.Close()
	fill(t, src, 5, 6, 7, 8)

	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{5, 6, 7, 8}, contents(dst))
	assert.Equal(t, 8, dst.Cap())
}

func TestCopyFrom_Self(t *testing.T) {
	v := New[int]()
	defer v.Close()
	fill(t, v, 1, 2, 3)

	require.NoError(t, v.CopyFrom(v))
	assert.Equal(t, []int{1, 2, 3}, contents(v))
}

func TestTake_SourceLeftEmpty(t *testing.T) {
	a := New[int]()
	defer a.Close()
	fill(t, a, 1, 2, 3)

	b := New[int]()
	defer b.Close()
	fill(t, b, 9)

	allocsBefore := a.Stats().Allocs + b.Stats().Allocs

	b.Take(a)

	assert.Equal(t, 0, a.Len(), "source size should be 0 after move")
	assert.Equal(t, 0, a.Cap(), "source capacity should be 0 after move")
	assert.Equal(t, []int{1, 2, 3}, contents(b), "destination holds the original elements in order")
	assert.Equal(t, allocsBefore, a.Stats().Allocs+b.Stats().Allocs, "move never allocates")
}

func TestTake_Self(t *testing.T) {
	v := New[int]()
	defer v.Close()
	fill(t, v, 1, 2)

	v.Take(v)
	assert.Equal(t, []int{1, 2}, contents(v), "self-move is a no-op")
}

func TestTake_SourceReusable(t *testing.T) {
	a := New[int]()
	defer a.Close()
	fill(t, a, 1, 2, 3)

	b := New[int]()
	defer b.Close()
	b.Take(a)

	require.NoError(t, a.PushBack(7), "moved-from vector is a working empty vector")
	assert.Equal(t, []int{7}, contents(a))
}

func TestSwap(t *testing.T) {
	a := New[int]()
	defer a.Close()
	fill(t, a, 1, 2)

	b := New[int]()
	defer b.Close()
	fill(t, b, 7, 8, 9)

	a.Swap(b)
	assert.Equal(t, []int{7, 8, 9}, contents(a))
	assert.Equal(t, []int{1, 2}, contents(b))
}

func TestClose_Idempotent(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3)

	v.Close()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())

	v.Close()

	require.NoError(t, v.PushBack(5), "closed vector is a working empty vector")
	assert.Equal(t, []int{5}, contents(v))
	v.Close()
}
