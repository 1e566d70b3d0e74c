// Package vec provides a growable, contiguous-storage sequence container
// with manual control over allocation versus element lifetime.
//
// # Overview
//
// A Vector owns exactly one raw storage region (package vec/block) plus a
// live count. The region knows nothing about element liveness; the vector
// is responsible for every construction, relocation and teardown within
// it. Slots [0, Len()) are live, slots [Len(), Cap()) are dead memory.
//
// Element lifetime flows through a Lifecycle, whose hooks return explicit
// errors where other languages would throw: this makes the container's
// failure behavior part of each operation's contract rather than an
// ambient mechanism.
//
// # Key Types
//
//   - Vector: the sequence container
//   - Lifecycle: element construction, duplication, relocation, teardown
//   - Cursor: a contiguous pointer-like position in the live range
//   - Stats: cumulative allocation and relocation counters
//
// # Growth
//
// Appending into a full vector doubles capacity (min 1), so N appends from
// empty perform O(N) total element relocations. Reserve(n) allocates
// exactly n slots. How live elements travel into the new region is decided
// once per Lifecycle: RelocateMove moves them, RelocateCopy duplicates
// them and keeps the old region intact until the new one is fully
// populated.
//
// # Failure guarantees
//
// Operations document one of two guarantees. Strong: on failure the vector
// is observably unchanged. Basic: invariants hold and nothing leaks, but
// content may be partially mutated. The strong paths are Reserve and
// growth under RelocateCopy, Emplace/EmplaceBack constructor failures,
// insertion requiring reallocation, and CopyFrom when it rebuilds. The
// in-place shift insert, Erase, and CopyFrom reusing capacity are basic;
// the asymmetry between the two insert paths is deliberate, trading
// guarantee strength for not paying a reallocation when capacity is spare.
//
// Index and cursor preconditions are contracts, not errors: violations are
// checked only under the vecdebug build tag.
//
// # Usage
//
//	v := vec.New[int]()
//	defer v.Close()
//
//	for i := range 10 {
//	    if err := v.PushBack(i * i); err != nil {
//	        return err
//	    }
//	}
//	if err := v.Insert(0, -1); err != nil {
//	    return err
//	}
//	for it := v.Begin(); it.Valid(); it = it.Next() {
//	    fmt.Println(it.Get())
//	}
//
// Vectors are not synchronized; concurrent mutation must be serialized by
// the caller.
package vec
