package vec

// Stats holds cumulative allocation and relocation counters for one
// vector. Useful for verifying growth behavior: over N appends from empty,
// Moved+Copied stays O(N).
type Stats struct {
	// Allocs counts storage regions allocated.
	Allocs uint64

	// Grows counts reallocation events (region exchanged for a larger one).
	Grows uint64

	// Moved counts elements relocated by move, including in-place shifts
	// during insert and erase.
	Moved uint64

	// Copied counts elements duplicated, whether for relocation, cloning
	// or copy-assignment.
	Copied uint64

	// Dropped counts elements torn down.
	Dropped uint64
}

// Stats returns a snapshot of the vector's counters.
func (v *Vector[T]) Stats() Stats {
	return v.stats
}
