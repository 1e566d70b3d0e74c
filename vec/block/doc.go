// Package block provides raw, fixed-capacity element storage.
//
// # Overview
//
// A Block owns a single contiguous region sized for a fixed number of
// element slots. It tracks capacity only: it has no notion of which slots
// hold live elements, and releasing a block never tears elements down.
// Liveness is the exclusive responsibility of the owner (the sequence
// container in package vec).
//
// Exactly one owner holds a given region at a time. Ownership moves via
// Take or Swap; copying a Block value is a contract violation, since two
// owners of one region would double-release it.
//
// # Backends
//
// New allocates slots on the Go heap. NewMapped allocates a private
// anonymous mapping instead, keeping the region outside the garbage
// collector entirely; it is restricted to pointer-free element types and
// falls back to the heap on platforms without mmap support.
//
// # Usage
//
//	b, err := block.New[int](64)
//	if err != nil {
//	    return err
//	}
//	defer b.Release()
//
//	*b.Ptr(0) = 42
package block
