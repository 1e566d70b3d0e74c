// Package assert provides debug-build contract checks.
//
// Assertions compile to no-ops unless the vecdebug build tag is set:
//
//	go test -tags vecdebug ./...
//
// A failed assertion is a contract violation by the caller, not a
// recoverable condition, so it panics rather than returning an error.
package assert
