// Package buf provides overflow-safe size arithmetic for storage sizing.
//
// Capacities and element sizes are always non-negative, so the helpers
// here cover only the non-negative cases and report failure instead of
// wrapping silently.
package buf

import "math"

// MulFits multiplies a and b, returning ok = false when the result would
// overflow int. Both operands must be non-negative. This guards
// capacity * elementSize computations before a region is allocated.
func MulFits(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
