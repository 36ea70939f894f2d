// Package buf contains overflow-safe size arithmetic for capacity planning.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies the non-negative sizes a and b, returning
// ok = false when the result would overflow int. This is essential for
// count * elementSize calculations when sizing raw buffers.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// GrowCap computes the capacity a buffer of capacity cur should grow to in
// order to hold need additional elements. The policy is geometric with a 1.5x
// multiplier, which keeps total element relocation amortized O(1) per append
// while wasting less memory than doubling:
//
//	base = max(cur, 4)
//	base += need            (only when need exceeds base/2)
//	newCap = base + base/2
//
// The result is always at least cur+need. ok = false means the requested
// growth overflows int.
func GrowCap(cur, need int) (int, bool) {
	if cur < 0 || need < 0 {
		return 0, false
	}
	base := cur
	if base < 4 {
		base = 4
	}
	if need > base/2 {
		var ok bool
		base, ok = AddOverflowSafe(base, need)
		if !ok {
			return 0, false
		}
	}
	return AddOverflowSafe(base, base/2)
}
