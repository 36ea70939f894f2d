// Package raw implements failure-safe bulk element operations over slot
// ranges. Every operation takes the owning container's allocator so that
// construction and destruction stay observable to instrumented allocators.
//
// A slot range is a sub-slice of the container's buffer. Slots are either
// live (a construct hook succeeded on them) or uninitialized (zero-valued).
// The rollback contract shared by the constructing operations: when the k-th
// construction fails, the k-1 slots already constructed by that call are
// destroyed in reverse order before the error is returned, leaving the
// destination range fully uninitialized again.
package raw

import "github.com/joshuapare/veckit/vec/alloc"

// DestroyRange destroys the live slots in s in reverse order, mirroring
// construction order. Empty and nil ranges are no-ops. Never fails.
func DestroyRange[T any](a alloc.Allocator[T], s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		a.Destroy(&s[i])
	}
}

// ConstructCount default-constructs n slots at the front of dst. Returns the
// number of slots constructed, which is n unless an error is returned.
func ConstructCount[T any](a alloc.Allocator[T], dst []T, n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := a.ConstructDefault(&dst[i]); err != nil {
			DestroyRange(a, dst[:i])
			return 0, err
		}
	}
	return n, nil
}

// FillCount constructs n copies of v at the front of dst.
func FillCount[T any](a alloc.Allocator[T], dst []T, n int, v T) (int, error) {
	for i := 0; i < n; i++ {
		if err := a.Construct(&dst[i], v); err != nil {
			DestroyRange(a, dst[:i])
			return 0, err
		}
	}
	return n, nil
}

// CopyConstruct constructs copies of src's slots into dst. The source is
// never modified, so a failure leaves it intact (the strong-guarantee
// building block).
func CopyConstruct[T any](a alloc.Allocator[T], dst, src []T) (int, error) {
	for i := range src {
		if err := a.Construct(&dst[i], src[i]); err != nil {
			DestroyRange(a, dst[:i])
			return 0, err
		}
	}
	return len(src), nil
}

// RelocateConstruct transfers src's slots into dst using the safe-move
// policy: a true move when the allocator declares moves infallible
// (Traits().NoFailMove), a copy otherwise. Copying trades speed for
// recoverability, since a failed copy leaves the source untouched. When true
// moves are used and one fails anyway, source slots already moved out are
// not restored; only dst slots constructed by this call are rolled back.
func RelocateConstruct[T any](a alloc.Allocator[T], dst, src []T) (int, error) {
	for i := range src {
		if err := transferConstruct(a, &dst[i], &src[i]); err != nil {
			DestroyRange(a, dst[:i])
			return 0, err
		}
	}
	return len(src), nil
}

// transferConstruct initializes one slot from *src per the safe-move policy.
func transferConstruct[T any](a alloc.Allocator[T], dst, src *T) error {
	if a.Traits().NoFailMove {
		return a.MoveConstruct(dst, src)
	}
	return a.Construct(dst, *src)
}
