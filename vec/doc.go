// Package vec implements a generic growable-array container backed by one
// contiguous, allocator-managed buffer.
//
// # Overview
//
// Vector[T] owns a single slot buffer split into a live prefix (constructed
// elements, in order) and an uninitialized suffix (allocated spare
// capacity). No allocation happens until the first element needs storage.
// Growth is geometric with a 1.5x multiplier (see internal/buf.GrowCap),
// which keeps appends amortized O(1) while bounding wasted memory more
// tightly than doubling.
//
// Storage and the element lifecycle are delegated to an alloc.Allocator,
// which makes the container's failure behavior testable: an instrumented
// allocator can verify that a failed bulk operation destroyed everything it
// constructed. Mid-sequence insertion with spare capacity avoids full
// reallocation by opening a gap in place (raw.PartitionRight) and routing
// the new values into vacated or fresh slots as appropriate.
//
// # Failure Guarantees
//
// Operations that can fail leave the container in a state matching their
// declared guarantee:
//
//	Operation                                       Guarantee
//	CopyFrom, Clone, Reserve, Insert (reallocating) strong: no visible change on failure
//	Insert (in place, once assignment starts),
//	Erase, MoveFrom across unequal allocators       basic: valid but unspecified state
//	Destroy, Swap, Pop, Clear                       no-fail
//
// Strong means the operation either fully succeeds or the observable
// contents are unchanged; basic means the container remains valid
// (destructible, consistent invariants) but its contents are unspecified.
//
// # Ownership and Concurrency
//
// A buffer is owned by exactly one Vector at a time. Moves and Swap transfer
// ownership wholesale by exchanging buffers; copies duplicate elements into
// independent storage. There is no internal synchronization: a Vector is a
// single-owner, single-thread structure, and guarding shared access is the
// caller's responsibility.
//
// # Iterator Invalidation
//
// Data, Ptr and AtPtr expose interior storage. Any operation that can
// reallocate (Push, Insert, Resize, Reserve, ShrinkToFit, CopyFrom,
// MoveFrom) invalidates previously obtained slices and pointers, as do
// Erase and Insert for positions at or after the affected index.
package vec
