// Package alloc provides pluggable storage allocation and element lifecycle
// management for the vec container.
//
// # Overview
//
// An Allocator supplies raw slot storage and mediates every element
// construction and destruction the container performs. Routing the element
// lifecycle through the allocator is what makes rollback observable: an
// instrumented allocator can count live elements, and a failure-injecting one
// can prove that a partially-failed bulk operation cleaned up after itself.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Allocate(n) / Deallocate(buf): raw slot storage of exactly n slots
//   - Construct / ConstructDefault / MoveConstruct: initialize one slot
//   - Destroy: finalize one slot; must never fail
//   - Equal: whether another instance can free this instance's buffers
//   - Traits / SelectOnCopy: container propagation policy
//
// # Implementations
//
// Heap: the default allocator backed by make. All Heap instances compare
// equal and carry the default traits (move-assign propagates, copy-assign and
// swap do not, moves never fail).
//
// Counting: an instrumenting decorator around another allocator. It tracks
// allocations, constructions, destructions and live elements, and can inject
// failures at a chosen call, which is how the container's rollback contracts
// are verified.
//
// Arena: an anonymous-mmap allocator (unix only; falls back to heap storage
// elsewhere). Each Allocate maps a fresh region and Deallocate unmaps it.
// Arena instances are only equal to themselves, making Arena the natural way
// to exercise the container's unequal-allocator move paths.
//
// # Traits
//
// Traits carries the four propagation booleans consulted by container copy,
// move and swap operations, plus NoFailMove, the capability flag that tells
// bulk relocation whether element transfer may use a true move (source slot
// zeroed, no rollback of the source on later failure) or must fall back to
// copying.
package alloc
