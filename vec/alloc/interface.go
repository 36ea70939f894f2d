package alloc

// Traits is the per-allocator configuration consulted by container copy, move
// and swap operations. The four propagation booleans decide whether the
// allocator instance travels with the elements; NoFailMove declares that
// MoveConstruct never fails, which lets bulk relocation use true moves
// instead of falling back to copies.
//
// Traits are fixed for the lifetime of an allocator instance.
type Traits struct {
	// PropagateOnCopy controls copy construction: when false, SelectOnCopy
	// returns a fresh default allocator instead of the source's.
	PropagateOnCopy bool

	// PropagateOnCopyAssign controls whether copy assignment rebinds the
	// destination container to the source's allocator.
	PropagateOnCopyAssign bool

	// PropagateOnMoveAssign controls whether move assignment may always steal
	// the source buffer, regardless of allocator equality.
	PropagateOnMoveAssign bool

	// PropagateOnSwap controls whether Swap exchanges the allocators along
	// with the buffers. Swapping containers holding unequal, non-propagating
	// allocators is a precondition violation and is never detected.
	PropagateOnSwap bool

	// NoFailMove declares MoveConstruct infallible. When set, relocation
	// transfers elements by move; a move that fails anyway loses the
	// already-moved source elements (no rollback of the source).
	NoFailMove bool
}

// Allocator supplies raw slot storage and element lifecycle hooks for a
// container. Slots handed out by Allocate are zero-valued and considered
// uninitialized until a construct hook succeeds on them; Destroy returns a
// slot to the uninitialized state.
//
// Exactly one container owns an allocated buffer at a time. Equal reports
// whether another instance may free buffers allocated by this one, which is
// what container move operations consult to decide between stealing the
// buffer wholesale and transferring elements one by one.
type Allocator[T any] interface {
	// Allocate obtains storage for exactly n slots. The returned slice has
	// len n and zero-valued slots. Fails with an error wrapping ErrAllocation.
	Allocate(n int) ([]T, error)

	// Deallocate releases a buffer previously returned by Allocate on an
	// equal instance. All slots must already be destroyed. Never fails.
	Deallocate(buf []T)

	// Construct copy-initializes one uninitialized slot from v.
	// Fails with an error wrapping ErrConstruction; the slot stays
	// uninitialized on failure.
	Construct(dst *T, v T) error

	// ConstructDefault default-initializes one uninitialized slot.
	ConstructDefault(dst *T) error

	// MoveConstruct transfers *src into the uninitialized slot dst, leaving
	// *src zeroed on success. On failure *src is unchanged.
	MoveConstruct(dst, src *T) error

	// Destroy finalizes one live slot, zeroing it. Must not fail; a
	// destruction that cannot complete is a fatal contract violation.
	Destroy(dst *T)

	// Equal reports whether other can deallocate buffers allocated by this
	// instance (and vice versa).
	Equal(other Allocator[T]) bool

	// Traits returns the instance's propagation configuration.
	Traits() Traits

	// SelectOnCopy returns the allocator a copy-constructed container should
	// use: the receiver when PropagateOnCopy is set, a fresh default
	// allocator otherwise.
	SelectOnCopy() Allocator[T]
}
