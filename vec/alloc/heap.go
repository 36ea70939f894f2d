package alloc

import "fmt"

// Heap is the default allocator, backed by make. It is stateless: every Heap
// instance can free every other Heap instance's buffers, so Equal is true
// across all of them.
type Heap[T any] struct{}

// NewHeap returns the default heap allocator.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

// Allocate obtains n zero-valued slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("heap: negative slot count %d: %w", n, ErrAllocation)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate releases buf to the garbage collector.
func (Heap[T]) Deallocate(buf []T) {}

// Construct copy-initializes *dst from v.
func (Heap[T]) Construct(dst *T, v T) error {
	*dst = v
	return nil
}

// ConstructDefault zero-initializes *dst.
func (Heap[T]) ConstructDefault(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

// MoveConstruct transfers *src into *dst and zeroes *src.
func (Heap[T]) MoveConstruct(dst, src *T) error {
	var zero T
	*dst = *src
	*src = zero
	return nil
}

// Destroy zeroes the slot so it holds no references.
func (Heap[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}

// Equal is true for any other Heap instance.
func (Heap[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(Heap[T])
	return ok
}

// Traits mirrors the standard allocator defaults: move assignment propagates,
// copy assignment and swap do not, and moves never fail.
func (Heap[T]) Traits() Traits {
	return Traits{
		PropagateOnMoveAssign: true,
		NoFailMove:            true,
	}
}

// SelectOnCopy returns a fresh Heap (PropagateOnCopy is off, and Heap is
// stateless anyway).
func (Heap[T]) SelectOnCopy() Allocator[T] { return Heap[T]{} }
