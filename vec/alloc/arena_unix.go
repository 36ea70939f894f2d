//go:build unix

package alloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/veckit/internal/buf"
)

// Arena allocates slot storage from anonymous memory mappings: every Allocate
// maps a fresh region and Deallocate unmaps it. The mapping bookkeeping lives
// in the instance, so an Arena is only Equal to itself; containers moving
// between two Arenas must transfer elements one by one.
//
// Element memory is outside the Go heap, so T must not contain pointers the
// garbage collector needs to see (ints, floats, fixed arrays of such). Zero-
// size element types are backed by heap storage since a zero-length mapping
// is invalid.
type Arena[T any] struct {
	regions map[*T][]byte
	traits  Traits
}

// NewArena returns an empty arena with heap-equivalent traits.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		regions: make(map[*T][]byte),
		traits: Traits{
			PropagateOnMoveAssign: true,
			NoFailMove:            true,
		},
	}
}

// Allocate maps an anonymous region large enough for n slots.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative slot count %d: %w", n, ErrAllocation)
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		return make([]T, n), nil
	}
	size, ok := buf.MulOverflowSafe(n, elem)
	if !ok {
		return nil, fmt.Errorf("arena: %d slots of %d bytes overflows: %w", n, elem, ErrAllocation)
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap of %d bytes: %w", size, ErrAllocation)
	}
	slots := unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), n)
	a.regions[&slots[0]] = mem
	return slots, nil
}

// Deallocate unmaps the region backing buf. Unknown buffers (zero-size
// element fallback) are left to the garbage collector.
func (a *Arena[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}
	mem, ok := a.regions[&buf[0]]
	if !ok {
		return
	}
	delete(a.regions, &buf[0])
	// Munmap failure would mean the bookkeeping is corrupt; there is no
	// recovery a caller could perform, so treat it like Deallocate's no-fail
	// contract and drop the region either way.
	_ = unix.Munmap(mem)
}

// Construct copy-initializes *dst from v.
func (a *Arena[T]) Construct(dst *T, v T) error {
	*dst = v
	return nil
}

// ConstructDefault zero-initializes *dst.
func (a *Arena[T]) ConstructDefault(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

// MoveConstruct transfers *src into *dst and zeroes *src.
func (a *Arena[T]) MoveConstruct(dst, src *T) error {
	var zero T
	*dst = *src
	*src = zero
	return nil
}

// Destroy zeroes the slot.
func (a *Arena[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}

// Equal is true only for the receiver itself: no other instance holds the
// mapping table needed to unmap this arena's regions.
func (a *Arena[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Arena[T])
	return ok && a == o
}

// Traits returns the arena's propagation configuration.
func (a *Arena[T]) Traits() Traits { return a.traits }

// SelectOnCopy returns a fresh arena; mappings are never shared across
// container copies.
func (a *Arena[T]) SelectOnCopy() Allocator[T] { return NewArena[T]() }
