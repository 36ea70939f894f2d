//go:build !unix

package alloc

import "fmt"

// Arena falls back to heap-backed storage on platforms without anonymous
// mappings. Instance-identity equality is preserved so the container's
// unequal-allocator paths behave the same everywhere.
type Arena[T any] struct {
	traits Traits
}

// NewArena returns an empty arena with heap-equivalent traits.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		traits: Traits{
			PropagateOnMoveAssign: true,
			NoFailMove:            true,
		},
	}
}

// Allocate obtains n zero-valued slots.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative slot count %d: %w", n, ErrAllocation)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate releases buf to the garbage collector.
func (a *Arena[T]) Deallocate(buf []T) {}

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

// Equal is true only for the receiver itself, matching the unix behavior.
func (a *Arena[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Arena[T])
	return ok && a == o
}

// Traits returns the arena's propagation configuration.
func (a *Arena[T]) Traits() Traits { return a.traits }

// SelectOnCopy returns a fresh arena.
func (a *Arena[T]) SelectOnCopy() Allocator[T] { return NewArena[T]() }
