package vec

import (
	"fmt"
	"math"

	"github.com/joshuapare/veckit/internal/raw"
	"github.com/joshuapare/veckit/vec/alloc"
)

// Vector is a contiguous, resizable sequence of elements backed by one
// allocator-owned buffer. The zero-value layout (nil slots) means no
// allocation has been performed yet; constructors below are the supported
// way to obtain one.
//
// Invariant: 0 <= size <= cap, where cap is the length of the slot buffer.
// Slots below size are live; slots at or above it are uninitialized.
type Vector[T any] struct {
	slots []T // len == capacity; nil until first allocation
	size  int
	alloc alloc.Allocator[T]
}

// New returns an empty vector using the default heap allocator. No storage
// is allocated.
func New[T any]() *Vector[T] {
	return NewIn[T](alloc.NewHeap[T]())
}

// NewIn returns an empty vector using the supplied allocator.
func NewIn[T any](a alloc.Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: a}
}

// NewLen returns a vector of n default-constructed elements.
func NewLen[T any](n int) (*Vector[T], error) {
	return NewLenIn[T](n, alloc.NewHeap[T]())
}

// NewLenIn returns a vector of n default-constructed elements using the
// supplied allocator. Capacity equals n exactly.
func NewLenIn[T any](n int, a alloc.Allocator[T]) (*Vector[T], error) {
	v := NewIn[T](a)
	if n == 0 {
		return v, nil
	}
	slots, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	if _, err := raw.ConstructCount(a, slots, n); err != nil {
		a.Deallocate(slots)
		return nil, err
	}
	v.slots, v.size = slots, n
	return v, nil
}

// NewFill returns a vector of n copies of value.
func NewFill[T any](n int, value T) (*Vector[T], error) {
	return NewFillIn[T](n, value, alloc.NewHeap[T]())
}

// NewFillIn returns a vector of n copies of value using the supplied
// allocator.
func NewFillIn[T any](n int, value T, a alloc.Allocator[T]) (*Vector[T], error) {
	v := NewIn[T](a)
	if n == 0 {
		return v, nil
	}
	slots, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	if _, err := raw.FillCount(a, slots, n, value); err != nil {
		a.Deallocate(slots)
		return nil, err
	}
	v.slots, v.size = slots, n
	return v, nil
}

// Of returns a vector holding copies of vals in order.
func Of[T any](vals ...T) (*Vector[T], error) {
	return OfIn[T](alloc.NewHeap[T](), vals...)
}

// OfIn returns a vector holding copies of vals, using the supplied
// allocator. Capacity equals len(vals) exactly.
func OfIn[T any](a alloc.Allocator[T], vals ...T) (*Vector[T], error) {
	v := NewIn[T](a)
	if len(vals) == 0 {
		return v, nil
	}
	slots, err := a.Allocate(len(vals))
	if err != nil {
		return nil, err
	}
	if _, err := raw.CopyConstruct(a, slots, vals); err != nil {
		a.Deallocate(slots)
		return nil, err
	}
	v.slots, v.size = slots, len(vals)
	return v, nil
}

// Destroy finalizes all live elements and releases the buffer. The vector is
// empty and reusable afterwards. Safe to call repeatedly. Never fails.
func (v *Vector[T]) Destroy() {
	raw.DestroyRange(v.alloc, v.live())
	if v.slots != nil {
		v.alloc.Deallocate(v.slots)
		v.slots = nil
	}
	v.size = 0
}

// Len reports the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap reports the total allocated slots, live plus spare.
func (v *Vector[T]) Cap() int { return len(v.slots) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize reports the theoretical maximum element count.
func (v *Vector[T]) MaxSize() int { return math.MaxInt }

// Allocator returns the allocator instance the vector currently owns.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.alloc }

// Data returns the live elements as a slice aliasing the vector's storage.
// The slice is invalidated by any reallocating operation.
func (v *Vector[T]) Data() []T { return v.live() }

// At returns the element at index i, or ErrOutOfRange when i is not below
// the current length.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, v.size)
	}
	return v.slots[i], nil
}

// AtPtr returns a pointer to the element at index i, or ErrOutOfRange. The
// pointer is invalidated by any reallocating operation.
func (v *Vector[T]) AtPtr(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, v.size)
	}
	return &v.slots[i], nil
}

// Get returns the element at index i without bounds checking beyond the
// runtime's; indexing past the live range panics.
func (v *Vector[T]) Get(i int) T { return v.live()[i] }

// Ptr returns a pointer to the element at index i, unchecked.
func (v *Vector[T]) Ptr(i int) *T { return &v.live()[i] }

// Set overwrites the element at index i, or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, v.size)
	}
	v.slots[i] = val
	return nil
}

// Front returns the first element. Panics on an empty vector.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("vec: Front on empty Vector")
	}
	return v.slots[0]
}

// Back returns the last element. Panics on an empty vector.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("vec: Back on empty Vector")
	}
	return v.slots[v.size-1]
}

// live is the constructed prefix of the buffer.
func (v *Vector[T]) live() []T {
	return v.slots[:v.size]
}

// spare is the uninitialized suffix of the buffer.
func (v *Vector[T]) spare() []T {
	return v.slots[v.size:]
}
