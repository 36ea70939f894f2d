package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/raw"
	"github.com/joshuapare/veckit/vec/alloc"
)

// Reserve grows capacity to at least n. A no-op when capacity already
// suffices. Strong guarantee: on failure the contents are unchanged (under
// the copy-fallback relocation policy; a declared-infallible move that fails
// anyway forfeits already-moved elements).
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates to exactly Len() slots when capacity exceeds it.
// Calling it twice in a row performs at most one reallocation; the second
// call is a no-op.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == v.Cap() {
		return nil
	}
	if v.size == 0 {
		v.alloc.Deallocate(v.slots)
		v.slots = nil
		return nil
	}
	return v.reallocate(v.size)
}

// ensureExact reallocates to exactly n slots when current capacity is
// smaller. Used by the exact-size paths (Resize, assignment); append paths
// go through ensureAppend instead.
func (v *Vector[T]) ensureExact(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.reallocate(n)
}

// ensureAppend makes room for k additional elements using the geometric
// growth policy.
func (v *Vector[T]) ensureAppend(k int) error {
	if v.size+k <= v.Cap() {
		return nil
	}
	newCap, ok := buf.GrowCap(v.Cap(), k)
	if !ok {
		return fmt.Errorf("vec: growth by %d overflows capacity: %w", k, alloc.ErrAllocation)
	}
	return v.reallocate(newCap)
}

// reallocate moves the live elements into a fresh buffer of newCap slots and
// frees the old one. newCap must be at least Len().
func (v *Vector[T]) reallocate(newCap int) error {
	slots, err := v.alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	n, err := raw.RelocateConstruct(v.alloc, slots, v.live())
	if err != nil {
		v.alloc.Deallocate(slots)
		return err
	}
	raw.DestroyRange(v.alloc, v.live())
	if v.slots != nil {
		v.alloc.Deallocate(v.slots)
	}
	v.slots, v.size = slots, n
	return nil
}
