package vec

import (
	"github.com/joshuapare/veckit/internal/raw"
	"github.com/joshuapare/veckit/vec/alloc"
)

// Clone returns an independent copy of the vector. The copy's allocator is
// chosen by the source allocator's SelectOnCopy policy. Strong guarantee:
// failure produces no new vector and no leaked storage.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneIn(v.alloc.SelectOnCopy())
}

// CloneIn returns an independent copy using the supplied allocator. Capacity
// equals the source length exactly.
func (v *Vector[T]) CloneIn(a alloc.Allocator[T]) (*Vector[T], error) {
	out := NewIn[T](a)
	if v.size == 0 {
		return out, nil
	}
	slots, err := a.Allocate(v.size)
	if err != nil {
		return nil, err
	}
	if _, err := raw.CopyConstruct(a, slots, v.live()); err != nil {
		a.Deallocate(slots)
		return nil, err
	}
	out.slots, out.size = slots, v.size
	return out, nil
}

// Move transfers src's buffer wholesale into a new vector, along with its
// allocator. src is left empty but valid. Never fails.
func Move[T any](src *Vector[T]) *Vector[T] {
	out := NewIn[T](src.alloc)
	out.slots, out.size = src.slots, src.size
	src.slots, src.size = nil, 0
	return out
}

// MoveIn builds a vector owned by allocator a from src. When a can free
// src's storage (Equal) the buffer is stolen and src emptied; otherwise the
// elements are relocated one by one and src keeps its (moved-from) length.
func MoveIn[T any](src *Vector[T], a alloc.Allocator[T]) (*Vector[T], error) {
	out := NewIn[T](a)
	if a.Equal(src.alloc) {
		out.slots, out.size = src.slots, src.size
		src.slots, src.size = nil, 0
		return out, nil
	}
	if src.size == 0 {
		return out, nil
	}
	slots, err := a.Allocate(src.size)
	if err != nil {
		return nil, err
	}
	n, err := raw.RelocateConstruct(a, slots, src.live())
	if err != nil {
		a.Deallocate(slots)
		return nil, err
	}
	out.slots, out.size = slots, n
	return out, nil
}

// CopyFrom replaces the contents with copies of other's elements. When the
// allocator's copy-assign trait propagates, the vector rebinds to other's
// allocator, freeing the old buffer with the old one. Storage is allocated
// to other's exact length. Strong guarantee: the new contents are fully
// built before the old contents are destroyed.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	target := v.alloc
	if v.alloc.Traits().PropagateOnCopyAssign {
		target = other.alloc
	}

	var slots []T
	if other.size > 0 {
		var err error
		slots, err = target.Allocate(other.size)
		if err != nil {
			return err
		}
		if _, err := raw.CopyConstruct(target, slots, other.live()); err != nil {
			target.Deallocate(slots)
			return err
		}
	}

	raw.DestroyRange(v.alloc, v.live())
	if v.slots != nil {
		v.alloc.Deallocate(v.slots)
	}
	v.alloc = target
	v.slots, v.size = slots, other.size
	return nil
}

// MoveFrom replaces the contents with other's elements. When the move-assign
// trait propagates or the allocators compare equal, the buffer is stolen
// wholesale and other is emptied. Otherwise the elements are relocated one
// by one with the basic guarantee; other's allocator is untouched and other
// keeps its (moved-from) length.
func (v *Vector[T]) MoveFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tr := v.alloc.Traits()
	if tr.PropagateOnMoveAssign || v.alloc.Equal(other.alloc) {
		v.Destroy()
		if tr.PropagateOnMoveAssign {
			v.alloc = other.alloc
		}
		v.slots, v.size = other.slots, other.size
		other.slots, other.size = nil, 0
		return nil
	}

	v.Clear()
	if err := v.ensureExact(other.size); err != nil {
		return err
	}
	n, err := raw.RelocateConstruct(v.alloc, v.slots, other.live())
	if err != nil {
		return err
	}
	v.size = n
	return nil
}

// Swap exchanges contents in O(1) by swapping buffers. Allocators are
// exchanged only when the swap trait propagates; swapping vectors that hold
// unequal, non-propagating allocators violates a precondition and is not
// detected. Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.slots, other.slots = other.slots, v.slots
	v.size, other.size = other.size, v.size
	if v.alloc.Traits().PropagateOnSwap {
		v.alloc, other.alloc = other.alloc, v.alloc
	}
}
