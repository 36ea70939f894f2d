package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/raw"
	"github.com/joshuapare/veckit/vec/alloc"
)

// Insert places a copy of val at index i, shifting later elements right.
// With spare capacity the gap is opened in place, costing O(Len()-i) element
// relocations and no allocation; otherwise the vector grows into a fresh
// buffer with the strong guarantee (the old buffer is untouched unless every
// phase succeeds).
func (v *Vector[T]) Insert(i int, val T) error {
	return v.insert(i, 1, func(_ int, dst *T, assign bool) error {
		if assign {
			*dst = val
			return nil
		}
		return v.alloc.Construct(dst, val)
	})
}

// InsertMove places *src at index i by transfer, zeroing *src on success.
func (v *Vector[T]) InsertMove(i int, src *T) error {
	return v.insert(i, 1, func(_ int, dst *T, assign bool) error {
		if assign {
			var zero T
			*dst = *src
			*src = zero
			return nil
		}
		return v.alloc.MoveConstruct(dst, src)
	})
}

// InsertN places n copies of val at index i.
func (v *Vector[T]) InsertN(i, n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: insert count %d", ErrOutOfRange, n)
	}
	return v.insert(i, n, func(_ int, dst *T, assign bool) error {
		if assign {
			*dst = val
			return nil
		}
		return v.alloc.Construct(dst, val)
	})
}

// InsertSlice places copies of vals, in order, starting at index i.
func (v *Vector[T]) InsertSlice(i int, vals ...T) error {
	return v.insert(i, len(vals), func(j int, dst *T, assign bool) error {
		if assign {
			*dst = vals[j]
			return nil
		}
		return v.alloc.Construct(dst, vals[j])
	})
}

// insert routes k new elements into position pos. put initializes the j-th
// new element; assign tells it whether the destination slot is still live
// (move-assign into it) or uninitialized (construct into it).
func (v *Vector[T]) insert(pos, k int, put func(j int, dst *T, assign bool) error) error {
	if pos < 0 || pos > v.size {
		return fmt.Errorf("%w: insert at %d with length %d", ErrOutOfRange, pos, v.size)
	}
	if k == 0 {
		return nil
	}
	if v.size+k <= v.Cap() {
		return v.insertInPlace(pos, k, put)
	}
	return v.insertRealloc(pos, k, put)
}

// insertInPlace opens a gap with PartitionRight and fills it. Once the
// assignment phase has begun the operation is basic-guarantee, though a
// construction failure while filling the gap still restores the original
// sequence by shifting the relocated tail back.
func (v *Vector[T]) insertInPlace(pos, k int, put func(j int, dst *T, assign bool) error) error {
	live := v.size
	part, err := raw.PartitionRight(v.alloc, v.slots, pos, live, live+k)
	if err != nil {
		return err
	}
	for j := 0; j < k; j++ {
		idx := pos + j
		if err := put(j, &v.slots[idx], idx < part.Last); err != nil {
			// idx >= part.Last here: assignment cannot fail. Unwind the
			// constructed part of the gap and shift the tail back.
			raw.DestroyRange(v.alloc, v.slots[part.Last:idx])
			raw.ShiftLeft(v.slots[pos:live], v.slots[pos+k:live+k])
			raw.DestroyRange(v.alloc, v.slots[pos+k:live+k])
			return err
		}
	}
	v.size = live + k
	return nil
}

// insertRealloc builds the result in a fresh buffer: relocated prefix, new
// elements, relocated suffix. The old buffer is replaced only after every
// phase succeeds, so failures leave the contents untouched (strong
// guarantee under the copy-fallback relocation policy).
func (v *Vector[T]) insertRealloc(pos, k int, put func(j int, dst *T, assign bool) error) error {
	newCap, ok := buf.GrowCap(v.Cap(), k)
	if !ok {
		return fmt.Errorf("vec: growth by %d overflows capacity: %w", k, alloc.ErrAllocation)
	}
	slots, err := v.alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	if _, err := raw.RelocateConstruct(v.alloc, slots, v.slots[:pos]); err != nil {
		v.alloc.Deallocate(slots)
		return err
	}
	for j := 0; j < k; j++ {
		if err := put(j, &slots[pos+j], false); err != nil {
			raw.DestroyRange(v.alloc, slots[:pos+j])
			v.alloc.Deallocate(slots)
			return err
		}
	}
	if _, err := raw.RelocateConstruct(v.alloc, slots[pos+k:], v.slots[pos:v.size]); err != nil {
		raw.DestroyRange(v.alloc, slots[:pos+k])
		v.alloc.Deallocate(slots)
		return err
	}
	newSize := v.size + k
	raw.DestroyRange(v.alloc, v.live())
	if v.slots != nil {
		v.alloc.Deallocate(v.slots)
	}
	v.slots, v.size = slots, newSize
	return nil
}
