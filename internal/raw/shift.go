package raw

import "github.com/joshuapare/veckit/vec/alloc"

// ShiftLeft move-assigns src's slots over dst, where dst starts at or before
// src in the same buffer (the ranges may overlap; this is how a gap left by
// erasure is closed). All dst slots must already be live: assignment, not
// construction, so there is no rollback to perform. Plain Go assignment
// cannot fail, but the operation is still contractually basic-guarantee
// since overwritten slots are unrecoverable. No-op when the ranges coincide.
// Returns the number of slots assigned.
func ShiftLeft[T any](dst, src []T) int {
	if len(src) == 0 || &dst[0] == &src[0] {
		return len(src)
	}
	return copy(dst, src)
}

// Partition describes the gap opened by PartitionRight. Slot indices in
// [First, Last) are moved-from but still live: route values into them by
// assignment. Indices in [Last, End) are uninitialized: route values into
// them by construction. End - First is the requested gap size.
type Partition struct {
	First int
	Last  int
	End   int
}

// PartitionRight opens a gap of newEnd-live slots at pos by relocating the
// live range [pos, live) backward into [pos+k, newEnd), k = newEnd - live.
// Phase one move/copy-constructs into the previously uninitialized suffix
// [live, newEnd); phase two move-assigns into the vacated but still-live
// slots. Both phases walk backward so overlapping ranges stay correct.
//
// On a phase-one construction failure only the slots constructed by this
// call are destroyed (reverse order) and the buffer is back to its original
// live layout. Phase two cannot fail, but once it has begun the operation is
// basic-guarantee: assigned-over slots are not restored.
func PartitionRight[T any](a alloc.Allocator[T], slots []T, pos, live, newEnd int) (Partition, error) {
	src := live
	dst := newEnd
	for src > pos && dst > live {
		src--
		dst--
		if err := transferConstruct(a, &slots[dst], &slots[src]); err != nil {
			DestroyRange(a, slots[dst+1:newEnd])
			return Partition{}, err
		}
	}

	for src > pos {
		src--
		dst--
		slots[dst] = slots[src]
	}

	gap := pos + (newEnd - live)
	last := gap
	if live < last {
		last = live
	}
	return Partition{First: pos, Last: last, End: gap}, nil
}
