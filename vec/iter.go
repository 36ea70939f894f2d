package vec

import "iter"

// All iterates over index/element pairs in order. The vector must not be
// mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.slots[i]) {
				return
			}
		}
	}
}

// Backward iterates over index/element pairs from the last element to the
// first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}
