package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/raw"
	"github.com/joshuapare/veckit/vec/alloc"
)

// Clear destroys all live elements. Capacity is kept. Never fails.
func (v *Vector[T]) Clear() {
	raw.DestroyRange(v.alloc, v.live())
	v.size = 0
}

// Resize grows the vector to n elements by default-constructing the missing
// ones, or shrinks it by destroying the tail. Growth allocates exactly n
// slots when reallocation is needed; shrinking leaves capacity unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	if err := v.ensureExact(n); err != nil {
		return err
	}
	if n > v.size {
		if _, err := raw.ConstructCount(v.alloc, v.spare(), n-v.size); err != nil {
			return err
		}
		v.size = n
		return nil
	}
	v.removeFromEnd(v.size - n)
	return nil
}

// ResizeWith is Resize with value-constructed new elements.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	if err := v.ensureExact(n); err != nil {
		return err
	}
	if n > v.size {
		if _, err := raw.FillCount(v.alloc, v.spare(), n-v.size, value); err != nil {
			return err
		}
		v.size = n
		return nil
	}
	v.removeFromEnd(v.size - n)
	return nil
}

// Push appends a copy of val, growing the buffer when it is full. Amortized
// O(1); strong guarantee (a failed growth or construction leaves the
// contents unchanged, though capacity may have grown).
func (v *Vector[T]) Push(val T) error {
	if err := v.ensureAppend(1); err != nil {
		return err
	}
	if err := v.alloc.Construct(&v.slots[v.size], val); err != nil {
		return err
	}
	v.size++
	return nil
}

// EmplaceBack appends the element produced by build, constructing it
// directly at the live end. A build error is reported as a construction
// failure and leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) error {
	if err := v.ensureAppend(1); err != nil {
		return err
	}
	val, err := build()
	if err != nil {
		return fmt.Errorf("vec: emplace build: %w (%w)", err, alloc.ErrConstruction)
	}
	if err := v.alloc.Construct(&v.slots[v.size], val); err != nil {
		return err
	}
	v.size++
	return nil
}

// Pop destroys the last element. Panics on an empty vector. Never fails.
func (v *Vector[T]) Pop() {
	if v.size == 0 {
		panic("vec: Pop on empty Vector")
	}
	v.removeFromEnd(1)
}

// Erase removes the element at index i, shifting the remainder left. O(n)
// in the elements after i. Basic guarantee.
func (v *Vector[T]) Erase(i int) error {
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [i, j), shifting the remainder left and
// destroying the vacated tail. A no-op when i == j. Basic guarantee.
func (v *Vector[T]) EraseRange(i, j int) error {
	if i < 0 || j < i || j > v.size {
		return fmt.Errorf("%w: erase [%d, %d) with length %d", ErrOutOfRange, i, j, v.size)
	}
	if i == j {
		return nil
	}
	kept := raw.ShiftLeft(v.slots[i:v.size], v.slots[j:v.size])
	v.removeFromEnd(v.size - (i + kept))
	return nil
}

// removeFromEnd destroys count elements starting at the live end.
func (v *Vector[T]) removeFromEnd(count int) {
	newSize := v.size - count
	raw.DestroyRange(v.alloc, v.slots[newSize:v.size])
	v.size = newSize
}
