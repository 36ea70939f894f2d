package alloc

import "fmt"

// Counting is an instrumenting decorator around another allocator. It counts
// every lifecycle call and can inject failures at a chosen point, which is
// how the bulk-operation rollback contracts are verified: after a failed
// operation, Live must show zero elements attributable to that operation and
// Allocs must balance Deallocs.
//
// Scope participates in Equal: two Counting instances compare equal only when
// their scopes match and their inner allocators compare equal. Giving two
// instances different scopes models stateful allocators that cannot free each
// other's memory, which exercises the container's element-wise move paths.
//
// Counting is not safe for concurrent use, matching the container's
// single-owner model.
type Counting[T any] struct {
	// Allocs, Deallocs count Allocate / Deallocate calls.
	Allocs   int
	Deallocs int

	// Constructs counts Construct and ConstructDefault calls that succeeded.
	// Moves counts successful MoveConstruct calls. Destroys counts Destroy.
	Constructs int
	Moves      int
	Destroys   int

	// Live is the number of currently constructed elements
	// (Constructs + Moves - Destroys).
	Live int

	// LiveBuffers is the number of outstanding allocations.
	LiveBuffers int

	// FailAllocAt makes the Nth Allocate call fail (1-based; 0 disables).
	FailAllocAt int

	// FailConstructAt makes the Nth construction call fail, counting
	// Construct, ConstructDefault and MoveConstruct jointly (1-based;
	// 0 disables).
	FailConstructAt int

	// Scope distinguishes instances for Equal. Empty scopes match each other.
	Scope string

	// TraitsOverride, when non-nil, replaces the inner allocator's traits.
	TraitsOverride *Traits

	inner Allocator[T]
}

// NewCounting wraps inner with call counting and failure injection.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	return &Counting[T]{inner: inner}
}

// Reset clears all counters. Injection points and traits are kept.
func (c *Counting[T]) Reset() {
	c.Allocs, c.Deallocs = 0, 0
	c.Constructs, c.Moves, c.Destroys = 0, 0, 0
	c.Live, c.LiveBuffers = 0, 0
}

// Balanced reports whether every allocation was freed and every constructed
// element destroyed.
func (c *Counting[T]) Balanced() bool {
	return c.Live == 0 && c.LiveBuffers == 0
}

func (c *Counting[T]) constructions() int {
	return c.Constructs + c.Moves
}

// Allocate forwards to the inner allocator, injecting a failure when
// configured.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	c.Allocs++
	if c.FailAllocAt != 0 && c.Allocs == c.FailAllocAt {
		return nil, fmt.Errorf("counting: injected failure at allocation %d: %w", c.Allocs, ErrAllocation)
	}
	buf, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		c.LiveBuffers++
	}
	return buf, nil
}

// Deallocate forwards to the inner allocator.
func (c *Counting[T]) Deallocate(buf []T) {
	if len(buf) > 0 {
		c.Deallocs++
		c.LiveBuffers--
	}
	c.inner.Deallocate(buf)
}

// Construct forwards to the inner allocator, injecting a failure when
// configured.
func (c *Counting[T]) Construct(dst *T, v T) error {
	if err := c.maybeFailConstruct(); err != nil {
		return err
	}
	if err := c.inner.Construct(dst, v); err != nil {
		return err
	}
	c.Constructs++
	c.Live++
	return nil
}

// ConstructDefault forwards to the inner allocator.
func (c *Counting[T]) ConstructDefault(dst *T) error {
	if err := c.maybeFailConstruct(); err != nil {
		return err
	}
	if err := c.inner.ConstructDefault(dst); err != nil {
		return err
	}
	c.Constructs++
	c.Live++
	return nil
}

// MoveConstruct forwards to the inner allocator.
func (c *Counting[T]) MoveConstruct(dst, src *T) error {
	if err := c.maybeFailConstruct(); err != nil {
		return err
	}
	if err := c.inner.MoveConstruct(dst, src); err != nil {
		return err
	}
	c.Moves++
	c.Live++
	return nil
}

func (c *Counting[T]) maybeFailConstruct() error {
	if c.FailConstructAt != 0 && c.constructions()+1 == c.FailConstructAt {
		// Burn the injection point so retries proceed.
		c.FailConstructAt = -1
		return fmt.Errorf("counting: injected failure at construction %d: %w", c.constructions()+1, ErrConstruction)
	}
	return nil
}

// Destroy forwards to the inner allocator.
func (c *Counting[T]) Destroy(dst *T) {
	c.inner.Destroy(dst)
	c.Destroys++
	c.Live--
}

// Equal matches other Counting instances with the same scope and an equal
// inner allocator.
func (c *Counting[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Counting[T])
	return ok && c.Scope == o.Scope && c.inner.Equal(o.inner)
}

// Traits returns the override when set, else the inner allocator's traits.
func (c *Counting[T]) Traits() Traits {
	if c.TraitsOverride != nil {
		return *c.TraitsOverride
	}
	return c.inner.Traits()
}

// SelectOnCopy keeps the receiver when PropagateOnCopy is set so that copies
// remain observable; otherwise it defers to the inner allocator.
func (c *Counting[T]) SelectOnCopy() Allocator[T] {
	if c.Traits().PropagateOnCopy {
		return c
	}
	return c.inner.SelectOnCopy()
}
