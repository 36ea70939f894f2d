package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AllocateAndLifecycle(t *testing.T) {
	h := NewHeap[int]()

	buf, err := h.Allocate(3)
	require.NoError(t, err)
	require.Len(t, buf, 3)

	require.NoError(t, h.Construct(&buf[0], 7))
	assert.Equal(t, 7, buf[0])

	require.NoError(t, h.MoveConstruct(&buf[1], &buf[0]))
	assert.Equal(t, 7, buf[1])
	assert.Zero(t, buf[0], "move zeroes the source slot")

	h.Destroy(&buf[1])
	assert.Zero(t, buf[1])
	h.Deallocate(buf)
}

func TestHeap_AllocateEdgeCases(t *testing.T) {
	h := NewHeap[int]()

	buf, err := h.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)

	_, err = h.Allocate(-1)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestHeap_EqualAndTraits(t *testing.T) {
	h1, h2 := NewHeap[int](), NewHeap[int]()
	assert.True(t, h1.Equal(h2), "heap instances are interchangeable")
	assert.False(t, h1.Equal(NewArena[int]()))

	tr := h1.Traits()
	assert.False(t, tr.PropagateOnCopy)
	assert.False(t, tr.PropagateOnCopyAssign)
	assert.True(t, tr.PropagateOnMoveAssign)
	assert.False(t, tr.PropagateOnSwap)
	assert.True(t, tr.NoFailMove)
}

func TestCounting_TracksLifecycle(t *testing.T) {
	c := NewCounting[int](NewHeap[int]())

	buf, err := c.Allocate(2)
	require.NoError(t, err)
	require.NoError(t, c.Construct(&buf[0], 1))
	require.NoError(t, c.ConstructDefault(&buf[1]))
	assert.Equal(t, 2, c.Live)

	c.Destroy(&buf[0])
	c.Destroy(&buf[1])
	c.Deallocate(buf)
	assert.True(t, c.Balanced())
	assert.Equal(t, 1, c.Allocs)
	assert.Equal(t, 2, c.Constructs)
	assert.Equal(t, 2, c.Destroys)
}

func TestCounting_FailureInjection(t *testing.T) {
	c := NewCounting[int](NewHeap[int]())
	c.FailAllocAt = 2
	c.FailConstructAt = 2

	buf, err := c.Allocate(4)
	require.NoError(t, err)
	_, err = c.Allocate(4)
	assert.ErrorIs(t, err, ErrAllocation)

	require.NoError(t, c.Construct(&buf[0], 1))
	err = c.Construct(&buf[1], 2)
	assert.ErrorIs(t, err, ErrConstruction)
	require.NoError(t, c.Construct(&buf[1], 2), "injection point fires once")
}

func TestCounting_ScopedEquality(t *testing.T) {
	a := NewCounting[int](NewHeap[int]())
	b := NewCounting[int](NewHeap[int]())
	assert.True(t, a.Equal(b), "same scope, equal inners")

	b.Scope = "other"
	assert.False(t, a.Equal(b), "scopes partition equality")
	assert.False(t, a.Equal(NewHeap[int]()))
}

func TestCounting_TraitsOverride(t *testing.T) {
	c := NewCounting[int](NewHeap[int]())
	assert.True(t, c.Traits().NoFailMove, "defaults to the inner traits")

	c.TraitsOverride = &Traits{PropagateOnCopy: true}
	assert.False(t, c.Traits().NoFailMove)
	assert.Same(t, Allocator[int](c), c.SelectOnCopy())
}
