package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/vec/alloc"
)

func TestCopyFrom_ReplacesContents(t *testing.T) {
	v, err := Of(1, 2, 3, 4, 5)
	require.NoError(t, err)
	defer v.Destroy()
	src, err := Of(9, 8)
	require.NoError(t, err)
	defer src.Destroy()

	require.NoError(t, v.CopyFrom(src))
	assert.Equal(t, []int{9, 8}, contents(v))
	assert.Equal(t, 2, v.Cap(), "copy assignment allocates the exact size")
	assert.Equal(t, []int{9, 8}, contents(src), "source unchanged")

	require.NoError(t, v.CopyFrom(v), "self-assignment is a no-op")
	assert.Equal(t, []int{9, 8}, contents(v))
}

func TestCopyFrom_StrongOnFailure(t *testing.T) {
	c := alloc.NewCounting[int](alloc.NewHeap[int]())
	v, err := OfIn[int](c, 1, 2, 3)
	require.NoError(t, err)
	defer v.Destroy()
	src, err := Of(7, 7, 7, 7)
	require.NoError(t, err)
	defer src.Destroy()

	c.FailAllocAt = c.Allocs + 1
	require.ErrorIs(t, v.CopyFrom(src), alloc.ErrAllocation)
	assert.Equal(t, []int{1, 2, 3}, contents(v), "failed copy-assign changes nothing")

	c.FailConstructAt = c.Constructs + 2
	require.ErrorIs(t, v.CopyFrom(src), alloc.ErrConstruction)
	assert.Equal(t, []int{1, 2, 3}, contents(v))
}

func TestCopyFrom_PropagatesAllocator(t *testing.T) {
	mine := alloc.NewCounting[int](alloc.NewHeap[int]())
	mine.TraitsOverride = &alloc.Traits{PropagateOnCopyAssign: true, NoFailMove: true}
	theirs := alloc.NewCounting[int](alloc.NewHeap[int]())

	v, err := OfIn[int](mine, 1, 2, 3)
	require.NoError(t, err)
	src, err := OfIn[int](theirs, 4, 5)
	require.NoError(t, err)
	defer src.Destroy()

	require.NoError(t, v.CopyFrom(src))
	assert.Same(t, alloc.Allocator[int](theirs), v.Allocator(), "copy-assign rebinds to the source allocator")
	assert.True(t, mine.Balanced(), "old buffer freed with the old allocator")

	v.Destroy()
	assert.Equal(t, 1, theirs.Deallocs, "new buffer freed with the new allocator")
}

func TestMoveFrom_StealsWhenAllocatorsEqual(t *testing.T) {
	v, err := Of(1, 2, 3)
	require.NoError(t, err)
	defer v.Destroy()
	src, err := Of(7, 8)
	require.NoError(t, err)
	defer src.Destroy()

	dataBefore := src.Data()
	require.NoError(t, v.MoveFrom(src))
	assert.Equal(t, []int{7, 8}, contents(v))
	assert.True(t, src.Empty(), "source emptied on ownership transfer")
	assert.Same(t, &dataBefore[0], v.Ptr(0), "buffer stolen, not copied")
}

func TestMoveFrom_ElementwiseAcrossUnequalAllocators(t *testing.T) {
	noProp := alloc.Traits{NoFailMove: true}
	a := alloc.NewCounting[int](alloc.NewHeap[int]())
	a.Scope, a.TraitsOverride = "a", &noProp
	b := alloc.NewCounting[int](alloc.NewHeap[int]())
	b.Scope, b.TraitsOverride = "b", &noProp

	v, err := OfIn[int](a, 1, 2, 3)
	require.NoError(t, err)
	src, err := OfIn[int](b, 7, 8)
	require.NoError(t, err)

	require.NoError(t, v.MoveFrom(src))
	assert.Equal(t, []int{7, 8}, contents(v))
	assert.Equal(t, 2, src.Len(), "source keeps its length, elements moved-from")
	assert.Same(t, alloc.Allocator[int](b), src.Allocator(), "source allocator untouched")
	assert.Equal(t, []int{0, 0}, contents(src))

	v.Destroy()
	src.Destroy()
	assert.True(t, a.Balanced())
	assert.True(t, b.Balanced())
}

func TestMove_TransfersWholesale(t *testing.T) {
	src, err := Of(1, 2, 3)
	require.NoError(t, err)

	v := Move(src)
	defer v.Destroy()
	assert.Equal(t, []int{1, 2, 3}, contents(v))
	assert.True(t, src.Empty())
	assert.Zero(t, src.Cap())
}

func TestMoveIn_EqualStealsUnequalRelocates(t *testing.T) {
	// Equal allocators: steal.
	src, err := Of(1, 2)
	require.NoError(t, err)
	v, err := MoveIn(src, alloc.NewHeap[int]())
	require.NoError(t, err)
	defer v.Destroy()
	assert.Equal(t, []int{1, 2}, contents(v))
	assert.True(t, src.Empty())

	// Arena instances are never equal to other allocators: relocate.
	src2, err := Of(3, 4)
	require.NoError(t, err)
	defer src2.Destroy()
	v2, err := MoveIn(src2, alloc.NewArena[int]())
	require.NoError(t, err)
	defer v2.Destroy()
	assert.Equal(t, []int{3, 4}, contents(v2))
	assert.Equal(t, 2, src2.Len(), "element-wise move keeps the source length")
}

func TestSwap(t *testing.T) {
	v1, err := Of(1, 2, 3)
	require.NoError(t, err)
	defer v1.Destroy()
	v2, err := Of(9)
	require.NoError(t, err)
	defer v2.Destroy()

	v1.Swap(v2)
	assert.Equal(t, []int{9}, contents(v1))
	assert.Equal(t, []int{1, 2, 3}, contents(v2))
}

func TestSwap_PropagatesAllocatorsWhenConfigured(t *testing.T) {
	tr := alloc.Traits{PropagateOnSwap: true, NoFailMove: true}
	a := alloc.NewCounting[int](alloc.NewHeap[int]())
	a.Scope, a.TraitsOverride = "a", &tr
	b := alloc.NewCounting[int](alloc.NewHeap[int]())
	b.Scope, b.TraitsOverride = "b", &tr

	v1, err := OfIn[int](a, 1)
	require.NoError(t, err)
	v2, err := OfIn[int](b, 2)
	require.NoError(t, err)

	v1.Swap(v2)
	assert.Same(t, alloc.Allocator[int](b), v1.Allocator())
	assert.Same(t, alloc.Allocator[int](a), v2.Allocator())

	v1.Destroy()
	v2.Destroy()
	assert.True(t, a.Balanced())
	assert.True(t, b.Balanced())
}

func TestClone_SelectOnCopyPropagation(t *testing.T) {
	prop := alloc.Traits{PropagateOnCopy: true, NoFailMove: true}
	a := alloc.NewCounting[int](alloc.NewHeap[int]())
	a.TraitsOverride = &prop

	v, err := OfIn[int](a, 1, 2)
	require.NoError(t, err)
	defer v.Destroy()

	c, err := v.Clone()
	require.NoError(t, err)
	defer c.Destroy()
	assert.Same(t, alloc.Allocator[int](a), c.Allocator(), "propagate-on-copy keeps the source allocator")

	// Without the trait the clone falls back to a default-selected allocator.
	b := alloc.NewCounting[int](alloc.NewHeap[int]())
	v2, err := OfIn[int](b, 3)
	require.NoError(t, err)
	defer v2.Destroy()
	c2, err := v2.Clone()
	require.NoError(t, err)
	defer c2.Destroy()
	_, isHeap := c2.Allocator().(alloc.Heap[int])
	assert.True(t, isHeap, "non-propagating clone falls back to the default allocator")
}
