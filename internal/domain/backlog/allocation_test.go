package backlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/id"
)

func TestAllocateDrainsEntriesInOrder(t *testing.T) {
	productID := id.New()
	first := NewEntry(productID, 5)
	second := NewEntry(productID, 3)

	allocations, remaining := Allocate([]*Entry{first, second}, 10)

	require.Len(t, allocations, 2)
	assert.Equal(t, first, allocations[0].Entry)
	assert.Equal(t, int64(5), allocations[0].Applied)
	assert.True(t, allocations[0].Exhausted)
	assert.Equal(t, second, allocations[1].Entry)
	assert.Equal(t, int64(3), allocations[1].Applied)
	assert.True(t, allocations[1].Exhausted)
	assert.Equal(t, int64(2), remaining)
}

func TestAllocatePartialFillStopsTheWalk(t *testing.T) {
	productID := id.New()
	first := NewEntry(productID, 5)
	second := NewEntry(productID, 4)
	third := NewEntry(productID, 1)

	allocations, remaining := Allocate([]*Entry{first, second, third}, 7)

	require.Len(t, allocations, 2)
	assert.True(t, allocations[0].Exhausted)
	assert.Equal(t, int64(5), allocations[0].Applied)

	// second entry absorbs the remainder and the third is never reached
	assert.False(t, allocations[1].Exhausted)
	assert.Equal(t, int64(2), allocations[1].Applied)
	assert.Equal(t, int64(0), remaining)
}

func TestAllocateExactFill(t *testing.T) {
	entry := NewEntry(id.New(), 4)

	allocations, remaining := Allocate([]*Entry{entry}, 4)

	require.Len(t, allocations, 1)
	assert.True(t, allocations[0].Exhausted)
	assert.Equal(t, int64(0), remaining)
}

func TestAllocateNothingAvailable(t *testing.T) {
	entry := NewEntry(id.New(), 4)

	allocations, remaining := Allocate([]*Entry{entry}, 0)

	assert.Empty(t, allocations)
	assert.Equal(t, int64(0), remaining)
}

func TestAllocateNoEntries(t *testing.T) {
	allocations, remaining := Allocate(nil, 9)

	assert.Empty(t, allocations)
	assert.Equal(t, int64(9), remaining)
}
