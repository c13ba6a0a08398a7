package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridAccessesColRow(t *testing.T) {
	g, ok := NewGrid(2, []int{1, 2, 3, 4})
	require.True(t, ok)

	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, 2, g.At(1, 0))
	assert.Equal(t, 3, g.At(0, 1))
	assert.Equal(t, 4, g.At(1, 1))

	assert.Equal(t, []int{1, 2}, g.Row(0))
	assert.Equal(t, []int{3, 4}, g.Row(1))

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 2, g.Height())
}

func TestGridSubGrid(t *testing.T) {
	original, ok := NewGrid(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.True(t, ok)

	d := GridWithCapacity[int](2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			d.Push(original.At(x, y))
		}
	}

	assert.Equal(t, []int{1, 2, 4, 5}, d.Values())
	assert.Equal(t, 2, d.Height())
}

func TestGridSet(t *testing.T) {
	g, ok := NewGrid(3, make([]int, 6))
	require.True(t, ok)

	g.Set(2, 1, 9)
	assert.Equal(t, 9, g.Values()[5])
	assert.Equal(t, 5, g.Index(2, 1))
}

func TestNewGridRejectsRaggedRows(t *testing.T) {
	_, ok := NewGrid(4, []int{1, 2, 3, 4, 5, 6})
	assert.False(t, ok)

	_, ok = NewGrid(0, []int{1})
	assert.False(t, ok)

	_, ok = NewGrid(2, []int{})
	assert.False(t, ok)
}
