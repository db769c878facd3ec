package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularQueueDropsOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Append(i))
	}

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{3, 4, 5}, q.Slice())

	v, err := q.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = q.Get(3)
	assert.Error(t, err)
}

func TestCircularQueuePopAndClear(t *testing.T) {
	q := NewCircularQueue[string](2)
	require.NoError(t, q.Append("a"))
	require.NoError(t, q.Append("b"))

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	q.Clear()
	assert.Zero(t, q.Len())
	assert.Equal(t, 2, q.Cap())
	_, ok = q.Pop()
	assert.False(t, ok)

	require.NoError(t, q.Append("c"))
	assert.Equal(t, []string{"c"}, q.Slice())
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	assert.Error(t, q.Append(1))
}
