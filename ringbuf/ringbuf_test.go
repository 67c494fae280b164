package ringbuf_test

import (
	"testing"

	"github.com/marcas756/myos-sub001/ringbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_PushPopFIFO(t *testing.T) {
	r := ringbuf.New[int](4)
	require.True(t, r.Push(1))
	require.True(t, r.Push(2))
	require.True(t, r.Push(3))

	v, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, r.Len())
}

func TestRing_RoundsUpToPowerOfTwo(t *testing.T) {
	r := ringbuf.New[int](5)
	assert.Equal(t, 8, r.Cap())
}

func TestRing_FullReturnsFalseNotPanic(t *testing.T) {
	r := ringbuf.New[int](2)
	require.True(t, r.Push(1))
	require.True(t, r.Push(2))
	assert.True(t, r.Full())
	assert.False(t, r.Push(3))

	// a subsequent dequeue allows a fresh post to succeed (spec §8)
	_, ok := r.Pop()
	require.True(t, ok)
	assert.True(t, r.Push(3))
}

func TestRing_PopEmpty(t *testing.T) {
	r := ringbuf.New[string](4)
	_, ok := r.Pop()
	assert.False(t, ok)
}

func TestRing_WrapAround(t *testing.T) {
	r := ringbuf.New[int](4)
	for i := 0; i < 4; i++ {
		require.True(t, r.Push(i))
	}
	for i := 0; i < 4; i++ {
		v, ok := r.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	// now wrap the cursors around the backing array several times
	for round := 0; round < 10; round++ {
		require.True(t, r.Push(round))
		v, ok := r.Pop()
		require.True(t, ok)
		assert.Equal(t, round, v)
	}
}

func TestRing_Peek(t *testing.T) {
	r := ringbuf.New[int](4)
	_, ok := r.Peek()
	assert.False(t, ok)

	r.Push(7)
	v, ok := r.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, r.Len())
}
