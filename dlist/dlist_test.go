package dlist_test

import (
	"testing"

	"github.com/marcas756/myos-sub001/dlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushBack_FIFOOrder(t *testing.T) {
	l := dlist.New[int]()
	a := &dlist.Node[int]{Value: 1}
	b := &dlist.Node[int]{Value: 2}
	c := &dlist.Node[int]{Value: 3}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	var order []int
	l.Each(func(n *dlist.Node[int]) bool {
		order = append(order, n.Value)
		return true
	})
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, a, l.Front())
	assert.Equal(t, c, l.Back())
}

func TestRemove_Middle(t *testing.T) {
	l := dlist.New[int]()
	a := &dlist.Node[int]{Value: 1}
	b := &dlist.Node[int]{Value: 2}
	c := &dlist.Node[int]{Value: 3}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	require.True(t, l.Remove(b))
	assert.False(t, b.Linked())
	assert.Equal(t, 2, l.Len())

	var order []int
	l.Each(func(n *dlist.Node[int]) bool {
		order = append(order, n.Value)
		return true
	})
	assert.Equal(t, []int{1, 3}, order)
	assert.Equal(t, a, l.Front())
	assert.Equal(t, c, l.Back())
}

func TestRemove_HeadAndTail(t *testing.T) {
	l := dlist.New[int]()
	a := &dlist.Node[int]{Value: 1}
	b := &dlist.Node[int]{Value: 2}
	l.PushBack(a)
	l.PushBack(b)

	l.Remove(a)
	assert.Equal(t, b, l.Front())
	l.Remove(b)
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	assert.Equal(t, 0, l.Len())
}

func TestRemove_NotLinkedIsNoOp(t *testing.T) {
	l := dlist.New[int]()
	a := &dlist.Node[int]{Value: 1}
	assert.False(t, l.Remove(a))
}
