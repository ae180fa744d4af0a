package fifoqueue_test

import (
	"testing"

	"github.com/on-the-ground/memoselect/shared/fifoqueue"
	"github.com/stretchr/testify/assert"
)

func TestBoundedQueue_PushAndEviction(t *testing.T) {
	q := fifoqueue.NewBoundedQueue[int](3)

	var evicted []int
	for _, v := range []int{10, 5, 7, 3, 8} {
		if old, ok := q.Push(v); ok {
			evicted = append(evicted, old)
		}
	}

	// insertion order, not value order
	assert.Equal(t, []int{10, 5}, evicted)
	assert.Equal(t, []int{7, 3, 8}, q.Values())
	assert.Equal(t, 3, q.Len())
}

func TestBoundedQueue_RepushMovesToTail(t *testing.T) {
	q := fifoqueue.NewBoundedQueue[string](2)

	_, ok := q.Push("a")
	assert.False(t, ok)
	_, ok = q.Push("b")
	assert.False(t, ok)
	_, ok = q.Push("a")
	assert.False(t, ok, "re-push of a queued value must not evict")
	assert.Equal(t, []string{"b", "a"}, q.Values())

	old, ok := q.Push("c")
	assert.True(t, ok)
	assert.Equal(t, "b", old)
	assert.Equal(t, []string{"a", "c"}, q.Values())
}

func TestBoundedQueue_ZeroCapacityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on zero capacity, but didn't panic")
		}
	}()
	fifoqueue.NewBoundedQueue[int](0)
}
