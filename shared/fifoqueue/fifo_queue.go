package fifoqueue

import (
	"container/list"
)

// BoundedQueue records values in insertion order and evicts from the head
// once more than capacity values are held. A value is held at most once:
// pushing a value that is already queued moves it to the tail.
type BoundedQueue[T comparable] struct {
	order    *list.List
	index    map[T]*list.Element
	capacity int
}

func NewBoundedQueue[T comparable](capacity int) *BoundedQueue[T] {
	if capacity <= 0 {
		panic("capacity should be greater than 0")
	}
	return &BoundedQueue[T]{
		order:    list.New(),
		index:    make(map[T]*list.Element, capacity+1),
		capacity: capacity,
	}
}

// Push appends val and reports the head value evicted to stay within
// capacity, if any.
func (q *BoundedQueue[T]) Push(val T) (evicted T, ok bool) {
	if el, found := q.index[val]; found {
		q.order.MoveToBack(el)
		return evicted, false
	}

	q.index[val] = q.order.PushBack(val)
	if q.order.Len() <= q.capacity {
		return evicted, false
	}

	head := q.order.Front()
	evicted = q.order.Remove(head).(T)
	delete(q.index, evicted)
	return evicted, true
}

func (q *BoundedQueue[T]) Len() int {
	return q.order.Len()
}

// Values returns the queued values from oldest to newest.
func (q *BoundedQueue[T]) Values() []T {
	out := make([]T, 0, q.order.Len())
	for el := q.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(T))
	}
	return out
}
