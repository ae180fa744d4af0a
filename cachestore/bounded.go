package cachestore

import (
	"github.com/on-the-ground/memoselect/shared/fifoqueue"
)

// BoundedStore holds up to a fixed number of entries and evicts in insertion
// order. Setting a key that is already stored replaces its value and counts
// as a fresh insertion: the key moves to the tail of the eviction order
// instead of being queued twice.
type BoundedStore[K comparable, V any] struct {
	entries map[K]V
	order   *fifoqueue.BoundedQueue[K]
	onEvict func(key any)
}

// NewBounded panics when limit is not positive; use New to validate a
// configured limit.
func NewBounded[K comparable, V any](limit int) *BoundedStore[K, V] {
	return &BoundedStore[K, V]{
		entries: make(map[K]V, limit),
		order:   fifoqueue.NewBoundedQueue[K](limit),
	}
}

func (s *BoundedStore[K, V]) Has(key K) bool {
	_, ok := s.entries[key]
	return ok
}

func (s *BoundedStore[K, V]) Get(key K) V {
	return s.entries[key]
}

func (s *BoundedStore[K, V]) Set(key K, value V) V {
	s.entries[key] = value
	if evicted, ok := s.order.Push(key); ok {
		delete(s.entries, evicted)
		if s.onEvict != nil {
			s.onEvict(evicted)
		}
	}
	return value
}

func (s *BoundedStore[K, V]) Len() int {
	return len(s.entries)
}

func (s *BoundedStore[K, V]) Kind() Kind { return KindBounded }

// Keys returns the stored keys from oldest to newest insertion.
func (s *BoundedStore[K, V]) Keys() []K {
	return s.order.Values()
}

var _ Store[string, any] = (*BoundedStore[string, any])(nil)
