package cachestore

// NullStore retains nothing. It models disabled caching.
type NullStore[K, V any] struct{}

func NewNull[K, V any]() *NullStore[K, V] {
	return &NullStore[K, V]{}
}

func (s *NullStore[K, V]) Has(K) bool { return false }

func (s *NullStore[K, V]) Get(K) (zero V) { return zero }

func (s *NullStore[K, V]) Set(_ K, value V) V { return value }

func (s *NullStore[K, V]) Len() int { return 0 }

func (s *NullStore[K, V]) Kind() Kind { return KindNull }

var _ Store[string, any] = (*NullStore[string, any])(nil)
