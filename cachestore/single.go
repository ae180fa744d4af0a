package cachestore

// SingleStore holds the most recent entry only. Keys are matched with the
// equality given to NewSingle, so K does not need to be comparable.
type SingleStore[K, V any] struct {
	equal    func(a, b K) bool
	onEvict  func(key any)
	key      K
	value    V
	occupied bool
}

func NewSingle[K, V any](equal func(a, b K) bool) *SingleStore[K, V] {
	return &SingleStore[K, V]{equal: equal}
}

func (s *SingleStore[K, V]) Has(key K) bool {
	return s.occupied && s.equal(key, s.key)
}

func (s *SingleStore[K, V]) Get(key K) (zero V) {
	if !s.Has(key) {
		return zero
	}
	return s.value
}

// Set overwrites the slot unconditionally.
func (s *SingleStore[K, V]) Set(key K, value V) V {
	if s.occupied && s.onEvict != nil && !s.equal(key, s.key) {
		s.onEvict(s.key)
	}
	s.key = key
	s.value = value
	s.occupied = true
	return value
}

func (s *SingleStore[K, V]) Len() int {
	if s.occupied {
		return 1
	}
	return 0
}

func (s *SingleStore[K, V]) Kind() Kind { return KindSingle }

var _ Store[Args, any] = (*SingleStore[Args, any])(nil)
