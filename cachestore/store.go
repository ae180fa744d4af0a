package cachestore

import (
	"fmt"
)

// DefaultLimit is the capacity New uses when no limit is configured.
const DefaultLimit = 10

// Kind names the capacity strategy behind a Store.
type Kind uint8

const (
	KindNull Kind = iota
	KindSingle
	KindBounded
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindSingle:
		return "single"
	case KindBounded:
		return "bounded"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Store is the contract shared by every capacity strategy.
type Store[K, V any] interface {
	// Has reports whether a value is currently stored under key.
	Has(key K) bool
	// Get returns the value stored under key, or the zero value when absent.
	Get(key K) V
	// Set stores value under key, applies the eviction policy and returns value.
	Set(key K, value V) V
	// Len reports the number of entries currently held.
	Len() int
	Kind() Kind
}

// Options configures New.
type Options struct {
	// Limit selects the strategy: 0 is Null, 1 is Single, above 1 is Bounded.
	// Default: DefaultLimit
	Limit int

	// Equal matches keys in the Single strategy.
	// Default: Identical
	Equal func(a, b any) bool

	// OnEvict is called with every key dropped to make room for a new one.
	OnEvict func(key any)
}

type Option func(*Options)

func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

func WithEqual(equal func(a, b any) bool) Option {
	return func(o *Options) {
		o.Equal = equal
	}
}

func WithOnEvict(onEvict func(key any)) Option {
	return func(o *Options) {
		o.OnEvict = onEvict
	}
}

// New constructs the store selected by the configured limit.
func New[K comparable, V any](opts ...Option) (Store[K, V], error) {
	o := Options{Limit: DefaultLimit, Equal: Identical}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Equal == nil {
		o.Equal = Identical
	}

	switch {
	case o.Limit < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, o.Limit)
	case o.Limit == 0:
		return NewNull[K, V](), nil
	case o.Limit == 1:
		equal := o.Equal
		s := NewSingle[K, V](func(a, b K) bool { return equal(a, b) })
		s.onEvict = o.OnEvict
		return s, nil
	default:
		b := NewBounded[K, V](o.Limit)
		b.onEvict = o.OnEvict
		return b, nil
	}
}
