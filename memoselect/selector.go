package memoselect

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/memoselect/cachestore"
	"github.com/on-the-ground/memoselect/memoize"
	"github.com/on-the-ground/memoselect/shared/helper"
	"github.com/on-the-ground/memoselect/structhash"
	"go.uber.org/zap"
)

// Lens extracts one value from a selector input.
type Lens[I any] func(I) any

// Transformer combines the lens outputs, received in lens order.
type Transformer[O any] func(args ...any) O

// Stats counts what a selector did since it was created.
type Stats struct {
	// Calls is the number of Select invocations.
	Calls uint64
	// InputHits counts calls answered because the input was identical to the
	// previous one, without running any lens.
	InputHits uint64
	// ResultHits counts calls whose lens outputs were found in the result cache.
	ResultHits uint64
	// Misses counts transformer invocations.
	Misses uint64
	// Evictions counts results dropped from the result cache.
	Evictions uint64
}

// Selector derives a value from its input and recomputes it only when the
// values its lenses extract change by content.
type Selector[I, O any] struct {
	id          uuid.UUID
	name        string
	logger      *zap.Logger
	lenses      []func(args ...any) any
	transformer Transformer[O]
	results     cachestore.Store[structhash.Key, O]
	selectFn    func(args ...any) O
	stats       Stats
}

// New builds a selector. It panics when the configured cache limit is
// negative; use TryNew to get the error instead.
func New[I, O any](lenses []Lens[I], transformer Transformer[O], opts ...Option) *Selector[I, O] {
	s, err := TryNew(lenses, transformer, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// TryNew builds a selector. Each lens is memoized on its own, and the result
// cache belongs to this selector only. The transformer must accept as many
// arguments as there are lenses.
func TryNew[I, O any](lenses []Lens[I], transformer Transformer[O], opts ...Option) (*Selector[I, O], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Selector[I, O]{
		id:          uuid.New(),
		name:        o.name,
		logger:      o.logger,
		lenses:      make([]func(args ...any) any, len(lenses)),
		transformer: transformer,
	}
	s.logger = s.logger.With(zap.Stringer("selector_id", s.id))
	if s.name != "" {
		s.logger = s.logger.With(zap.String("selector", s.name))
	}

	results, err := cachestore.New[structhash.Key, O](
		cachestore.WithLimit(o.cacheLimit),
		cachestore.WithOnEvict(s.onEvict),
	)
	if err != nil {
		return nil, err
	}
	s.results = results

	for i, lens := range lenses {
		s.lenses[i] = memoize.Func(func(args ...any) any {
			return lens(helper.MustAs[I](args[0]))
		})
	}
	s.selectFn = memoize.Func(func(args ...any) O {
		return s.compute(args[0])
	})

	s.logger.Debug("selector created",
		zap.Int("lenses", len(lenses)),
		zap.Stringer("cache", results.Kind()),
	)
	return s, nil
}

// Select returns the derived value for in.
func (s *Selector[I, O]) Select(in I) O {
	s.stats.Calls++
	return s.selectFn(in)
}

// Func returns Select as a plain function value.
func (s *Selector[I, O]) Func() func(I) O {
	return s.Select
}

func (s *Selector[I, O]) ID() uuid.UUID {
	return s.id
}

func (s *Selector[I, O]) Name() string {
	return s.name
}

func (s *Selector[I, O]) Stats() Stats {
	stats := s.stats
	stats.InputHits = stats.Calls - stats.ResultHits - stats.Misses
	return stats
}

// compute runs behind the identity memoization of the input, so in is new.
func (s *Selector[I, O]) compute(in any) O {
	values := make([]any, len(s.lenses))
	for i, lens := range s.lenses {
		values[i] = lens(in)
	}

	key := structhash.HashAll(values...)
	if s.results.Has(key) {
		s.stats.ResultHits++
		return s.results.Get(key)
	}

	s.stats.Misses++
	if ce := s.logger.Check(zap.DebugLevel, "transformer invoked"); ce != nil {
		ce.Write(zap.Stringer("key", key), zap.Int("lenses", len(values)))
	}
	return s.results.Set(key, s.transformer(values...))
}

func (s *Selector[I, O]) onEvict(key any) {
	s.stats.Evictions++
	if ce := s.logger.Check(zap.DebugLevel, "result evicted"); ce != nil {
		ce.Write(zap.Any("key", key))
	}
}
