package memoselect

import (
	"github.com/on-the-ground/memoselect/cachestore"
	"go.uber.org/zap"
)

type options struct {
	cacheLimit int
	logger     *zap.Logger
	name       string
}

func defaultOptions() options {
	return options{
		cacheLimit: cachestore.DefaultLimit,
		logger:     zap.NewNop(),
	}
}

type Option func(*options)

// WithCacheLimit sets how many distinct lens output combinations a selector
// remembers. 0 disables the result cache and 1 keeps only the latest result.
// Default: cachestore.DefaultLimit
func WithCacheLimit(limit int) Option {
	return func(o *options) {
		o.cacheLimit = limit
	}
}

// WithLogger sets the logger receiving debug entries for cache misses and
// evictions. Default: zap.NewNop()
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the selector in log entries.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
