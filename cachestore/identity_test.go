package cachestore_test

import (
	"testing"

	"github.com/on-the-ground/memoselect/cachestore"

	"github.com/stretchr/testify/assert"
)

type pair struct {
	A, B int
}

type holder struct {
	V any
}

func TestIdentical_Primitives(t *testing.T) {
	assert.True(t, cachestore.Identical("key", "key"))
	assert.True(t, cachestore.Identical(1, 1))
	assert.True(t, cachestore.Identical(nil, nil))
	assert.True(t, cachestore.Identical(2.5, 2.5))

	assert.False(t, cachestore.Identical(1, int64(1)))
	assert.False(t, cachestore.Identical(0, false))
	assert.False(t, cachestore.Identical(nil, 0))
	assert.False(t, cachestore.Identical(0, nil))
	assert.False(t, cachestore.Identical("", nil))
}

func TestIdentical_ReferencesByAddress(t *testing.T) {
	p := &pair{1, 2}
	assert.True(t, cachestore.Identical(p, p))
	assert.False(t, cachestore.Identical(p, &pair{1, 2}))

	m := map[string]int{"a": 1}
	assert.True(t, cachestore.Identical(m, m))
	assert.False(t, cachestore.Identical(m, map[string]int{"a": 1}))

	s := []int{1, 2, 3}
	assert.True(t, cachestore.Identical(s, s))
	assert.False(t, cachestore.Identical(s, s[:2]))
	assert.False(t, cachestore.Identical(s, []int{1, 2, 3}))

	f := func() {}
	assert.False(t, cachestore.Identical(f, f))
}

func TestIdentical_NeverPanics(t *testing.T) {
	a := holder{V: []int{1}}
	assert.NotPanics(t, func() {
		assert.False(t, cachestore.Identical(a, a))
	})
	assert.True(t, cachestore.Identical(holder{V: 1}, holder{V: 1}))
	assert.True(t, cachestore.Identical(pair{1, 2}, pair{1, 2}))
}

func TestArgsEqual(t *testing.T) {
	obj := &pair{1, 2}
	assert.True(t, cachestore.ArgsEqual(cachestore.Args{}, cachestore.Args{}))
	assert.True(t, cachestore.ArgsEqual(cachestore.Args{obj, "x"}, cachestore.Args{obj, "x"}))
	assert.False(t, cachestore.ArgsEqual(cachestore.Args{obj}, cachestore.Args{obj, nil}))
	assert.False(t, cachestore.ArgsEqual(cachestore.Args{"x", obj}, cachestore.Args{obj, "x"}))
}
