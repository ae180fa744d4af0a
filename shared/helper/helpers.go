package helper

import (
	"fmt"
)

// As asserts v to T. A nil v yields the zero T, so nil interface, pointer,
// map and slice values survive a round trip through any.
func As[T any](v any) (res T, ok bool) {
	if v == nil {
		return res, true
	}
	res, ok = v.(T)
	return
}

// MustAs is the panic-on-failure variant of As.
// Use when the type is guaranteed by construction (e.g., a value boxed by a typed wrapper).
func MustAs[T any](v any) T {
	res, ok := As[T](v)
	if !ok {
		var zero T
		panic(fmt.Errorf("unexpected type: %T, want %T", v, zero))
	}
	return res
}
