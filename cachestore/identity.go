package cachestore

import (
	"reflect"
)

// Args is an ordered argument list captured from a call.
type Args []any

// ArgsEqual reports whether a and b have the same length and are Identical
// position by position.
func ArgsEqual(a, b Args) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Identical(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Identical compares by identity rather than by content. Comparable values
// use ==, so strings and numbers match by value and pointers by address.
// Slices match when they share backing array, length and capacity, and maps
// when they are the same map. Funcs, and values of non-comparable struct or
// array types, are never identical to anything but nil. Identical never panics.
func Identical(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int:
		y, ok := b.(int)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}
	if b == nil {
		return false
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	switch ta.Kind() {
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	case reflect.Map:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Func:
		return false
	case reflect.Struct, reflect.Array:
		return comparableEqual(a, b)
	default:
		return a == b
	}
}

// comparableEqual guards == for struct and array values whose fields may hold
// non-comparable dynamic types.
func comparableEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
