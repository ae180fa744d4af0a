package structhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key is the structural digest of a value.
type Key uint64

// String renders the key as 16 lowercase hex digits.
func (k Key) String() string {
	return fmt.Sprintf("%016x", uint64(k))
}

// Keyer lets a type supply its own structural identity. Two Keyer values of
// any type with the same HashKey hash identically.
type Keyer interface {
	HashKey() string
}

type undefined struct{}

// Undefined stands for the absence of a value. It hashes differently from nil.
var Undefined any = undefined{}

// Hash returns the structural key of v.
func Hash(v any) Key {
	e := getEncoder()
	e.encode(v)
	k := Key(xxhash.Sum64(e.buf))
	putEncoder(e)
	return k
}

// HashAll returns the structural key of the ordered vector vs.
// HashAll(a, b) equals Hash([]any{a, b}).
func HashAll(vs ...any) Key {
	e := getEncoder()
	e.encodeSeq(vs)
	k := Key(xxhash.Sum64(e.buf))
	putEncoder(e)
	return k
}

// Canonical returns the canonical text that Hash digests. It is meant for
// debugging and tests; use Hash for lookups.
func Canonical(v any) string {
	e := getEncoder()
	e.encode(v)
	s := string(e.buf)
	putEncoder(e)
	return s
}
