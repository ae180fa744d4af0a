// Package structhash turns arbitrary Go values into compact comparable keys
// based on their structural content rather than their identity.
//
// Every value is first rendered into a canonical, type-tagged text form and the
// text is then digested with xxhash. Two values that are deeply equal produce the
// same [Key]; values that differ in type class, key set, sequence order or any
// leaf value produce different keys (up to ordinary 64-bit hash collisions).
//
// Canonicalization rules:
//
//   - Map keys are sorted by their own canonical form, so insertion order never
//     matters. Keys that encode alike, such as pointers to equal values, are
//     ordered by their values. Structs are encoded as a mapping from field name
//     to value, which makes a struct and a map[string]any with the same pairs
//     hash alike.
//   - Slices and arrays keep their order. A nil slice equals an empty slice and a
//     nil map equals an empty map.
//   - Leaves carry a type-class tag: nil, [Undefined], false, 0, 0.0 and "" all
//     hash differently. Integers of any width share one class, unsigned integers
//     another, floats a third (-0 equals +0, every NaN equals every other NaN).
//   - Pointers and interfaces are followed. A nil pointer has its own tag.
//   - Funcs, chans and unsafe pointers have no structure and hash by address.
//   - Values implementing [Keyer] are hashed by the key they report, and
//     time.Time is hashed by its instant.
//
// Cyclic values are supported: a pointer, map or slice that is already being
// encoded further up the current path is written as a back-reference, so
// hashing a self-referencing value terminates with a deterministic key.
//
// Hash is safe for concurrent use.
package structhash
