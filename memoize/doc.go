// Package memoize remembers the last call of a function.
//
// A memoized function re-runs only when its arguments change, where "change"
// means identity: two distinct pointers to equal structs are different
// arguments, while equal strings and numbers are the same argument. This is
// deliberately cheaper than a structural comparison; see package memoselect
// for change detection by value.
//
//	area := memoize.I2O1(func(w, h int) int { return w * h })
//	area(2, 3) // computes
//	area(2, 3) // cached
//	area(3, 2) // computes
//	area(2, 3) // computes again, only the latest call is kept
//
// A memoized function keeps its cache privately and is not safe for
// concurrent use.
package memoize
