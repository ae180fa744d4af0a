// Package memoselect builds memoized selectors: functions that derive a value
// from an input through a set of lenses and a transformer, and recompute it
// only when what the lenses extract actually changes.
//
// A call goes through three layers:
//
//	→ The input is compared by identity with the previous input. A repeat of
//	  the very same pointer, map or scalar returns the previous result at once.
//	→ Each lens runs behind its own identity memoization and extracts a value.
//	→ The vector of lens outputs is hashed by content (package structhash) and
//	  looked up in the selector's bounded result cache. Only on a miss does the
//	  transformer run, with the lens outputs as its arguments in lens order.
//
// Because the final lookup is structural, handing the selector a fresh copy of
// an unchanged state re-runs the lenses but not the transformer:
//
//	total := memoselect.Select2(
//	    func(s *State) int { return s.A },
//	    func(s *State) int { return s.B },
//	    func(a, b int) int { return a + b },
//	)
//	total(&State{A: 1, B: 2})  // 3, transformer runs
//	total(&State{A: 1, B: 2})  // 3, lenses run, transformer cached
//	total(&State{A: 1, B: 20}) // 21, transformer runs
//
// The transformer runs at most once per distinct combination of lens outputs
// among the last WithCacheLimit combinations (10 by default; older ones are
// evicted first-in first-out). A selector without lenses computes its value
// once and returns it for every input.
//
// Lenses and transformers must be pure. A selector owns all of its caches and
// never shares them with another selector, but it is not safe for concurrent
// use: guard it externally when calling from several goroutines.
package memoselect
