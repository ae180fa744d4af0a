// Package cachestore provides small in-process key/value stores with a shared
// Has/Get/Set contract and three interchangeable capacity strategies:
//
//   - Null (limit 0): retains nothing, every Has reports false.
//   - Single (limit 1): holds one entry, matched with a caller supplied
//     equality so that non-comparable keys such as [Args] can be used.
//   - Bounded (limit > 1): holds up to limit entries and evicts the oldest
//     inserted key first. Reads never refresh an entry's position.
//
// [New] picks the variant from the configured limit (default [DefaultLimit]).
//
//	store, err := cachestore.New[structhash.Key, int](cachestore.WithLimit(32))
//	if err != nil {
//	    return err
//	}
//	if store.Has(key) {
//	    return store.Get(key)
//	}
//	return store.Set(key, compute())
//
// Get on an absent key returns the zero value of V. Always check Has first when
// the zero value is a legitimate stored result.
//
// Stores do no locking. A store must be owned by one goroutine at a time.
package cachestore
