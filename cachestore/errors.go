package cachestore

import "errors"

// ErrInvalidLimit is returned by New when the requested limit is negative.
var ErrInvalidLimit = errors.New("cachestore: requested limit lower than 0, unable to construct store")
