package memoize

import (
	"slices"

	"github.com/on-the-ground/memoselect/cachestore"
	"github.com/on-the-ground/memoselect/shared/helper"
)

// Func wraps fn so that it only runs when its argument list differs from the
// one of the immediately preceding call. Arguments are compared position by
// position with cachestore.Identical; a different number of arguments always
// counts as a change. Only the latest call is remembered.
func Func[O any](fn func(args ...any) O) func(args ...any) O {
	cache := cachestore.NewSingle[cachestore.Args, O](cachestore.ArgsEqual)
	return func(args ...any) O {
		key := cachestore.Args(args)
		if cache.Has(key) {
			return cache.Get(key)
		}
		result := fn(args...)
		// the caller may reuse a spread slice
		return cache.Set(slices.Clone(key), result)
	}
}

func I0O1[O any](fn func() O) func() O {
	memoized := Func(func(...any) O {
		return fn()
	})
	return func() O {
		return memoized()
	}
}

func I1O1[I1, O any](fn func(I1) O) func(I1) O {
	memoized := Func(func(args ...any) O {
		return fn(helper.MustAs[I1](args[0]))
	})
	return func(i1 I1) O {
		return memoized(i1)
	}
}

func I2O1[I1, I2, O any](fn func(I1, I2) O) func(I1, I2) O {
	memoized := Func(func(args ...any) O {
		return fn(helper.MustAs[I1](args[0]), helper.MustAs[I2](args[1]))
	})
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

func I3O1[I1, I2, I3, O any](fn func(I1, I2, I3) O) func(I1, I2, I3) O {
	memoized := Func(func(args ...any) O {
		return fn(helper.MustAs[I1](args[0]), helper.MustAs[I2](args[1]), helper.MustAs[I3](args[2]))
	})
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

func I4O1[I1, I2, I3, I4, O any](fn func(I1, I2, I3, I4) O) func(I1, I2, I3, I4) O {
	memoized := Func(func(args ...any) O {
		return fn(
			helper.MustAs[I1](args[0]),
			helper.MustAs[I2](args[1]),
			helper.MustAs[I3](args[2]),
			helper.MustAs[I4](args[3]),
		)
	})
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return memoized(i1, i2, i3, i4)
	}
}
