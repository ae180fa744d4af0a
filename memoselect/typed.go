package memoselect

import (
	"github.com/on-the-ground/memoselect/shared/helper"
)

// Select0 builds a selector without lenses. Its transformer runs once, on the
// first call, whatever the input.
func Select0[I, O any](transformer func() O, opts ...Option) func(I) O {
	return New[I, O](nil, func(...any) O {
		return transformer()
	}, opts...).Select
}

func Select1[I, A, O any](
	l1 func(I) A,
	transformer func(A) O,
	opts ...Option,
) func(I) O {
	return New[I, O](
		[]Lens[I]{
			func(in I) any { return l1(in) },
		},
		func(args ...any) O {
			return transformer(helper.MustAs[A](args[0]))
		},
		opts...,
	).Select
}

func Select2[I, A, B, O any](
	l1 func(I) A,
	l2 func(I) B,
	transformer func(A, B) O,
	opts ...Option,
) func(I) O {
	return New[I, O](
		[]Lens[I]{
			func(in I) any { return l1(in) },
			func(in I) any { return l2(in) },
		},
		func(args ...any) O {
			return transformer(helper.MustAs[A](args[0]), helper.MustAs[B](args[1]))
		},
		opts...,
	).Select
}

func Select3[I, A, B, C, O any](
	l1 func(I) A,
	l2 func(I) B,
	l3 func(I) C,
	transformer func(A, B, C) O,
	opts ...Option,
) func(I) O {
	return New[I, O](
		[]Lens[I]{
			func(in I) any { return l1(in) },
			func(in I) any { return l2(in) },
			func(in I) any { return l3(in) },
		},
		func(args ...any) O {
			return transformer(
				helper.MustAs[A](args[0]),
				helper.MustAs[B](args[1]),
				helper.MustAs[C](args[2]),
			)
		},
		opts...,
	).Select
}

func Select4[I, A, B, C, D, O any](
	l1 func(I) A,
	l2 func(I) B,
	l3 func(I) C,
	l4 func(I) D,
	transformer func(A, B, C, D) O,
	opts ...Option,
) func(I) O {
	return New[I, O](
		[]Lens[I]{
			func(in I) any { return l1(in) },
			func(in I) any { return l2(in) },
			func(in I) any { return l3(in) },
			func(in I) any { return l4(in) },
		},
		func(args ...any) O {
			return transformer(
				helper.MustAs[A](args[0]),
				helper.MustAs[B](args[1]),
				helper.MustAs[C](args[2]),
				helper.MustAs[D](args[3]),
			)
		},
		opts...,
	).Select
}
