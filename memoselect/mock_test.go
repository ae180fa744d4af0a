package memoselect_test

import (
	"math/rand/v2"
)

// mock records its calls and returns a fixed value, or a fresh random one
// when none is set.
type mock struct {
	calls   [][]any
	returns any
}

func (m *mock) lens(in any) any {
	m.calls = append(m.calls, []any{in})
	if m.returns == nil {
		return rand.Float64()
	}
	return m.returns
}

func (m *mock) transformer(args ...any) any {
	m.calls = append(m.calls, args)
	if m.returns == nil {
		return rand.Float64()
	}
	return m.returns
}

func (m *mock) callCount() int {
	return len(m.calls)
}

func (m *mock) firstCall() []any {
	return m.calls[0]
}
