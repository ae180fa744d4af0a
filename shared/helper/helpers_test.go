package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/memoselect/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestAs(t *testing.T) {
	v, ok := helper.As[int](3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = helper.As[string](3)
	assert.False(t, ok)
}

func TestAs_NilYieldsZero(t *testing.T) {
	err, ok := helper.As[error](nil)
	assert.True(t, ok)
	assert.Nil(t, err)

	m, ok := helper.As[map[string]int](nil)
	assert.True(t, ok)
	assert.Nil(t, m)
}

func TestMustAs(t *testing.T) {
	wrapped := errors.New("boom")
	assert.Equal(t, wrapped, helper.MustAs[error](wrapped))
	assert.Panics(t, func() {
		helper.MustAs[int]("three")
	})
}
