package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "loading row")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
}

func TestWrapKeepsChain(t *testing.T) {
	err := Wrapf(Join(errFirst, errSecond), "step %d", 2)

	assert.True(t, Is(err, errFirst))
	assert.True(t, Is(err, errSecond))
	assert.Contains(t, err.Error(), "step 2")
}
