package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationClamps(t *testing.T) {
	c := New(3)
	assert.False(t, c.CanPrev())
	assert.True(t, c.CanNext())

	c.Prev()
	assert.Equal(t, 0, c.Current())

	c.Next()
	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Current())
	assert.False(t, c.CanNext())
	assert.True(t, c.CanPrev())
	assert.Equal(t, -2.0, c.Offset())

	c.GoTo(-5)
	assert.Equal(t, 0, c.Current())
	c.GoTo(1)
	assert.Equal(t, 1, c.Current())
}

func TestEmpty(t *testing.T) {
	c := New(0)
	c.Next()
	assert.Equal(t, 0, c.Current())
	assert.False(t, c.CanNext())
	assert.False(t, c.CanPrev())
}
