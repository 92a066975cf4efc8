package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	c, err := NewCache(LocalCacheType, 2)
	require.NoError(t, err)
	c.Set("1", 1)
	c.Set("2", 2)
	c.Set("3", 3)

	_, found := c.Get("1")
	assert.False(t, found)
	v, found := c.Get("3")
	require.True(t, found)
	assert.Equal(t, 3, v)

	_, err = NewCache("", DefaultCacheSize)
	assert.NoError(t, err)
	_, err = NewCache("redis", DefaultCacheSize)
	assert.Error(t, err)
}
