package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripplanner/internal/cache"
)

func TestLRUEviction(t *testing.T) {
	c := cache.New(2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // вытесняет "a"

	_, ok := c.Get("a")
	assert.False(t, ok)
	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRUGetRefreshesRecency(t *testing.T) {
	c := cache.New(2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // "a" снова свежий
	c.Put("c", 3) // вытесняется "b"

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestLRURemoveAndPurge(t *testing.T) {
	c := cache.New(4)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Remove("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestLRUUpdateExisting(t *testing.T) {
	c := cache.New(2)
	c.Put("a", 1)
	c.Put("a", 10)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.Len())
}
