package memory

import (
	"fmt"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache() *Cache {
	return New(log.New(io.Discard, "", 0))
}

func TestCachePutGet(t *testing.T) {
	c := newTestCache()

	c.Put("k", "v1")
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	// Put безусловно перезаписывает
	c.Put("k", 42)
	v, ok = c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestCacheGetAbsent(t *testing.T) {
	c := newTestCache()

	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestCacheRemoveIdempotent(t *testing.T) {
	c := newTestCache()
	c.Put("k", "v")

	c.Remove("k")
	_, ok := c.Get("k")
	assert.False(t, ok)

	// Повторное удаление — no-op с тем же исходом
	c.Remove("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheRemoveMany(t *testing.T) {
	c := newTestCache()
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	c.Remove("a", "b", "nope")

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("c")
	assert.True(t, ok)
}

func TestCacheClear(t *testing.T) {
	c := newTestCache()
	c.Put("a", 1)
	c.Put("b", 2)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	const (
		goroutines = 16
		keys       = 100
	)
	c := newTestCache()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		g := g
		go func() {
			defer wg.Done()
			for i := 0; i < keys; i++ {
				key := fmt.Sprintf("g%d_k%d", g, i)
				c.Put(key, i)
				if v, ok := c.Get(key); ok {
					_ = v
				}
				if i%3 == 0 {
					c.Remove(key)
				}
			}
		}()
	}
	wg.Wait()

	// Записи без удаления должны пережить гонку
	for g := 0; g < goroutines; g++ {
		for i := 0; i < keys; i++ {
			if i%3 == 0 {
				continue
			}
			v, ok := c.Get(fmt.Sprintf("g%d_k%d", g, i))
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
	}
}
