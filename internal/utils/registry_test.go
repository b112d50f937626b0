package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string, int]()

	r.Register("b", 2)
	r.Register("a", 1)
	r.Register("b", 3)

	value, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
	_, ok = r.Get("c")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, SortedKeys(r))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register(n, n*n)
			r.Get(n)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		value, ok := r.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i*i, value)
	}
}
