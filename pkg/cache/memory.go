package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value []byte
	exp   time.Time
}

// MemoryCache is a mutex-guarded in-process TTL cache.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]entry
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string]entry)}
}

func (c *MemoryCache) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *MemoryCache) SetBytes(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.m[key] = entry{value: value, exp: exp}
	c.mu.Unlock()
	return nil
}
