package source

import (
	"context"
	"sync"

	"github.com/jondoveston/memtop/internal/monitor"
)

// Cache wraps a provider and remembers its capacity, which rarely changes
// and can be expensive to query
type Cache struct {
	monitor.ValueProvider

	mu       sync.Mutex
	capacity *float64
}

// NewCache wraps p
func NewCache(p monitor.ValueProvider) *Cache {
	return &Cache{ValueProvider: p}
}

// MaxCapacity returns the cached capacity, querying the provider once
func (c *Cache) MaxCapacity(ctx context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity != nil {
		return *c.capacity, nil
	}
	v, err := c.ValueProvider.MaxCapacity(ctx)
	if err != nil {
		return 0, err
	}
	c.capacity = &v
	return v, nil
}

// Invalidate forgets the cached capacity
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capacity = nil
}
