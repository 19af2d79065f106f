package registry

import (
	"context"
	"slices"
	"sync"
)

// Cache holds the last applied list per parent. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the cached list and whether it was present.
	Get(ctx context.Context, parentID string) ([]PaymentMethod, bool, error)
	Set(ctx context.Context, parentID string, methods []PaymentMethod) error
	Invalidate(ctx context.Context, parentID string) error
}

// MemoryCache is a process local Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]PaymentMethod
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]PaymentMethod)}
}

func (c *MemoryCache) Get(_ context.Context, parentID string) ([]PaymentMethod, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	methods, ok := c.entries[parentID]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(methods), true, nil
}

func (c *MemoryCache) Set(_ context.Context, parentID string, methods []PaymentMethod) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if methods == nil {
		methods = []PaymentMethod{}
	}
	c.entries[parentID] = slices.Clone(methods)
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, parentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, parentID)
	return nil
}
