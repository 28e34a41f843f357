package cache

import (
	"context"
	"route-cost-service/internal/domain"
	"sync"
)

// MemoryDistanceCache is an ephemeral in-process distance store. It backs
// tests and serves as the degraded-mode target when the persistent store is
// unavailable; its contents vanish with the process.
type MemoryDistanceCache struct {
	mu      sync.RWMutex
	entries map[domain.PairKey]int
}

func NewMemoryDistanceCache() *MemoryDistanceCache {
	return &MemoryDistanceCache{entries: make(map[domain.PairKey]int)}
}

func (c *MemoryDistanceCache) Lookup(_ context.Context, from, to domain.GeoPoint) (int, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	meters, ok := c.entries[domain.NewPairKey(from, to)]
	return meters, ok, nil
}

func (c *MemoryDistanceCache) Store(_ context.Context, distances []domain.Distance) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range distances {
		c.entries[d.Key()] = d.Meters()
	}
	return nil
}

// Len reports the number of distinct cached pairs.
func (c *MemoryDistanceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
