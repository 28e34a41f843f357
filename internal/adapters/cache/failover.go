package cache

import (
	"context"
	"log"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/ports"
	"sync"
)

// DefaultFailureThreshold is the number of consecutive primary write failures
// tolerated before the cache degrades to the in-memory store.
const DefaultFailureThreshold = 3

// FailoverDistanceCache is a circuit breaker around the persistent distance
// cache. It counts consecutive write failures against the primary store;
// once the threshold is crossed it flips from Normal to Degraded, routing
// all subsequent operations to an ephemeral in-memory store and emitting an
// operational alert. The transition is one-way for the process lifetime:
// recovering the persistent store means restarting.
type FailoverDistanceCache struct {
	primary   ports.DistanceCache
	fallback  ports.DistanceCache
	threshold int

	mu       sync.Mutex
	failures int
	degraded bool
}

func NewFailoverDistanceCache(primary ports.DistanceCache, threshold int) *FailoverDistanceCache {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	return &FailoverDistanceCache{
		primary:   primary,
		fallback:  NewMemoryDistanceCache(),
		threshold: threshold,
	}
}

// Degraded reports whether the breaker has tripped.
func (c *FailoverDistanceCache) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

func (c *FailoverDistanceCache) Lookup(ctx context.Context, from, to domain.GeoPoint) (int, bool, error) {
	if c.Degraded() {
		return c.fallback.Lookup(ctx, from, to)
	}

	meters, ok, err := c.primary.Lookup(ctx, from, to)
	if err != nil {
		// Read failures do not trip the breaker; a miss is always safe.
		log.Printf("distance cache primary lookup failed err=%v", err)
		return 0, false, nil
	}
	return meters, ok, nil
}

func (c *FailoverDistanceCache) Store(ctx context.Context, distances []domain.Distance) error {
	if c.Degraded() {
		return c.fallback.Store(ctx, distances)
	}

	err := c.primary.Store(ctx, distances)
	if err == nil {
		c.mu.Lock()
		c.failures = 0
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.failures++
	tripped := !c.degraded && c.failures >= c.threshold
	if tripped {
		c.degraded = true
	}
	c.mu.Unlock()

	log.Printf("distance cache primary store failed err=%v", err)
	if tripped {
		// Operational alert: new distances are no longer persisted.
		log.Printf("ALERT distance cache degraded after %d consecutive write failures, switching to in-memory store", c.threshold)
	}

	// Keep the values for this process even while the primary is down.
	return c.fallback.Store(ctx, distances)
}
