package cache

import (
	"context"
	"errors"
	"fmt"
	"route-cost-service/internal/domain"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisDistanceCache is a Redis-backed persistent distance cache. Keys are
// built from the rounded (from, to) coordinates, so two requests for the same
// pair always hit the same entry regardless of sub-precision jitter. SET is
// naturally idempotent, which makes concurrent duplicate writes safe.
type RedisDistanceCache struct {
	client *redis.Client
}

func NewRedisDistanceCache(client *redis.Client) *RedisDistanceCache {
	return &RedisDistanceCache{client: client}
}

func pairCacheKey(from, to domain.GeoPoint) string {
	rf, rt := from.Rounded(), to.Rounded()
	return fmt.Sprintf("dist:%v,%v:%v,%v", rf.Lat, rf.Lng, rt.Lat, rt.Lng)
}

// Lookup fetches the cached distance for a pair. A missing key is a miss,
// never a zero value.
func (c *RedisDistanceCache) Lookup(ctx context.Context, from, to domain.GeoPoint) (int, bool, error) {
	if c.client == nil {
		return 0, false, errors.New("distance cache: redis client is nil")
	}

	val, err := c.client.Get(ctx, pairCacheKey(from, to)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("distance cache lookup: %w", err)
	}

	meters, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("distance cache lookup: corrupt value %q: %w", val, err)
	}
	return meters, true, nil
}

// Store writes resolved distances in one pipeline round trip.
func (c *RedisDistanceCache) Store(ctx context.Context, distances []domain.Distance) error {
	if c.client == nil {
		return errors.New("distance cache: redis client is nil")
	}
	if len(distances) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for _, d := range distances {
		pipe.Set(ctx, pairCacheKey(d.From, d.To), strconv.Itoa(d.Meters()), 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("distance cache store %d pairs: %w", len(distances), err)
	}
	return nil
}
