package ports

import (
	"context"
	"route-cost-service/internal/domain"
)

// DistanceCache is a persistent key-value store of previously resolved
// distances, keyed by the rounded (from, to) coordinate pair.
type DistanceCache interface {
	// Lookup returns the cached distance in meters for the pair. A miss is
	// reported through the bool, never as a zero value.
	Lookup(ctx context.Context, from, to domain.GeoPoint) (meters int, ok bool, err error)

	// Store writes resolved distances. Writes are idempotent: storing the
	// same pair twice must not create duplicates or raise, so concurrent
	// requests resolving the same pair can both write safely.
	Store(ctx context.Context, distances []domain.Distance) error
}
