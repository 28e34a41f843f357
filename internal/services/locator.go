package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-cost-service/internal/catalog"
	"route-cost-service/internal/domain"
)

// MatrixResolver is the slice of Resolver the locator depends on.
type MatrixResolver interface {
	Matrix(ctx context.Context, froms, tos []domain.GeoPoint) ([]domain.Distance, error)
}

// Locator brackets a trip with depots: the nearest depot to the origin and
// the nearest depot to the destination.
type Locator struct {
	park     *catalog.DepotPark
	resolver MatrixResolver
}

func NewLocator(park *catalog.DepotPark, resolver MatrixResolver) *Locator {
	return &Locator{park: park, resolver: resolver}
}

// PlanRoute picks the bracketing depots for a trip. Each side first considers
// only depots in the place's country; when that region has no depots or none
// of them yields a distance, selection retries over the whole catalog, so a
// depot is always found while the catalog is non-empty.
func (l *Locator) PlanRoute(ctx context.Context, origin, destination domain.Place) (domain.Route, error) {
	start, err := l.nearestDepot(ctx, origin, true)
	if err != nil {
		return domain.Route{}, fmt.Errorf("plan route: starting depot for %q: %w", origin.Name, err)
	}

	end, err := l.nearestDepot(ctx, destination, false)
	if err != nil {
		return domain.Route{}, fmt.Errorf("plan route: ending depot for %q: %w", destination.Name, err)
	}

	return domain.Route{
		StartDepot:  start,
		Origin:      origin,
		Destination: destination,
		EndDepot:    end,
	}, nil
}

// nearestDepot selects the closest depot to a place. fromDepots controls leg
// direction: true measures depot->place (departure side), false measures
// place->depot (arrival side).
func (l *Locator) nearestDepot(ctx context.Context, place domain.Place, fromDepots bool) (*domain.Depot, error) {
	candidates, err := l.park.FilterByState(place.CountryCode)
	if err == nil {
		depot, selErr := l.closest(ctx, candidates, place, fromDepots)
		if selErr == nil {
			return depot, nil
		}
		if !errors.Is(selErr, ErrZeroDistanceResults) {
			return nil, selErr
		}
		err = selErr
	} else if !errors.Is(err, catalog.ErrNoDepots) {
		return nil, err
	}

	// Region-filtered selection found nothing; recovered locally.
	log.Printf("depot selection falling back to full catalog place=%q region=%q reason=%v",
		place.Name, place.CountryCode, err)
	return l.closest(ctx, l.park.All(), place, fromDepots)
}

// closest returns the candidate with the smallest resolved distance to the
// place. Candidates are scanned in catalog order and only a strictly smaller
// distance displaces the current best, so ties stay deterministic.
func (l *Locator) closest(ctx context.Context, depots []*domain.Depot, place domain.Place, fromDepots bool) (*domain.Depot, error) {
	points := make([]domain.GeoPoint, 0, len(depots))
	for _, d := range depots {
		// A depot coinciding with the place is trivially nearest.
		if d.SamePoint(place.GeoPoint) {
			return d, nil
		}
		points = append(points, d.GeoPoint)
	}

	var (
		dists []domain.Distance
		err   error
	)
	if fromDepots {
		dists, err = l.resolver.Matrix(ctx, points, []domain.GeoPoint{place.GeoPoint})
	} else {
		dists, err = l.resolver.Matrix(ctx, []domain.GeoPoint{place.GeoPoint}, points)
	}
	if err != nil {
		return nil, fmt.Errorf("closest depot to %q: %w", place.Name, err)
	}

	byKey := make(map[domain.PairKey]int, len(dists))
	for _, d := range dists {
		byKey[d.Key()] = d.Meters()
	}

	var best *domain.Depot
	bestMeters := 0
	for _, depot := range depots {
		var key domain.PairKey
		if fromDepots {
			key = domain.NewPairKey(depot.GeoPoint, place.GeoPoint)
		} else {
			key = domain.NewPairKey(place.GeoPoint, depot.GeoPoint)
		}

		meters, ok := byKey[key]
		if !ok {
			continue
		}
		if best == nil || meters < bestMeters {
			best = depot
			bestMeters = meters
		}
	}

	if best == nil {
		return nil, fmt.Errorf("closest depot to %q: %w", place.Name, ErrZeroDistanceResults)
	}
	return best, nil
}
