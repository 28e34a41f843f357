package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/ports"
	"slices"
	"sync"
)

// ErrZeroDistanceResults reports that no pair in a matrix call could be
// resolved after consulting both the cache and the provider. Callers treat it
// as "no viable route", distinct from internal failures.
var ErrZeroDistanceResults = errors.New("zero distance results")

const (
	earthRadiusMeters = 6371000.0

	// Straight-line to road-distance multiplier, calibrated against provider
	// data so offline estimates stay comparable with production distances.
	roadCurvatureFactor = 1.33

	// Provider caps on distinct origins/destinations per matrix call. The
	// larger dimension applies while the total pair count stays within the
	// per-request element limit.
	batchDimLarge    = 25
	batchDimSmall    = 10
	batchElementsCap = 100

	maxConcurrentBatches = 5
)

// Resolver turns (from, to) point pairs into resolved road distances. Matrix
// is authoritative (cache, then provider); Haversine is a pure offline
// approximation used as a fallback and as a training-data source.
type Resolver struct {
	cache    ports.DistanceCache
	provider ports.MatrixProvider
}

func NewResolver(cache ports.DistanceCache, provider ports.MatrixProvider) *Resolver {
	return &Resolver{cache: cache, provider: provider}
}

// crossPairs builds unresolved placeholders for every distinct (from, to)
// pair, excluding pairs whose endpoints coincide under the rounding rule.
func crossPairs(froms, tos []domain.GeoPoint) []domain.Distance {
	seen := make(map[domain.PairKey]struct{}, len(froms)*len(tos))
	pairs := make([]domain.Distance, 0, len(froms)*len(tos))
	for _, from := range froms {
		for _, to := range tos {
			if from.SamePoint(to) {
				continue
			}
			key := domain.NewPairKey(from, to)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, domain.NewDistance(from, to))
		}
	}
	return pairs
}

// Matrix resolves every distinct (from, to) pair through the cache and, for
// misses, the external matrix provider. Partial success is acceptable:
// unresolved pairs are logged and dropped, and only a fully empty result is
// an error. Results are sorted ascending so callers can rely on index 0
// being the nearest pair.
func (r *Resolver) Matrix(ctx context.Context, froms, tos []domain.GeoPoint) ([]domain.Distance, error) {
	pairs := crossPairs(froms, tos)

	resolved := make([]domain.Distance, 0, len(pairs))
	pending := make([]domain.Distance, 0, len(pairs))

	for _, p := range pairs {
		if r.cache != nil {
			meters, ok, err := r.cache.Lookup(ctx, p.From, p.To)
			if err != nil {
				log.Printf("distance cache lookup failed pair=%v->%v err=%v", p.From, p.To, err)
			} else if ok {
				p.Resolve(meters)
				resolved = append(resolved, p)
				continue
			}
		}
		pending = append(pending, p)
	}

	if len(pending) > 0 {
		fetched := r.fetchBatches(ctx, pending)

		fresh := make([]domain.Distance, 0, len(pending))
		for i := range pending {
			meters, ok := fetched[pending[i].Key()]
			if !ok {
				continue
			}
			pending[i].Resolve(meters)
			resolved = append(resolved, pending[i])
			fresh = append(fresh, pending[i])
		}

		if r.cache != nil && len(fresh) > 0 {
			// A failed write is not fatal; the values stay usable in-memory
			// for the current request.
			if err := r.cache.Store(ctx, fresh); err != nil {
				log.Printf("distance cache write failed count=%d err=%v", len(fresh), err)
			}
		}

		if unresolved := len(pending) - len(fresh); unresolved > 0 {
			log.Printf("matrix left %d of %d pairs unresolved", unresolved, len(pairs))
		}
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("matrix resolve %d pairs: %w", len(pairs), ErrZeroDistanceResults)
	}

	slices.SortFunc(resolved, func(a, b domain.Distance) int { return a.Compare(b) })
	return resolved, nil
}

// Haversine resolves every distinct (from, to) pair with the great-circle
// formula scaled by the road-curvature factor. Pure math: no network, no
// cache, always succeeds. Results are sorted ascending like Matrix results.
func (r *Resolver) Haversine(froms, tos []domain.GeoPoint) []domain.Distance {
	pairs := crossPairs(froms, tos)
	for i := range pairs {
		meters := haversineMeters(pairs[i].From, pairs[i].To) * roadCurvatureFactor
		pairs[i].Resolve(int(math.Round(meters)))
	}
	slices.SortFunc(pairs, func(a, b domain.Distance) int { return a.Compare(b) })
	return pairs
}

func haversineMeters(a, b domain.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// batchDim picks the per-call origin/destination cap for a given total pair
// count, honoring the provider's element limit.
func batchDim(totalPairs int) int {
	if totalPairs <= batchElementsCap {
		return batchDimLarge
	}
	return batchDimSmall
}

func uniquePoints(pending []domain.Distance, pick func(domain.Distance) domain.GeoPoint) []domain.GeoPoint {
	seen := make(map[domain.GeoPoint]struct{}, len(pending))
	out := make([]domain.GeoPoint, 0, len(pending))
	for _, d := range pending {
		p := pick(d)
		key := p.Rounded()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

type batchResult struct {
	origins      []domain.GeoPoint
	destinations []domain.GeoPoint
	matrix       [][]ports.MatrixElement
	err          error
}

// fetchBatches queries the provider for all pending pairs, chunking origins
// and destinations under the provider cap. Chunk calls are independent and
// read-only, so they run concurrently; each response is matched back to its
// query pairs positionally, which requires the origin/destination order to
// be preserved between request construction and response parsing.
func (r *Resolver) fetchBatches(ctx context.Context, pending []domain.Distance) map[domain.PairKey]int {
	out := make(map[domain.PairKey]int, len(pending))
	if r.provider == nil {
		return out
	}

	origins := uniquePoints(pending, func(d domain.Distance) domain.GeoPoint { return d.From })
	destinations := uniquePoints(pending, func(d domain.Distance) domain.GeoPoint { return d.To })
	dim := batchDim(len(origins) * len(destinations))

	sem := make(chan struct{}, maxConcurrentBatches)
	resultsCh := make(chan batchResult, (len(origins)/dim+1)*(len(destinations)/dim+1))
	var wg sync.WaitGroup

	for oStart := 0; oStart < len(origins); oStart += dim {
		oEnd := min(oStart+dim, len(origins))
		for dStart := 0; dStart < len(destinations); dStart += dim {
			dEnd := min(dStart+dim, len(destinations))

			wg.Add(1)
			go func(chunkOrigins, chunkDests []domain.GeoPoint) {
				sem <- struct{}{}
				defer wg.Done()
				defer func() { <-sem }()

				matrix, err := r.provider.Query(ctx, chunkOrigins, chunkDests)
				resultsCh <- batchResult{
					origins:      chunkOrigins,
					destinations: chunkDests,
					matrix:       matrix,
					err:          err,
				}
			}(origins[oStart:oEnd], destinations[dStart:dEnd])
		}
	}

	wg.Wait()
	close(resultsCh)

	for res := range resultsCh {
		if res.err != nil {
			// Transport failure after the provider's own retry budget: the
			// affected pairs simply stay unresolved.
			log.Printf("matrix batch failed origins=%d destinations=%d err=%v",
				len(res.origins), len(res.destinations), res.err)
			continue
		}
		if len(res.matrix) != len(res.origins) {
			log.Printf("matrix batch row count mismatch: got %d rows for %d origins",
				len(res.matrix), len(res.origins))
			continue
		}
		for i, row := range res.matrix {
			if len(row) != len(res.destinations) {
				log.Printf("matrix batch element count mismatch: got %d elements for %d destinations",
					len(row), len(res.destinations))
				continue
			}
			for j, element := range row {
				if element.Status != ports.StatusOK {
					log.Printf("matrix pair unroutable from=%v to=%v status=%s",
						res.origins[i], res.destinations[j], element.Status)
					continue
				}
				out[domain.NewPairKey(res.origins[i], res.destinations[j])] = element.Meters
			}
		}
	}

	return out
}
