package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"route-cost-service/internal/compose"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/obs"
	"time"
)

// Request is one priced-trip query: where from, where to, with what truck.
type Request struct {
	Origin      domain.Place
	Destination domain.Place
	Vehicle     *domain.Vehicle
	Locale      domain.Locale
}

// Calculator composes the locator, the distance resolver and a price
// estimator into the single entry point request handlers call.
type Calculator struct {
	locator   *Locator
	resolver  MatrixResolver
	estimator PriceEstimator
}

func NewCalculator(locator *Locator, resolver MatrixResolver, estimator PriceEstimator) *Calculator {
	return &Calculator{locator: locator, resolver: resolver, estimator: estimator}
}

// Process runs the full pipeline: bracket the trip with depots, sum the three
// route legs, derive the per-kilometer price and package a currency-adjusted,
// human-rounded cost breakdown. No retries happen at this layer; transient
// provider failures are absorbed inside the resolver.
func (c *Calculator) Process(ctx context.Context, req Request) (_ *domain.CalculationResult, err error) {
	defer obs.Time(ctx, "calculator.Process")(&err)

	route, err := c.locator.PlanRoute(ctx, req.Origin, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	points := route.Points()
	totalMeters := 0
	// Each leg resolves independently to keep the resolver's pairwise
	// contract simple; a 4-point batch would pull in unrelated pairs.
	for i := 0; i+1 < len(points); i++ {
		meters, err := c.legMeters(ctx, points[i], points[i+1])
		if err != nil {
			return nil, fmt.Errorf("process: leg %d: %w", i+1, err)
		}
		totalMeters += meters
	}

	pricePerKm, err := c.estimator.PricePerKm(route.StartDepot, route.EndDepot, req.Vehicle, totalMeters)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	cost := float64(totalMeters) / 1000 * pricePerKm

	currency := domain.PreferredCurrency(route.StartDepot.Currency(), route.EndDepot.Currency())
	rate := currency.Rate()
	pricePerKm /= rate
	cost = compose.RoundCost(cost / rate)

	distanceFactor, err := DistanceRatio(float64(totalMeters))
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	visiblePoints, visibleNames := compose.VisibleRoute(points, route.Names())

	result := &domain.CalculationResult{
		CalculationID: calculationID(req),

		PlaceAName:     req.Origin.Name,
		PlaceALongName: req.Origin.LongName,
		PlaceBName:     req.Destination.Name,
		PlaceBLongName: req.Destination.LongName,

		MapLink:      compose.MapURL(req.Origin.GeoPoint, req.Destination.GeoPoint),
		PlaceChain:   compose.PlaceChain(visibleNames...),
		ChainMapLink: compose.MapURL(visiblePoints...),

		DistanceKm: float64(totalMeters) / 1000,

		VehicleID:       req.Vehicle.ID,
		VehicleName:     req.Vehicle.DisplayName(req.Locale),
		VehicleCapacity: req.Vehicle.WeightCapacity,

		Price:         compose.FormatCost(cost),
		PricePerKm:    pricePerKm,
		Cost:          cost,
		IsPricePerTon: req.Vehicle.PricePerTon,
		Currency:      currency,
		CurrencyRate:  rate,

		FactorVehicle:   req.Vehicle.PricePerKm,
		FactorDeparture: route.StartDepot.DepartureRatio(),
		FactorArrival:   route.EndDepot.ArrivalRatio(),
		FactorDistance:  distanceFactor,

		Locale: req.Locale,
	}

	if req.Vehicle.WeightCapacity > 0 {
		result.PricePerTon = compose.FormatCost(compose.RoundCost(cost / req.Vehicle.WeightCapacity))
	}

	return result, nil
}

// legMeters resolves one consecutive-pair leg. Coinciding endpoints (a depot
// sitting exactly at the origin) contribute zero.
func (c *Calculator) legMeters(ctx context.Context, from, to domain.GeoPoint) (int, error) {
	if from.SamePoint(to) {
		return 0, nil
	}
	dists, err := c.resolver.Matrix(ctx, []domain.GeoPoint{from}, []domain.GeoPoint{to})
	if err != nil {
		return 0, err
	}
	return dists[0].Meters(), nil
}

// calculationID derives a stable audit identifier for one processed request.
func calculationID(req Request) string {
	h := sha1.New()
	fmt.Fprintf(h, "%v|%v|%d|%d",
		req.Origin.Rounded(), req.Destination.Rounded(), req.Vehicle.ID, time.Now().UnixNano())
	return hex.EncodeToString(h.Sum(nil))
}
