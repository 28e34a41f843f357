package services

import (
	"errors"
	"fmt"
	"math"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/ports"
)

// PriceEstimator produces a price per kilometer for a depot-bracketed trip.
// The two implementations (closed-form formula and learned regressor) are
// interchangeable at the calculator's single call site, so strategies can be
// swapped by configuration or migrated gradually.
type PriceEstimator interface {
	PricePerKm(start, end *domain.Depot, vehicle *domain.Vehicle, distanceMeters int) (float64, error)
}

// Distance-decay curve weights, fit empirically against historical quotes.
// They must be preserved exactly: changing any of them silently changes every
// priced output and requires explicit business sign-off.
const (
	ratioWeightD = 0.900
	ratioWeightE = 0.009
	ratioWeightF = 0.870
	ratioWeightG = 0.150
	ratioWeightH = 0.700

	// Trips shorter than this are priced as if they were this long, keeping
	// the curve away from its over-steep short-haul region.
	minPricedDistanceMeters = 50000.0
)

// DistanceRatio is the monotonically decreasing pricing multiplier for a trip
// distance: short hauls cost more per kilometer than long hauls. The result
// is rounded to 3 decimals for numeric compatibility with historical quotes.
func DistanceRatio(distanceMeters float64) (float64, error) {
	if distanceMeters < 0 {
		return 0, errors.New("distance ratio: calculated distance is negative")
	}
	if distanceMeters < minPricedDistanceMeters {
		distanceMeters = minPricedDistanceMeters
	}
	kdist := distanceMeters / 1000.0
	ratio := ratioWeightD/(math.Log(ratioWeightE*kdist+ratioWeightF)+ratioWeightG) + ratioWeightH
	return math.Round(ratio*1000) / 1000, nil
}

// ConventionalEstimator prices analytically from the vehicle base rate, the
// depots' effective ratios and the distance-decay curve.
type ConventionalEstimator struct{}

func (ConventionalEstimator) PricePerKm(start, end *domain.Depot, vehicle *domain.Vehicle, distanceMeters int) (float64, error) {
	ratio, err := DistanceRatio(float64(distanceMeters))
	if err != nil {
		return 0, fmt.Errorf("conventional estimate: %w", err)
	}
	return vehicle.PricePerKm * start.DepartureRatio() * end.ArrivalRatio() * ratio, nil
}

// LearnedEstimator delegates to the trained price regressor, keyed by the
// stable depot and vehicle identifiers. The trip distance is not part of the
// model input: the depot pair already implies it.
type LearnedEstimator struct {
	Model ports.PriceModel
}

func (e LearnedEstimator) PricePerKm(start, end *domain.Depot, vehicle *domain.Vehicle, _ int) (float64, error) {
	price, err := e.Model.Predict(start.ID, end.ID, vehicle.ID)
	if err != nil {
		return 0, fmt.Errorf("learned estimate: %w", err)
	}
	return price, nil
}
