package domain

import "math"

// coordPrecision is the number of decimal places two coordinates may differ
// in and still be treated as the same point (~11cm). Cache keys, pair
// deduplication and matrix-response matching all rely on this rule.
const coordPrecision = 6

// Immutable geographic coordinates (latitude, longitude).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func roundCoord(v float64) float64 {
	shift := math.Pow(10, coordPrecision)
	return math.Round(v*shift) / shift
}

// Rounded returns the point with both coordinates rounded to the shared
// precision. Rounded points are comparable with == and usable as map keys.
func (p GeoPoint) Rounded() GeoPoint {
	return GeoPoint{Lat: roundCoord(p.Lat), Lng: roundCoord(p.Lng)}
}

// SamePoint reports whether two points coincide under the rounding rule.
func (p GeoPoint) SamePoint(other GeoPoint) bool {
	return p.Rounded() == other.Rounded()
}

// PairKey identifies a directed (from, to) coordinate pair. Both endpoints
// are stored rounded so keys built from request points and keys built from
// provider responses always agree.
type PairKey struct {
	From GeoPoint
	To   GeoPoint
}

func NewPairKey(from, to GeoPoint) PairKey {
	return PairKey{From: from.Rounded(), To: to.Rounded()}
}
