package domain

import "fmt"

// Distance is one directed segment between two points. It begins unresolved
// and transitions exactly once to resolved when a meter value is assigned.
//
// Reading Meters on an unresolved Distance is a contract violation in the
// calling code (a lookup happened before resolution finished) and panics
// rather than silently returning zero.
type Distance struct {
	From GeoPoint
	To   GeoPoint

	meters   int
	resolved bool
}

// NewDistance creates an unresolved placeholder for the (from, to) pair.
func NewDistance(from, to GeoPoint) Distance {
	return Distance{From: from, To: to}
}

// ResolvedDistance creates a Distance that already carries a value, e.g. one
// built from a cache hit or a provider response.
func ResolvedDistance(from, to GeoPoint, meters int) Distance {
	return Distance{From: from, To: to, meters: meters, resolved: true}
}

// Resolved reports whether a meter value has been assigned.
func (d Distance) Resolved() bool { return d.resolved }

// Meters returns the resolved distance in meters. Panics when unresolved.
func (d Distance) Meters() int {
	if !d.resolved {
		panic(fmt.Sprintf("distance %v -> %v read before resolution", d.From, d.To))
	}
	return d.meters
}

// Resolve assigns the meter value. A Distance resolves exactly once; a second
// assignment is a call-ordering bug and panics.
func (d *Distance) Resolve(meters int) {
	if d.resolved {
		panic(fmt.Sprintf("distance %v -> %v resolved twice", d.From, d.To))
	}
	d.meters = meters
	d.resolved = true
}

// Key identifies the pair independent of resolution state, letting unresolved
// placeholders be matched against resolved results fetched elsewhere.
func (d Distance) Key() PairKey {
	return NewPairKey(d.From, d.To)
}

// Compare orders two resolved Distances by meter value ascending. Comparing
// an unresolved Distance panics via Meters.
func (d Distance) Compare(other Distance) int {
	switch {
	case d.Meters() < other.Meters():
		return -1
	case d.Meters() > other.Meters():
		return 1
	default:
		return 0
	}
}
