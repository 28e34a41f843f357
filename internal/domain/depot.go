package domain

// Depot is an operator-owned staging point used as the start or end anchor of
// every priced route. A depot may override its state's pricing ratios; the
// effective values fall back to the owning State when unset.
//
// The catalog is an ordered list and a depot's ID is its position-independent
// identity. The learned price model keys its one-hot input on these IDs, so
// they must stay stable across catalog edits.
type Depot struct {
	GeoPoint
	ID        int
	Name      string
	StateCode string

	departureOverride *float64
	arrivalOverride   *float64
	state             *State
}

// NewDepot builds a depot bound to its owning state. Nil ratio overrides mean
// "inherit from the state".
func NewDepot(id int, lat, lng float64, name string, state *State, departureRatio, arrivalRatio *float64) *Depot {
	return &Depot{
		GeoPoint:          GeoPoint{Lat: lat, Lng: lng},
		ID:                id,
		Name:              name,
		StateCode:         state.ISOCode,
		departureOverride: departureRatio,
		arrivalOverride:   arrivalRatio,
		state:             state,
	}
}

// DepartureRatio is the effective departure pricing ratio: the depot's own
// value when set, the state default otherwise.
func (d *Depot) DepartureRatio() float64 {
	if d.departureOverride != nil {
		return *d.departureOverride
	}
	return d.state.DepartureRatio
}

// ArrivalRatio is the effective arrival pricing ratio.
func (d *Depot) ArrivalRatio() float64 {
	if d.arrivalOverride != nil {
		return *d.arrivalOverride
	}
	return d.state.ArrivalRatio
}

// Currency is inherited from the owning state.
func (d *Depot) Currency() Currency {
	return d.state.CurrencyCode
}

// State returns the owning state.
func (d *Depot) State() *State {
	return d.state
}
