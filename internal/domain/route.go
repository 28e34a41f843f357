package domain

// Route is a planned trip bracketed by depots: the truck departs from
// StartDepot, picks up at Origin, delivers to Destination and returns to
// EndDepot. No road geometry is implied beyond these straight hops.
type Route struct {
	StartDepot  *Depot
	Origin      Place
	Destination Place
	EndDepot    *Depot
}

// Points returns the four route anchors in travel order.
func (r Route) Points() []GeoPoint {
	return []GeoPoint{
		r.StartDepot.GeoPoint,
		r.Origin.GeoPoint,
		r.Destination.GeoPoint,
		r.EndDepot.GeoPoint,
	}
}

// Names returns the display names of the route anchors in travel order.
func (r Route) Names() []string {
	return []string{
		r.StartDepot.Name,
		r.Origin.Name,
		r.Destination.Name,
		r.EndDepot.Name,
	}
}
