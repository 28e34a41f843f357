package domain

// Place is an arbitrary origin or destination supplied by a caller:
// coordinates plus display names and the country the point lies in.
type Place struct {
	GeoPoint
	Name        string
	LongName    string
	CountryCode string
}

func NewPlace(lat, lng float64, name, longName, countryCode string) Place {
	return Place{
		GeoPoint:    GeoPoint{Lat: lat, Lng: lng},
		Name:        name,
		LongName:    longName,
		CountryCode: countryCode,
	}
}
