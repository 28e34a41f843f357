package domain

// State holds per-country pricing defaults that depots fall back to when
// they carry no ratio of their own. Loaded once at startup, read-only after.
type State struct {
	ISOCode        string
	CurrencyCode   Currency
	Name           string
	DepartureRatio float64
	ArrivalRatio   float64
}
