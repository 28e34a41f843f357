package domain

// CalculationResult aggregates everything the caller needs to render a quote:
// place names, map links, distance, vehicle info, the rounded cost in the
// preferred currency and the individual pricing factors that produced it.
// The factors exist for auditability; customers never see them.
type CalculationResult struct {
	CalculationID string `json:"calculation_id"`

	PlaceAName     string `json:"place_a_name"`
	PlaceALongName string `json:"place_a_name_long"`
	PlaceBName     string `json:"place_b_name"`
	PlaceBLongName string `json:"place_b_name_long"`

	MapLink      string `json:"map_link"`
	PlaceChain   string `json:"place_chain"`
	ChainMapLink string `json:"chain_map_link"`

	DistanceKm float64 `json:"distance"`

	VehicleID       int     `json:"transport_id"`
	VehicleName     string  `json:"transport_name"`
	VehicleCapacity float64 `json:"transport_capacity"`

	// Price and PricePerTon are human formatted; Cost and PricePerKm stay
	// numeric for downstream consumers (audit log, training-sample intake).
	Price         string   `json:"price"`
	PricePerTon   string   `json:"price_per_ton"`
	PricePerKm    float64  `json:"price_per_km"`
	Cost          float64  `json:"cost"`
	IsPricePerTon bool     `json:"is_price_per_ton"`
	Currency      Currency `json:"currency"`
	CurrencyRate  float64  `json:"currency_rate"`

	FactorVehicle   float64 `json:"pfactor_vehicle"`
	FactorDeparture float64 `json:"pfactor_departure"`
	FactorArrival   float64 `json:"pfactor_arrival"`
	FactorDistance  float64 `json:"pfactor_distance"`

	Locale Locale `json:"locale"`
}
