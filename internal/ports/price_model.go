package ports

// PriceModel is the learned price regressor, trained offline and loaded from
// a persisted artifact at startup. It is opaque to the pricing code: given
// stable depot and vehicle identifiers it returns a price per kilometer in
// the base currency.
type PriceModel interface {
	Predict(fromDepotID, toDepotID, vehicleID int) (float64, error)
}
