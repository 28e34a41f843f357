package domain

// Vehicle describes one truck type offered to customers. The catalog is
// loaded once at startup; IDs are stable and used by the learned price model.
type Vehicle struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	LocalizedName  string  `json:"name_ua"`
	PricePerKm     float64 `json:"price"`
	Order          int     `json:"order"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	WeightCapacity float64 `json:"weight_capacity"`
	SpaceCapacity  float64 `json:"space_capacity"`
	Cargoes        string  `json:"cargoes_possible"`
	CargoesLocal   string  `json:"cargoes_possible_ua"`
	PricePerTon    bool    `json:"price_per_ton"`
	Picture        string  `json:"picture"`
}

// DisplayName returns the vehicle name for the given locale.
func (v *Vehicle) DisplayName(locale Locale) string {
	if locale.IsUkrainian() && v.LocalizedName != "" {
		return v.LocalizedName
	}
	return v.Name
}
