package domain

import "fmt"

// Currency is a display currency with a fixed exchange rate against the base
// currency (UAH). Rates are a static business table, not a market feed.
type Currency string

const (
	UAH Currency = "UAH"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

var currencyRates = map[Currency]float64{
	UAH: 1.0,
	USD: 41.0,
	EUR: 45.0,
}

// Display priority when routes cross currency zones: USD > EUR > UAH.
var currencyPriority = map[Currency]int{
	USD: 3,
	EUR: 2,
	UAH: 1,
}

// ParseCurrency validates an ISO code against the rate table.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := currencyRates[c]; !ok {
		return "", fmt.Errorf("currency not set: %s", code)
	}
	return c, nil
}

// Rate is the fixed exchange rate used to convert base prices.
func (c Currency) Rate() float64 { return currencyRates[c] }

// PreferredCurrency picks the display currency for a route priced across two
// currency zones. The first argument wins ties.
func PreferredCurrency(a, b Currency) Currency {
	if currencyPriority[a] >= currencyPriority[b] {
		return a
	}
	return b
}
