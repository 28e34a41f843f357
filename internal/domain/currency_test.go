package domain

import "testing"

func TestPreferredCurrency(t *testing.T) {
	cases := []struct {
		a, b, want Currency
	}{
		{USD, UAH, USD},
		{UAH, USD, USD},
		{EUR, UAH, EUR},
		{USD, EUR, USD},
		{EUR, EUR, EUR},
		{UAH, UAH, UAH},
	}

	for _, c := range cases {
		if got := PreferredCurrency(c.a, c.b); got != c.want {
			t.Errorf("PreferredCurrency(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestParseCurrencyRejectsUnknown(t *testing.T) {
	if _, err := ParseCurrency("GBP"); err == nil {
		t.Fatal("expected error for currency outside the rate table")
	}

	c, err := ParseCurrency("USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Rate() != 41.0 {
		t.Fatalf("USD rate = %v, want 41.0", c.Rate())
	}
}
