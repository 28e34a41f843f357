package domain

// Locale selects display language for customer-facing strings.
type Locale string

const (
	LocaleUkrainian Locale = "uk_UA"
	LocaleRussian   Locale = "ru_UA"
)

func (l Locale) IsUkrainian() bool { return l == LocaleUkrainian }
