package domain

// CurrencyList maps a lower-case currency code to its display name.
// It is an immutable snapshot of a single feed response.
type CurrencyList map[string]string

// RateTable maps a lower-case currency code to its exchange rate. All rates
// in one table are expressed relative to the same implicit base currency:
// a value is "units of target per 1 unit of base".
type RateTable map[string]float64
