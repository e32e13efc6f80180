package currency

// ConvertWithRates converts an amount using two rates quoted against a shared
// third base currency. fromRate must be non-zero; callers are expected to
// guard against a zero divisor.
func ConvertWithRates(amount, fromRate, toRate float64) float64 {
	return amount / fromRate * toRate
}
