package currency

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount for display. Fiat codes get exactly two
// fractional digits with thousands grouping. Crypto codes get up to eight
// fractional digits (trailing zeros trimmed), and amounts below 0.0001 in
// magnitude switch to exponential notation so the output is not all zeros.
func Format(amount float64, code string) string {
	if IsCrypto(code) {
		if amount != 0 && math.Abs(amount) < 0.0001 {
			return strconv.FormatFloat(amount, 'e', 4, 64)
		}
		return trimFractionZeros(printer.Sprintf("%.8f", amount))
	}
	return printer.Sprintf("%.2f", amount)
}

func trimFractionZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
