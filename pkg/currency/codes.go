package currency

import "strings"

// cryptoCodes lists assets whose unit value is low enough that two fractional
// digits would lose most of the precision users care about.
var cryptoCodes = map[string]struct{}{
	"BTC":  {},
	"ETH":  {},
	"XRP":  {},
	"LTC":  {},
	"BCH":  {},
	"DOGE": {},
	"ADA":  {},
	"DOT":  {},
	"SOL":  {},
}

// symbols maps well-known ISO 4217 codes (plus a few crypto tickers) to their
// conventional display glyph.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"RUB": "₽",
	"TRY": "₺",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
	"NZD": "NZ$",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"CZK": "Kč",
	"HUF": "Ft",
	"THB": "฿",
	"VND": "₫",
	"PHP": "₱",
	"IDR": "Rp",
	"MYR": "RM",
	"ILS": "₪",
	"NGN": "₦",
	"UAH": "₴",
	"MXN": "$",
	"SGD": "S$",
	"HKD": "HK$",
	"ZAR": "R",
	"EGP": "E£",
	"AED": "د.إ",
	"SAR": "﷼",
	"KWD": "د.ك",
	"BTC": "₿",
	"ETH": "Ξ",
	"DOGE": "Ð",
}

// Symbol returns the conventional glyph for a currency code. Codes without a
// known symbol fall back to the upper-cased code itself.
func Symbol(code string) string {
	code = strings.ToUpper(code)
	if sym, ok := symbols[code]; ok {
		return sym
	}
	return code
}

// IsCrypto reports whether the code is one of the known crypto assets that
// receive extended fractional precision when formatted.
func IsCrypto(code string) bool {
	_, ok := cryptoCodes[strings.ToUpper(code)]
	return ok
}
