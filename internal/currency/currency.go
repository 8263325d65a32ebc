// Package currency provides currency conversion and display formatting for
// computed trip amounts. It is a helper around the financial engine's
// outputs, not part of the engine itself.
//
// Rates are a static USD-relative snapshot; live rate fetching is handled
// upstream (and is out of scope here). Unknown codes degrade gracefully:
// conversion returns the amount unchanged rather than failing.
package currency

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
)

// usdRates maps currency codes to their value relative to one US dollar.
var usdRates = map[string]float64{
	"USD": 1.00,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"CAD": 1.36,
	"AUD": 1.53,
	"CHF": 0.88,
	"CNY": 7.24,
	"INR": 83.12,
	"MXN": 17.15,
	"BRL": 4.97,
	"ZAR": 18.65,
	"SGD": 1.35,
	"NZD": 1.67,
	"HKD": 7.83,
	"KRW": 1320.50,
	"THB": 35.60,
	"MYR": 4.68,
	"PHP": 56.30,
	"IDR": 15678.00,
	"AED": 3.67,
	"SAR": 3.75,
	"TRY": 32.15,
	"RUB": 92.50,
	"PLN": 4.02,
	"SEK": 10.58,
	"NOK": 10.85,
	"DKK": 6.86,
}

// Convert converts amount between two currency codes via USD.
// Same-currency conversions and unsupported codes return the amount
// unchanged — the caller shows the original figure rather than nothing.
func Convert(amount float64, from, to string) float64 {
	if amount == 0 {
		return 0
	}

	from = normalize(from)
	to = normalize(to)
	if from == to {
		return amount
	}

	fromRate, okFrom := usdRates[from]
	toRate, okTo := usdRates[to]
	if !okFrom || !okTo {
		return amount
	}

	return amount / fromRate * toRate
}

// Supported reports whether the code is in the rate table.
func Supported(code string) bool {
	_, ok := usdRates[normalize(code)]
	return ok
}

// Rates returns the full rate table keyed by currency code.
// The returned map is a copy; callers may modify it freely.
func Rates() map[string]float64 {
	out := make(map[string]float64, len(usdRates))
	for k, v := range usdRates {
		out[k] = v
	}
	return out
}

// Codes returns all supported currency codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(usdRates))
	for k := range usdRates {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// Format renders an amount as a display string for the given currency,
// e.g. Format(1234.5, "USD") -> "$1,234.50". Codes go-money does not know
// fall back to "CODE 1234.50".
func Format(amount float64, code string) string {
	code = normalize(code)
	if code == "" {
		code = "USD"
	}

	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}

	minor := int64(math.Round(amount * math.Pow10(cur.Fraction)))
	return money.New(minor, code).Display()
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
