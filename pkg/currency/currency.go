// Package currency renders money amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCode = "BDT"

var symbols = map[string]string{
	"BDT": "Tk",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"USD": "$",
}

// Format rounds amount half away from zero to two decimals, e.g.
// "Tk 1234.50 BDT". Codes without a known symbol render as "1234.50 XYZ".
func Format(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCode
	}

	fixed := amount.StringFixed(2)

	if symbol, ok := symbols[code]; ok {
		return symbol + " " + fixed + " " + code
	}

	return fixed + " " + code
}
