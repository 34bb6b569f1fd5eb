// Package fees converts Transfermarkt-style free-text transfer fees to
// numeric EUR values. Parsing is total: anything that cannot be understood is
// a zero fee, never an error.
package fees

import (
	"strings"

	"github.com/shopspring/decimal"
)

// nonCashMarkers zero a fee when they appear anywhere in the lower-cased
// text. The bare "-" entry is deliberately greedy: any fee string containing
// a hyphen (including as a minus sign or separator) collapses to zero.
var nonCashMarkers = []string{
	"free",
	"loan",
	"end of loan",
	"?-option",
	"option to buy",
	"swap",
	"?",
	"-",
}

// currencyTokens are stripped before numeric parsing.
var currencyTokens = []string{"€", "eur", "fee"}

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Parse converts a transfer_fee string to EUR. Missing values, non-cash
// markers (free, loan, swap, ...) and unparsable remainders all return zero.
// Supports "10m", "500k", "€35m", plain numerics with thousands separators.
func Parse(value string) decimal.Decimal {
	d, _ := parse(value)
	return d
}

// ParseChecked is Parse plus a flag that is false only when a non-empty value
// was discarded because its numeric remainder failed to parse (as opposed to
// being empty or a recognized non-cash marker). Callers use it for
// data-quality accounting; the fee itself is zero either way.
func ParseChecked(value string) (decimal.Decimal, bool) {
	return parse(value)
}

func parse(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, true
	}

	lower := strings.ToLower(s)
	for _, m := range nonCashMarkers {
		if strings.Contains(lower, m) {
			return decimal.Zero, true
		}
	}

	for _, token := range currencyTokens {
		lower = strings.ReplaceAll(lower, token, "")
	}
	lower = strings.TrimSpace(strings.ReplaceAll(lower, ",", ""))

	multiplier := decimal.NewFromInt(1)
	switch {
	case strings.HasSuffix(lower, "m"):
		multiplier = million
		lower = strings.TrimSpace(strings.TrimSuffix(lower, "m"))
	case strings.HasSuffix(lower, "k"):
		multiplier = thousand
		lower = strings.TrimSpace(strings.TrimSuffix(lower, "k"))
	}

	d, err := decimal.NewFromString(lower)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Mul(multiplier), true
}
