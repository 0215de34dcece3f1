// Package format renders report numbers the way the seller dashboard shows them
// (en-US grouping, USD currency, signed percentages).
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NotAvailable is rendered for undefined or non-finite values.
const NotAvailable = "N/A"

// Number formats counts and ratios with thousands grouping and at most two
// fraction digits: 1234 -> "1,234", 1234.567 -> "1,234.57".
func Number(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}

	d := decimal.NewFromFloat(v).Round(2)
	return signed(d, group(d.Abs().String()))
}

// Currency formats a USD amount with exactly two decimals: 3750 -> "$3,750.00".
func Currency(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}

	d := decimal.NewFromFloat(v).Round(2)
	return signed(d, "$"+group(d.Abs().StringFixed(2)))
}

// Percent formats a percentage delta with an explicit sign and one decimal.
// nil means the change is undefined and renders as N/A.
func Percent(v *float64) string {
	if v == nil || !isFinite(*v) {
		return NotAvailable
	}

	// the sign follows the unrounded value: 0.04 -> "+0.0%", -0.04 -> "-0.0%"
	d := decimal.NewFromFloat(*v)
	out := d.StringFixed(1) + "%"
	switch {
	case d.IsPositive():
		return "+" + out
	case d.IsNegative() && d.Round(1).IsZero():
		return "-" + out
	}
	return out
}

func signed(d decimal.Decimal, s string) string {
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// group inserts thousands separators in the integer part of an unsigned
// decimal string.
func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}

	out := humanize.Comma(n)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
