// Package money formats decimal currency amounts for display.
// Amounts are assumed to be in a two-decimal currency.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount as "$1,234.56". Negative amounts keep the sign
// in front of the dollar symbol: "-$12.00".
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + "$" + group(intPart) + "." + fracPart
}

// FormatPercent renders a fractional rate as a whole percentage, "0.16" -> "16%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
