package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the naira symbol used across reports and emails.
const CurrencySymbol = "₦"

// FormatAmount renders an amount with the currency symbol, thousands
// separators and the given number of decimal places.
// Example: 1234567.5 with 2 decimals returns "₦1,234,567.50".
func FormatAmount(amount decimal.Decimal, decimals int32) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(decimals)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}
