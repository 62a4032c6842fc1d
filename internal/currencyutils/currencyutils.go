// Package currencyutils reads amounts out of free-text tokens and formats them
// for display.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// SanitizeAmountToken keeps only digits, '.' and ',' from token and turns
// every ',' into '.'.
func SanitizeAmountToken(token string) string {
	var b strings.Builder
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		}
	}
	return b.String()
}

// LeadingDecimal parses the longest prefix of s shaped like digits, an
// optional '.', and more digits. It reports false when the prefix holds no
// digit at all, so "abc" and "." yield false while "12.5.3" yields 12.5.
func LeadingDecimal(s string) (decimal.Decimal, bool) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracPart = s[i+1 : j]
	}

	if intPart == "" && fracPart == "" {
		return decimal.Zero, false
	}
	if intPart == "" {
		intPart = "0"
	}

	literal := intPart
	if fracPart != "" {
		literal += "." + fracPart
	}
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ExtractAmount sanitizes token and returns its value when it is a positive
// number.
func ExtractAmount(token string) (decimal.Decimal, bool) {
	d, ok := LeadingDecimal(SanitizeAmountToken(token))
	if !ok || !IsPositive(d) {
		return decimal.Zero, false
	}
	return d, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsPositive checks if an amount is positive.
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

var spanish = message.NewPrinter(language.Spanish)

// FormatCurrency renders amount with Spanish digit grouping, two decimals
// and the currency code, e.g. "1.234.567,89 ARS".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	f, _ := amount.Round(2).Float64()
	formatted := spanish.Sprint(number.Decimal(f, number.Scale(2)))
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}
