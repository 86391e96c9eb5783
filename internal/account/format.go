package account

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Locale describes how a balance is rendered as a currency string.
type Locale struct {
	Symbol     string
	DecimalSep string
	GroupSep   string
}

// DefaultLocale renders US dollars: "$1,234.50".
var DefaultLocale = Locale{
	Symbol:     "$",
	DecimalSep: ".",
	GroupSep:   ",",
}

// Format renders balance using DefaultLocale.
func Format(balance decimal.Decimal) string {
	return DefaultLocale.Format(balance)
}

// Format renders d with the locale's symbol, grouped integer digits and
// exactly two fractional digits. Midpoints round away from zero.
func (l Locale) Format(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(l.Symbol)
	b.WriteString(group(intPart, l.GroupSep))
	b.WriteString(l.DecimalSep)
	b.WriteString(frac)
	return b.String()
}

// group inserts sep between every three digits counted from the right.
func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
