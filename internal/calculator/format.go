package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount rounded to whole units with thousands
// separators, e.g. "KES 27,267".
func FormatPrice(amount float64, currency string) string {
	whole := decimal.NewFromFloat(finite(amount)).Round(0)
	digits := whole.Abs().String()

	var b strings.Builder
	if currency != "" {
		b.WriteString(currency)
		b.WriteByte(' ')
	}
	if whole.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
