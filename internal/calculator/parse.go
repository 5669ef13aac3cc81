// Package calculator holds the mortgage, affordability, rent and ROI
// formulas. Every function is pure and degrades to zero instead of failing.
package calculator

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxInputLen bounds the text handed to the decimal parser.
	maxInputLen = 64
	// maxExponent is past float64 range in both directions.
	maxExponent = 400
)

var (
	separators    = strings.NewReplacer(",", "", "_", "", " ", "")
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// Amount is a user-entered number. JSON accepts both "3,000,000" and 3000000.
type Amount string

// UnmarshalJSON keeps strings as typed and number literals verbatim. Any other
// JSON value is kept raw and later parses to 0.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	if string(b) == "null" {
		*a = ""
		return nil
	}
	*a = Amount(b)
	return nil
}

// Float parses the amount with ParseNumber.
func (a Amount) Float() float64 {
	return ParseNumber(string(a))
}

// ParseNumber reads a user-entered amount. Separators are dropped and the
// leading number is used, so "12abc" is 12. Empty, unparsable or out-of-range
// input is 0.
func ParseNumber(s string) float64 {
	s = separators.Replace(strings.TrimSpace(s))
	if s == "" || len(s) > maxInputLen {
		return 0
	}
	num := leadingNumber.FindString(s)
	if num == "" {
		return 0
	}
	num = strings.TrimPrefix(num, "+")
	num = strings.Replace(num, ".e", "e", 1)
	num = strings.Replace(num, ".E", "E", 1)
	num = strings.TrimSuffix(num, ".")

	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return 0
	}
	f := d.InexactFloat64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// monthlyRate converts an annual percentage to a per-month fraction.
func monthlyRate(ratePct float64) float64 {
	return ratePct / 100 / 12
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
