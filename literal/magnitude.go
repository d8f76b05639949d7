package literal

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teamlint/pg-column/kind"
)

// Digit limits of the catalog numeric type.
const (
	MaxNumericWhole = 131072
	MaxNumericFrac  = 16383
)

// significant returns d as n significant digits times 10^exp, trailing
// zeros folded into exp. n is 0 for zero.
func significant(d decimal.Decimal) (n, exp int) {
	s := new(big.Int).Abs(d.Coefficient()).String()
	if s == "0" {
		return 0, 0
	}
	t := strings.TrimRight(s, "0")
	return len(t), int(d.Exponent()) + len(s) - len(t)
}

// Digits counts the significant digits of d before and after the decimal
// point. The exponent is never expanded, so the cost follows the length of
// the coefficient, not the magnitude.
func Digits(d decimal.Decimal) (whole, frac int) {
	n, exp := significant(d)
	if n == 0 {
		return 0, 0
	}
	if exp >= 0 {
		return n + exp, 0
	}
	whole = n + exp
	if whole < 0 {
		whole = 0
	}
	return whole, -exp
}

// FloatExponent returns the largest decimal exponent of a floating kind.
func FloatExponent(k kind.Kind) int {
	if k == kind.Real {
		return 37
	}
	return 308
}

// FitsFloat reports whether d is zero or 10^-exp <= |d| <= 10^exp.
func FitsFloat(d decimal.Decimal, exp int) bool {
	n, e := significant(d)
	if n == 0 {
		return true
	}
	// |d| lies in [10^lead, 10^(lead+1))
	lead := n - 1 + e
	switch {
	case lead > exp:
		return false
	case lead == exp:
		return d.Abs().Cmp(decimal.New(1, int32(exp))) <= 0
	}
	return lead >= -exp
}

// FitsNumeric reports whether d is within the digit limits of numeric.
func FitsNumeric(d decimal.Decimal) bool {
	whole, frac := Digits(d)
	return whole <= MaxNumericWhole && frac <= MaxNumericFrac
}
