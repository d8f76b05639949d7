package coerce

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
	"github.com/teamlint/pg-column/literal"
)

// floatRule real and double precision. They accept the IEEE-754 special
// values as text, which the integer kinds do not.
type floatRule struct {
	shapes
	exp int
}

var specialFloats = map[string]string{
	"nan":       "NaN",
	"infinity":  "Infinity",
	"+infinity": "Infinity",
	"-infinity": "-Infinity",
}

func newFloatRule(exp int) *floatRule {
	return &floatRule{
		shapes: shapes{in: []Shape{ShapeNumber, ShapeBigInt, ShapeString}, out: ShapeString},
		exp:    exp,
	}
}

func (r *floatRule) Coerce(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case string:
		if s, ok := specialFloats[strings.ToLower(strings.TrimSpace(v))]; ok {
			return s, nil
		}
	case float64:
		if s, ok := floatSpecial(v); ok {
			return s, nil
		}
	case float32:
		if s, ok := floatSpecial(float64(v)); ok {
			return s, nil
		}
	}
	d, err := toDecimal(raw)
	if err != nil {
		return nil, err
	}
	if !literal.FitsFloat(d, r.exp) {
		return nil, Errorf(CodeOutOfRange, "value is out of range: magnitude must be between 1e-%d and 1e%d", r.exp, r.exp)
	}
	return d.String(), nil
}

func floatSpecial(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

// numericRule arbitrary precision decimal. precision bounds the digits
// before the decimal point, scale the digits after it.
type numericRule struct {
	shapes
	precision, scale *int
}

func newNumericRule(d *column.Descriptor) Rule {
	return &numericRule{
		shapes:    shapes{in: []Shape{ShapeNumber, ShapeBigInt, ShapeString}, out: ShapeString},
		precision: d.Precision,
		scale:     d.Scale,
	}
}

func (r *numericRule) Coerce(raw interface{}) (interface{}, error) {
	d, err := toDecimal(raw)
	if err != nil {
		return nil, err
	}
	whole, frac := literal.Digits(d)
	if r.precision != nil && whole > *r.precision {
		return nil, Errorf(CodePrecisionExceeded, "numeric value exceeds precision %d: %d digits before the decimal point", *r.precision, whole)
	}
	if r.scale != nil && frac > *r.scale {
		return nil, Errorf(CodeScaleExceeded, "numeric value exceeds scale %d: %d digits after the decimal point", *r.scale, frac)
	}
	if !literal.FitsNumeric(d) {
		return nil, Errorf(CodeOutOfRange, "numeric value is out of range: at most %d digits before and %d after the decimal point", literal.MaxNumericWhole, literal.MaxNumericFrac)
	}
	return d.String(), nil
}

func toDecimal(raw interface{}) (decimal.Decimal, *Error) {
	switch v := raw.(type) {
	case string:
		d, err := literal.ToDecimal(v)
		if err != nil {
			return decimal.Decimal{}, Errorf(CodeBadFormat, "%q is not a number", v)
		}
		return d, nil
	case json.Number:
		d, err := literal.ToDecimal(v)
		if err != nil {
			return decimal.Decimal{}, Errorf(CodeBadFormat, "%q is not a number", string(v))
		}
		return d, nil
	case float64, float32, *big.Int, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		d, err := literal.ToDecimal(v)
		if err != nil {
			return decimal.Decimal{}, Errorf(CodeWrongType, "expected a finite number, received %v", v)
		}
		return d, nil
	}
	return decimal.Decimal{}, wrongType("number", raw)
}

func init() {
	for _, k := range []kind.Kind{kind.Real, kind.DoublePrecision} {
		exp := literal.FloatExponent(k)
		RegisterRule(k, func(*column.Descriptor) Rule { return newFloatRule(exp) })
	}
	RegisterRule(kind.Numeric, newNumericRule)
}
