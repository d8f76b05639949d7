package coerce

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
	"github.com/teamlint/pg-column/literal"
)

// integerRule fixed-width integer kinds. smallint and integer produce
// int64 and refuse *big.Int; bigint produces decimal text so no precision
// is lost on the way to storage.
type integerRule struct {
	shapes
	min, max  *big.Int
	acceptBig bool
}

func newIntegerRule(bits uint, acceptBig bool) *integerRule {
	max := new(big.Int).Lsh(big.NewInt(1), bits-1)
	min := new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	r := &integerRule{min: min, max: max, acceptBig: acceptBig}
	r.in = []Shape{ShapeNumber, ShapeString}
	r.out = ShapeInt64
	if acceptBig {
		r.in = append(r.in, ShapeBigInt)
		r.out = ShapeString
	}
	return r
}

func (r *integerRule) Coerce(raw interface{}) (interface{}, error) {
	n, err := r.parse(raw)
	if err != nil {
		return nil, err
	}
	if n.Cmp(r.min) < 0 || n.Cmp(r.max) > 0 {
		return nil, Errorf(CodeOutOfRange, "value %s is out of range: must be between %s and %s", n, r.min, r.max)
	}
	if r.acceptBig {
		return n.String(), nil
	}
	return n.Int64(), nil
}

func (r *integerRule) parse(raw interface{}) (*big.Int, *Error) {
	switch v := raw.(type) {
	case string:
		return parseIntegerText(v)
	case json.Number:
		return parseIntegerText(string(v))
	case *big.Int:
		if !r.acceptBig {
			return nil, wrongType("number", raw)
		}
		return new(big.Int).Set(v), nil
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	}
	if n, ok := literal.WholeNumber(raw); ok {
		return n, nil
	}
	return nil, wrongType("integer", raw)
}

func parseIntegerText(s string) (*big.Int, *Error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, Errorf(CodeBadFormat, "%q is not an integer", s)
	}
	return n, nil
}

func wholeFloat(f float64) (*big.Int, *Error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Errorf(CodeWrongType, "expected integer, received %v", f)
	}
	n, ok := literal.WholeNumber(f)
	if !ok {
		return nil, Errorf(CodeWrongType, "expected integer, received float %v", f)
	}
	return n, nil
}

func init() {
	RegisterRule(kind.SmallInt, func(*column.Descriptor) Rule { return newIntegerRule(16, false) })
	RegisterRule(kind.Integer, func(*column.Descriptor) Rule { return newIntegerRule(32, false) })
	RegisterRule(kind.Serial, func(*column.Descriptor) Rule { return newIntegerRule(32, false) })
	RegisterRule(kind.BigInt, func(*column.Descriptor) Rule { return newIntegerRule(64, true) })
	RegisterRule(kind.BigSerial, func(*column.Descriptor) Rule { return newIntegerRule(64, true) })
}
