// Package literal renders raw default values into canonical, type
// qualified SQL literals and fingerprints them.
package literal

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/teamlint/pg-column/kind"
)

// ErrInvalidDefault raw default value can not be rendered for the kind.
var ErrInvalidDefault = errors.New("invalid default value")

// Expr raw SQL expression. It is already canonical and passes through
// unchanged.
type Expr string

// Target kind and cast a literal is rendered for.
type Target struct {
	Kind kind.Kind
	Cast string
}

// For returns the target of k with its catalog cast.
func For(k kind.Kind) Target {
	return Target{Kind: k, Cast: k.Info().Cast}
}

// Canonicalize renders raw as one canonical literal for t.
func Canonicalize(raw interface{}, t Target) (string, error) {
	if expr, ok := raw.(Expr); ok {
		return string(expr), nil
	}
	info, ok := kind.Lookup(t.Kind)
	if !ok {
		return "", errors.Wrapf(ErrInvalidDefault, "unknown kind %q", t.Kind)
	}
	if raw == nil {
		return "NULL", nil
	}

	var (
		text string
		err  error
	)
	switch info.Family {
	case kind.FamilyBoolean:
		b, ok := ParseBool(raw)
		if !ok {
			return "", errors.Wrapf(ErrInvalidDefault, "%v is not a boolean", raw)
		}
		if b {
			return "true", nil
		}
		return "false", nil
	case kind.FamilyInteger:
		text, err = integerText(raw)
	case kind.FamilyFloat:
		text, err = decimalText(raw, t.Kind)
	case kind.FamilyNumeric:
		text, err = decimalText(raw, t.Kind)
	case kind.FamilyBytes:
		text, err = bytesText(raw)
	case kind.FamilyDate:
		text, err = timeText(raw, "2006-01-02")
	case kind.FamilyTimestamp:
		text, err = timeText(raw, "2006-01-02T15:04:05.000Z")
	case kind.FamilyJSON:
		text, err = jsonText(raw)
	case kind.FamilyUUID:
		text, err = uuidText(raw)
	default:
		s, ok := raw.(string)
		if !ok {
			err = errors.Wrapf(ErrInvalidDefault, "%s default must be a string, got %T", t.Kind, raw)
		}
		text = s
	}
	if err != nil {
		return "", err
	}
	return quote(text) + "::" + t.Cast, nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ParseBool reads booleans, their textual forms (true/yes/on/1/t/y and
// false/no/off/0/f/n) and the numbers 1 and 0.
func ParseBool(raw interface{}) (value, ok bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "t", "yes", "y", "on", "1":
			return true, true
		case "false", "f", "no", "n", "off", "0":
			return false, true
		}
	default:
		if n, ok := WholeNumber(raw); ok && n.IsInt64() {
			switch n.Int64() {
			case 1:
				return true, true
			case 0:
				return false, true
			}
		}
	}
	return false, false
}

func integerText(raw interface{}) (string, error) {
	if s, ok := raw.(string); ok {
		n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return "", errors.Wrapf(ErrInvalidDefault, "%q is not an integer", s)
		}
		return n.String(), nil
	}
	n, ok := WholeNumber(raw)
	if !ok {
		return "", errors.Wrapf(ErrInvalidDefault, "%v (%T) is not an integer", raw, raw)
	}
	return n.String(), nil
}

// WholeNumber converts integral Go numbers, whole floats, json.Number and
// *big.Int to a big.Int.
func WholeNumber(raw interface{}) (*big.Int, bool) {
	switch v := raw.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return new(big.Int).Set(v), true
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case json.Number:
		n, ok := new(big.Int).SetString(string(v), 10)
		return n, ok
	}
	return nil, false
}

func wholeFloat(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, true
}

// special IEEE-754 values accepted by the floating kinds.
var special = map[string]string{
	"nan":       "NaN",
	"infinity":  "Infinity",
	"+infinity": "Infinity",
	"-infinity": "-Infinity",
	"inf":       "Infinity",
	"+inf":      "Infinity",
	"-inf":      "-Infinity",
}

func decimalText(raw interface{}, k kind.Kind) (string, error) {
	floating := k != kind.Numeric
	if s, ok := raw.(string); ok && floating {
		if sp, ok := special[strings.ToLower(strings.TrimSpace(s))]; ok {
			return sp, nil
		}
	}
	switch v := raw.(type) {
	case float64:
		if floating && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return floatSpecial(v), nil
		}
	case float32:
		if floating && (math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)) {
			return floatSpecial(float64(v)), nil
		}
	}
	d, err := ToDecimal(raw)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidDefault, "%v", err)
	}
	if floating && !FitsFloat(d, FloatExponent(k)) {
		return "", errors.Wrapf(ErrInvalidDefault, "%s value is out of range", k)
	}
	if !floating && !FitsNumeric(d) {
		return "", errors.Wrapf(ErrInvalidDefault, "numeric value is out of range")
	}
	return d.String(), nil
}

func floatSpecial(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return "Infinity"
}

// ToDecimal converts a finite number, *big.Int or decimal string into a
// decimal. Exponent notation is accepted in strings. Zero comes back with a
// zero exponent whatever its notation.
func ToDecimal(raw interface{}) (decimal.Decimal, error) {
	d, err := toDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.Sign() == 0 {
		return decimal.New(0, 0), nil
	}
	return d, nil
}

func toDecimal(raw interface{}) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Decimal{}, fmt.Errorf("empty string is not a number")
		}
		return decimal.NewFromString(s)
	case json.Number:
		return decimal.NewFromString(string(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, fmt.Errorf("%v is not a finite number", v)
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Decimal{}, fmt.Errorf("%v is not a finite number", v)
		}
		return decimal.NewFromFloat32(v), nil
	case decimal.Decimal:
		return v, nil
	}
	if n, ok := WholeNumber(raw); ok {
		return decimal.NewFromBigInt(n, 0), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%v (%T) is not a number", raw, raw)
}

func bytesText(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case []byte:
		return `\x` + hex.EncodeToString(v), nil
	case string:
		if strings.HasPrefix(v, `\x`) {
			if _, err := hex.DecodeString(v[2:]); err == nil {
				return `\x` + strings.ToLower(v[2:]), nil
			}
		}
		return `\x` + hex.EncodeToString([]byte(v)), nil
	}
	return "", errors.Wrapf(ErrInvalidDefault, "%T is not a byte buffer", raw)
}

func timeText(raw interface{}, layout string) (string, error) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC().Format(layout), nil
	case *time.Time:
		if v != nil {
			return v.UTC().Format(layout), nil
		}
	case string:
		return v, nil
	}
	return "", errors.Wrapf(ErrInvalidDefault, "%T is not a date", raw)
}

func jsonText(raw interface{}) (string, error) {
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		b, err := json.Marshal(raw)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidDefault, "%v", err)
		}
		return string(b), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", errors.Wrapf(ErrInvalidDefault, "invalid json: %v", err)
	}
	return buf.String(), nil
}

func uuidText(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return v.String(), nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidDefault, "%q: %v", v, err)
		}
		return id.String(), nil
	}
	return "", errors.Wrapf(ErrInvalidDefault, "%T is not a uuid", raw)
}
