package coerce

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
	"github.com/teamlint/pg-column/literal"
)

// stringRule string-only kinds with an optional maximum length in
// characters: character, character varying, text, tsvector, tsquery, xml.
type stringRule struct {
	shapes
	maxLength *int
}

func newStringRule(d *column.Descriptor) Rule {
	r := &stringRule{shapes: shapes{in: []Shape{ShapeString}, out: ShapeString}}
	if d.Kind == kind.Character || d.Kind == kind.CharacterVarying {
		r.maxLength = d.Length
	}
	return r
}

func (r *stringRule) Coerce(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType("string", raw)
	}
	if r.maxLength != nil {
		if n := utf8.RuneCountInString(s); n > *r.maxLength {
			return nil, Errorf(CodeTooLong, "string of %d characters exceeds maximum length %d", n, *r.maxLength)
		}
	}
	return s, nil
}

// bitRule bit strings. bit(n) must have exactly n digits, bit varying(n)
// at most n.
type bitRule struct {
	shapes
	length *int
	exact  bool
}

func newBitRule(d *column.Descriptor) Rule {
	return &bitRule{
		shapes: shapes{in: []Shape{ShapeString}, out: ShapeString},
		length: d.Length,
		exact:  d.Kind == kind.Bit,
	}
}

func (r *bitRule) Coerce(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType("string", raw)
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return nil, Errorf(CodeBadFormat, "%q is not a valid binary digit", string(c))
		}
	}
	if r.length == nil {
		return s, nil
	}
	switch {
	case r.exact && len(s) != *r.length:
		return nil, Errorf(CodeBadFormat, "bit string length %d does not match type bit(%d)", len(s), *r.length)
	case !r.exact && len(s) > *r.length:
		return nil, Errorf(CodeTooLong, "bit string too long for type bit varying(%d)", *r.length)
	}
	return s, nil
}

// boolRule boolean and its textual forms.
type boolRule struct {
	shapes
}

func (r *boolRule) Coerce(raw interface{}) (interface{}, error) {
	switch raw.(type) {
	case bool, string:
	default:
		if _, ok := literal.WholeNumber(raw); !ok {
			return nil, wrongType("boolean", raw)
		}
	}
	b, ok := literal.ParseBool(raw)
	if !ok {
		return nil, Errorf(CodeBadFormat, "%v is not a boolean", raw)
	}
	return b, nil
}

// byteaRule binary strings. Text input in \x hex form is decoded, other
// text is taken as its bytes.
type byteaRule struct {
	shapes
}

func (r *byteaRule) Coerce(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case []byte:
		return append([]byte(nil), v...), nil
	case string:
		if strings.HasPrefix(v, `\x`) {
			b, err := hex.DecodeString(v[2:])
			if err != nil {
				return nil, Errorf(CodeBadFormat, "invalid hexadecimal data: %v", err)
			}
			return b, nil
		}
		return []byte(v), nil
	}
	return nil, wrongType("[]byte or string", raw)
}

// enumRule members of an enumerated type.
type enumRule struct {
	shapes
	members []string
	set     map[string]bool
}

func newEnumRule(d *column.Descriptor) Rule {
	r := &enumRule{
		shapes:  shapes{in: []Shape{ShapeString}, out: ShapeString},
		members: append([]string(nil), d.Members...),
		set:     make(map[string]bool, len(d.Members)),
	}
	for _, m := range d.Members {
		r.set[m] = true
	}
	return r
}

func (r *enumRule) Coerce(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType("string", raw)
	}
	if !r.set[s] {
		quoted := make([]string, len(r.members))
		for i, m := range r.members {
			quoted[i] = fmt.Sprintf("'%s'", m)
		}
		return nil, Errorf(CodeNotEnumMember, "invalid enum value: expected %s, received '%s'", strings.Join(quoted, " | "), s)
	}
	return s, nil
}

func init() {
	for _, k := range []kind.Kind{kind.Character, kind.CharacterVarying, kind.Text, kind.TSVector, kind.TSQuery, kind.XML} {
		RegisterRule(k, newStringRule)
	}
	RegisterRule(kind.Bit, newBitRule)
	RegisterRule(kind.BitVarying, newBitRule)
	RegisterRule(kind.Boolean, func(*column.Descriptor) Rule {
		return &boolRule{shapes{in: []Shape{ShapeBool, ShapeString, ShapeNumber}, out: ShapeBool}}
	})
	RegisterRule(kind.Bytea, func(*column.Descriptor) Rule {
		return &byteaRule{shapes{in: []Shape{ShapeBytes, ShapeString}, out: ShapeBytes}}
	})
	RegisterRule(kind.Enum, newEnumRule)
}
