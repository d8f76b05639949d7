// Package validator derives the input contract of a column from its
// descriptor and parses raw values against it.
package validator

import (
	"github.com/sirupsen/logrus"

	"github.com/teamlint/pg-column/coerce"
	"github.com/teamlint/pg-column/column"
)

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent marks a value that was not supplied at all, as opposed to nil,
// which is an explicit null.
var Absent interface{} = absent{}

// Contract read-only view of what a column accepts and produces.
type Contract struct {
	InputShapes    []coerce.Shape
	OutputShape    coerce.Shape
	InputOptional  bool
	InputNullable  bool
	OutputOptional bool
	OutputNullable bool

	dataType string
	rule     coerce.Rule // nil when no concrete input is accepted
}

// Derive computes the contract of d. primaryKey marks d as a member of the
// table's primary key, which makes it non-nullable.
func Derive(d *column.Descriptor, primaryKey bool) (*Contract, error) {
	rule, err := coerce.For(d)
	if err != nil {
		return nil, err
	}
	c := &Contract{
		OutputShape: rule.OutputShape(),
		dataType:    d.DataType,
	}
	switch {
	case d.Identity == column.IdentityAlways:
		c.InputOptional = true
		c.OutputOptional = true
	case primaryKey:
		c.InputShapes = rule.InputShapes()
		c.rule = rule
	default:
		c.InputShapes = rule.InputShapes()
		c.rule = rule
		c.InputNullable = d.IsNullable
		c.OutputNullable = d.IsNullable
	}
	if d.HasDefault() || d.Identity == column.IdentityByDefault {
		c.InputOptional = true
		c.OutputOptional = true
	}
	logrus.WithField("data_type", d.DataType).
		WithField("primary_key", primaryKey).
		WithField("input_optional", c.InputOptional).
		WithField("input_nullable", c.InputNullable).
		Debugln("validator contract derived")
	return c, nil
}

// MustDerive is like Derive but panics on error.
func MustDerive(d *column.Descriptor, primaryKey bool) *Contract {
	c, err := Derive(d, primaryKey)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse validates raw and returns its storage representation. Absent input
// yields Absent, nil input yields nil. Errors are always *coerce.Error.
func (c *Contract) Parse(raw interface{}) (interface{}, error) {
	if raw == Absent {
		if c.InputOptional {
			return Absent, nil
		}
		return nil, coerce.Errorf(coerce.CodeRequired, "a value is required")
	}
	v, ok := coerce.Indirect(raw)
	if !ok {
		if c.InputNullable {
			return nil, nil
		}
		return nil, coerce.Errorf(coerce.CodeNullNotPermitted, "null is not permitted")
	}
	if c.rule == nil {
		return nil, coerce.Errorf(coerce.CodeWrongType, "%s column is generated always and accepts no value, received %T", c.dataType, v)
	}
	out, err := c.rule.Coerce(v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Accepts reports whether the contract accepts input of shape s.
func (c *Contract) Accepts(s coerce.Shape) bool {
	for _, in := range c.InputShapes {
		if in == s {
			return true
		}
	}
	return false
}
