// Package column builds column descriptors: the data kind of a column plus
// its not-null, default, identity and rename modifiers.
package column

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/teamlint/pg-column/kind"
	"github.com/teamlint/pg-column/literal"
)

// Build-time errors.
var (
	ErrIllegalModifier = errors.New("illegal modifier")
	ErrInvalidType     = errors.New("invalid column type")
)

// Identity identity generation mode
type Identity string

const (
	IdentityNone      Identity = ""
	IdentityAlways    Identity = "ALWAYS"
	IdentityByDefault Identity = "BY DEFAULT"
)

// Descriptor canonical column record. Two descriptors describe the same
// column iff their fields are equal.
//easyjson:json
type Descriptor struct {
	DataType   string    `json:"dataType" yaml:"dataType"`                     // rendered type, e.g. numeric(5,2)
	Kind       kind.Kind `json:"kind" yaml:"kind"`                             // data kind discriminant
	Length     *int      `json:"length,omitempty" yaml:"length,omitempty"`     // character and bit length
	Precision  *int      `json:"precision,omitempty" yaml:"precision,omitempty"` // numeric digits or fractional seconds
	Scale      *int      `json:"scale,omitempty" yaml:"scale,omitempty"`
	IsNullable bool      `json:"isNullable" yaml:"isNullable"`
	Default    string    `json:"default,omitempty" yaml:"default,omitempty"` // hash:literal
	Identity   Identity  `json:"identity,omitempty" yaml:"identity,omitempty"`
	RenameFrom string    `json:"renameFrom,omitempty" yaml:"renameFrom,omitempty"`
	IsEnum     bool      `json:"isEnum" yaml:"isEnum"`
	EnumName   string    `json:"enumName,omitempty" yaml:"enumName,omitempty"`
	Members    []string  `json:"members,omitempty" yaml:"members,omitempty"`
	TypeOID    uint32    `json:"typeOID,omitempty" yaml:"typeOID,omitempty"`
}

// New returns a nullable, default-free, identity-free descriptor of kind k.
// params are the type parameters: length, precision and scale, or
// fractional-second precision depending on the kind.
func New(k kind.Kind, params ...int) (*Descriptor, error) {
	info, ok := kind.Lookup(k)
	if !ok || k == kind.Enum {
		return nil, errors.Wrapf(ErrInvalidType, "unknown kind %q", k)
	}
	d := &Descriptor{
		Kind:       k,
		IsNullable: !info.ImplicitNotNull,
		TypeOID:    k.OID(),
	}
	if err := d.setParams(info, params); err != nil {
		return nil, err
	}
	return d, nil
}

// NewEnum returns a descriptor of the enumerated type name with the given
// member set.
func NewEnum(name string, members ...string) (*Descriptor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(ErrInvalidType, "enum name required")
	}
	if len(members) == 0 {
		return nil, errors.Wrapf(ErrInvalidType, "enum %s has no members", name)
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m] {
			return nil, errors.Wrapf(ErrInvalidType, "enum %s: duplicate member %q", name, m)
		}
		seen[m] = true
	}
	return &Descriptor{
		DataType:   name,
		Kind:       kind.Enum,
		IsNullable: true,
		IsEnum:     true,
		EnumName:   name,
		Members:    append([]string(nil), members...),
	}, nil
}

// Parse returns a descriptor for a type string such as "varchar(20)".
func Parse(typ string) (*Descriptor, error) {
	k, params, err := kind.Parse(typ)
	if err != nil {
		return nil, errors.Wrap(err, "column.Parse")
	}
	return New(k, params...)
}

func (d *Descriptor) setParams(info kind.Info, params []int) error {
	d.Length, d.Precision, d.Scale = nil, nil, nil
	switch info.Params {
	case kind.ParamsNone:
		if len(params) > 0 {
			return errors.Wrapf(ErrInvalidType, "%s takes no parameters", info.Kind)
		}
	case kind.ParamsLength:
		switch {
		case len(params) > 1:
			return errors.Wrapf(ErrInvalidType, "%s takes a single length", info.Kind)
		case len(params) == 1:
			if params[0] < 1 {
				return errors.Wrapf(ErrInvalidType, "%s length must be positive, got %d", info.Kind, params[0])
			}
			d.Length = intPtr(params[0])
		case info.DefaultLength > 0:
			d.Length = intPtr(info.DefaultLength)
		}
	case kind.ParamsPrecisionScale:
		if len(params) > 2 {
			return errors.Wrapf(ErrInvalidType, "%s takes precision and scale", info.Kind)
		}
		if len(params) > 0 {
			if params[0] < 1 {
				return errors.Wrapf(ErrInvalidType, "%s precision must be positive, got %d", info.Kind, params[0])
			}
			d.Precision = intPtr(params[0])
		}
		if len(params) == 2 {
			if params[1] < 0 || params[1] > params[0] {
				return errors.Wrapf(ErrInvalidType, "%s scale must be between 0 and %d, got %d", info.Kind, params[0], params[1])
			}
			d.Scale = intPtr(params[1])
		}
	case kind.ParamsTimePrecision:
		if len(params) > 1 {
			return errors.Wrapf(ErrInvalidType, "%s takes a single precision", info.Kind)
		}
		if len(params) == 1 {
			if params[0] < 0 || params[0] > 6 {
				return errors.Wrapf(ErrInvalidType, "%s precision must be between 0 and 6, got %d", info.Kind, params[0])
			}
			d.Precision = intPtr(params[0])
		}
	}
	d.DataType = info.TypeName(d.params()...)
	return nil
}

// params returns the set type parameters in declaration order.
func (d *Descriptor) params() []int {
	var params []int
	if d.Length != nil {
		params = append(params, *d.Length)
	}
	if d.Precision != nil {
		params = append(params, *d.Precision)
		if d.Scale != nil {
			params = append(params, *d.Scale)
		}
	}
	return params
}

// SetType changes the data kind. A default fingerprint computed for the
// previous type is dropped.
func (d *Descriptor) SetType(k kind.Kind, params ...int) error {
	info, ok := kind.Lookup(k)
	if !ok || k == kind.Enum {
		return errors.Wrapf(ErrInvalidType, "unknown kind %q", k)
	}
	if d.Identity != IdentityNone && !info.Identity {
		return errors.Wrapf(ErrIllegalModifier, "identity column can not become %s", k)
	}
	if info.ImplicitDefault && d.Default != "" {
		return errors.Wrapf(ErrIllegalModifier, "column with default can not become %s", k)
	}
	next := *d
	if err := next.setParams(info, params); err != nil {
		return err
	}
	next.Kind = k
	next.TypeOID = k.OID()
	next.IsEnum, next.EnumName, next.Members = false, "", nil
	if info.ImplicitNotNull {
		next.IsNullable = false
	}
	if next.DataType != d.DataType {
		next.Default = ""
	}
	*d = next
	return nil
}

// SetNotNull marks the column NOT NULL. It is idempotent.
func (d *Descriptor) SetNotNull() {
	d.IsNullable = false
}

// SetDefault canonicalizes raw for the column type and stores its
// fingerprint. An enum default must name one of the members unless it is
// NULL or an expression.
func (d *Descriptor) SetDefault(raw interface{}) error {
	if !d.Kind.Info().Defaultable {
		return errors.Wrapf(ErrIllegalModifier, "%s can not have a default", d.DataType)
	}
	if s, ok := raw.(string); ok && d.IsEnum && !d.isMember(s) {
		return errors.Wrapf(literal.ErrInvalidDefault, "%q is not a member of enum %s", s, d.EnumName)
	}
	fp, err := literal.FingerprintOf(raw, d.target())
	if err != nil {
		return errors.Wrapf(err, "%s default", d.DataType)
	}
	d.Default = fp
	return nil
}

// SetIdentity sets the identity generation mode. Identity columns are
// NOT NULL.
func (d *Descriptor) SetIdentity(mode Identity) error {
	switch mode {
	case IdentityNone:
		d.Identity = mode
		return nil
	case IdentityAlways, IdentityByDefault:
	default:
		return errors.Wrapf(ErrIllegalModifier, "unknown identity mode %q", mode)
	}
	if !d.Kind.Info().Identity {
		return errors.Wrapf(ErrIllegalModifier, "%s can not be an identity column", d.DataType)
	}
	d.Identity = mode
	d.IsNullable = false
	return nil
}

// SetRenameFrom records the previous column name.
func (d *Descriptor) SetRenameFrom(old string) {
	d.RenameFrom = old
}

// HasDefault reports whether the column gets a value when none is given,
// either from a stored default or from a sequence.
func (d *Descriptor) HasDefault() bool {
	return d.Default != "" || d.Kind.Info().ImplicitDefault
}

// DefaultLiteral returns the canonical literal of the default, "" if unset.
func (d *Descriptor) DefaultLiteral() string {
	_, lit, ok := literal.SplitFingerprint(d.Default)
	if !ok {
		return ""
	}
	return lit
}

// Equal compares two descriptors field by field.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	return reflect.DeepEqual(*d, *o)
}

// Clone returns a deep copy.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	if d.Length != nil {
		c.Length = intPtr(*d.Length)
	}
	if d.Precision != nil {
		c.Precision = intPtr(*d.Precision)
	}
	if d.Scale != nil {
		c.Scale = intPtr(*d.Scale)
	}
	if d.Members != nil {
		c.Members = append([]string(nil), d.Members...)
	}
	return &c
}

func (d *Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.DataType)
	if !d.IsNullable {
		b.WriteString(" NOT NULL")
	}
	if lit := d.DefaultLiteral(); lit != "" {
		b.WriteString(" DEFAULT " + lit)
	}
	if d.Identity != IdentityNone {
		b.WriteString(" GENERATED " + string(d.Identity) + " AS IDENTITY")
	}
	if d.RenameFrom != "" {
		b.WriteString(" (renamed from " + strconv.Quote(d.RenameFrom) + ")")
	}
	return b.String()
}

func (d *Descriptor) isMember(s string) bool {
	for _, m := range d.Members {
		if m == s {
			return true
		}
	}
	return false
}

func (d *Descriptor) target() literal.Target {
	if d.IsEnum {
		return literal.Target{Kind: kind.Enum, Cast: d.EnumName}
	}
	return literal.For(d.Kind)
}

func intPtr(i int) *int {
	return &i
}
