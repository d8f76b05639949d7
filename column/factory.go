package column

import (
	"github.com/teamlint/pg-column/kind"
)

func newBase(k kind.Kind, params ...int) base {
	var b base
	d, err := New(k, params...)
	b.d = d
	b.fail("type", err)
	return b
}

func newBuilder(k kind.Kind, params ...int) *Builder {
	return &Builder{base: newBase(k, params...)}
}

func newIdentityBuilder(k kind.Kind) *IdentityBuilder {
	return &IdentityBuilder{base: newBase(k)}
}

func Boolean() *Builder { return newBuilder(kind.Boolean) }

func SmallInt() *IdentityBuilder { return newIdentityBuilder(kind.SmallInt) }

func Integer() *IdentityBuilder { return newIdentityBuilder(kind.Integer) }

func BigInt() *IdentityBuilder { return newIdentityBuilder(kind.BigInt) }

// Serial auto-incrementing integer. It is NOT NULL and always defaulted.
func Serial() *SerialBuilder { return &SerialBuilder{base: newBase(kind.Serial)} }

// BigSerial auto-incrementing bigint.
func BigSerial() *SerialBuilder { return &SerialBuilder{base: newBase(kind.BigSerial)} }

func Real() *Builder { return newBuilder(kind.Real) }

func DoublePrecision() *Builder { return newBuilder(kind.DoublePrecision) }

// Numeric arbitrary precision decimal. Optional precisionScale holds the
// precision and then the scale; numeric() is unconstrained.
func Numeric(precisionScale ...int) *Builder {
	return newBuilder(kind.Numeric, precisionScale...)
}

// Character fixed-length text, length 1 when omitted.
func Character(length ...int) *Builder { return newBuilder(kind.Character, length...) }

// CharacterVarying variable-length text, unbounded when length is omitted.
func CharacterVarying(length ...int) *Builder {
	return newBuilder(kind.CharacterVarying, length...)
}

func Text() *Builder { return newBuilder(kind.Text) }

func Bytea() *Builder { return newBuilder(kind.Bytea) }

func Date() *Builder { return newBuilder(kind.Date) }

// Timestamp timestamp without time zone, with optional fractional-second
// precision.
func Timestamp(precision ...int) *Builder { return newBuilder(kind.Timestamp, precision...) }

func TimestampWithTimeZone(precision ...int) *Builder {
	return newBuilder(kind.TimestampTZ, precision...)
}

func Time(precision ...int) *Builder { return newBuilder(kind.Time, precision...) }

func TimeWithTimeZone(precision ...int) *Builder { return newBuilder(kind.TimeTZ, precision...) }

func Inet() *Builder { return newBuilder(kind.Inet) }

func Cidr() *Builder { return newBuilder(kind.Cidr) }

func Macaddr() *Builder { return newBuilder(kind.Macaddr) }

func Macaddr8() *Builder { return newBuilder(kind.Macaddr8) }

// Bit fixed-length bit string, length 1 when omitted.
func Bit(length ...int) *Builder { return newBuilder(kind.Bit, length...) }

// BitVarying variable-length bit string, unbounded when length is omitted.
func BitVarying(length ...int) *Builder { return newBuilder(kind.BitVarying, length...) }

func TSVector() *Builder { return newBuilder(kind.TSVector) }

func TSQuery() *Builder { return newBuilder(kind.TSQuery) }

func XML() *Builder { return newBuilder(kind.XML) }

func JSON() *Builder { return newBuilder(kind.JSON) }

func JSONB() *Builder { return newBuilder(kind.JSONB) }

func UUID() *Builder { return newBuilder(kind.UUID) }

// Enum column of the enumerated type name. Values must be one of members.
func Enum(name string, members ...string) *Builder {
	b := &Builder{}
	d, err := NewEnum(name, members...)
	b.d = d
	b.fail("type", err)
	return b
}
