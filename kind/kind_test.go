package kind

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		kind   Kind
		params []int
	}{
		{name: "plain", typ: "integer", kind: Integer},
		{name: "alias", typ: "INT8", kind: BigInt},
		{name: "numeric precision scale", typ: "numeric(5,2)", kind: Numeric, params: []int{5, 2}},
		{name: "decimal precision", typ: "decimal(7)", kind: Numeric, params: []int{7}},
		{name: "varchar", typ: "varchar(20)", kind: CharacterVarying, params: []int{20}},
		{name: "character varying spaces", typ: " character   varying ( 5 ) ", kind: CharacterVarying, params: []int{5}},
		{name: "timestamptz alias", typ: "timestamptz", kind: TimestampTZ},
		{name: "timestamp precision with zone", typ: "timestamp(3) with time zone", kind: TimestampTZ, params: []int{3}},
		{name: "varbit", typ: "bit varying(8)", kind: BitVarying, params: []int{8}},
		{name: "double", typ: "double precision", kind: DoublePrecision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, params, err := Parse(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, k)
			assert.Equal(t, tt.params, params)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		typ  string
		want error
	}{
		{typ: "money", want: ErrUnknownType},
		{typ: "integer[]", want: ErrUnknownType},
		{typ: "enum", want: ErrUnknownType},
		{typ: "integer(4)", want: ErrInvalidParams},
		{typ: "varchar(0)", want: ErrInvalidParams},
		{typ: "numeric(a,b)", want: ErrInvalidParams},
		{typ: "numeric(1,2,3)", want: ErrInvalidParams},
		{typ: "numeric(2,3)", want: ErrInvalidParams},
		{typ: "time(7)", want: ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			_, _, err := Parse(tt.typ)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "numeric(5,2)", Numeric.Info().TypeName(5, 2))
	assert.Equal(t, "numeric", Numeric.Info().TypeName())
	assert.Equal(t, "character(1)", Character.Info().TypeName(1))
	assert.Equal(t, "timestamp(3) with time zone", TimestampTZ.Info().TypeName(3))
	assert.Equal(t, "time with time zone", TimeTZ.Info().TypeName(-1))
	assert.Equal(t, "bit varying", BitVarying.Info().TypeName())
}

func TestCapabilities(t *testing.T) {
	for _, k := range Kinds() {
		info := k.Info()
		if info.Identity {
			assert.True(t, k.IsIntegerFamily(), "identity on %s", k)
		}
		if info.ImplicitDefault {
			assert.False(t, info.Defaultable, "default on %s", k)
		}
	}
	assert.False(t, Serial.Info().Defaultable)
	assert.False(t, Real.Info().Identity)
}

func TestOID(t *testing.T) {
	assert.Equal(t, uint32(20), BigInt.OID())
	assert.Equal(t, uint32(23), Integer.OID())
	assert.Equal(t, uint32(2950), UUID.OID())
	assert.Equal(t, uint32(0), Enum.OID())
}
