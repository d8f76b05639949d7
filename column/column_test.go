package column

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlint/pg-column/kind"
	"github.com/teamlint/pg-column/literal"
)

func TestFreshDescriptor(t *testing.T) {
	d := Integer().MustBuild()
	assert.Equal(t, "integer", d.DataType)
	assert.Equal(t, kind.Integer, d.Kind)
	assert.True(t, d.IsNullable)
	assert.Empty(t, d.Default)
	assert.Equal(t, IdentityNone, d.Identity)
	assert.False(t, d.HasDefault())
	assert.Equal(t, uint32(23), d.TypeOID)
}

func TestFactoryDefaults(t *testing.T) {
	tests := []struct {
		name     string
		builder  interface{ Build() (*Descriptor, error) }
		dataType string
		length   *int
	}{
		{name: "character", builder: Character(), dataType: "character(1)", length: intPtr(1)},
		{name: "character 10", builder: Character(10), dataType: "character(10)", length: intPtr(10)},
		{name: "varchar", builder: CharacterVarying(), dataType: "character varying"},
		{name: "varchar 5", builder: CharacterVarying(5), dataType: "character varying(5)", length: intPtr(5)},
		{name: "bit", builder: Bit(), dataType: "bit(1)", length: intPtr(1)},
		{name: "varbit", builder: BitVarying(), dataType: "bit varying"},
		{name: "numeric", builder: Numeric(), dataType: "numeric"},
		{name: "numeric 5 2", builder: Numeric(5, 2), dataType: "numeric(5,2)"},
		{name: "timestamptz 3", builder: TimestampWithTimeZone(3), dataType: "timestamp(3) with time zone"},
		{name: "enum", builder: Enum("mood", "sad", "ok"), dataType: "mood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.dataType, d.DataType)
			assert.Equal(t, tt.length, d.Length)
		})
	}
}

func TestInvalidTypeParams(t *testing.T) {
	for _, b := range []interface{ Build() (*Descriptor, error) }{
		Numeric(0),
		Numeric(2, 3),
		CharacterVarying(0),
		Bit(1, 2),
		Time(7),
		Enum("mood"),
		Enum("", "a"),
		Enum("mood", "a", "a"),
	} {
		_, err := b.Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidType), err.Error())
	}
}

func TestModifiers(t *testing.T) {
	d := Integer().NotNull().NotNull().Default("10").RenameFrom("old_count").MustBuild()
	assert.False(t, d.IsNullable)
	assert.True(t, d.HasDefault())
	assert.Equal(t, "'10'::integer", d.DefaultLiteral())
	assert.Equal(t, "old_count", d.RenameFrom)

	same := Integer().Default(10).NotNull().RenameFrom("old_count").MustBuild()
	assert.True(t, d.Equal(same))
	assert.Equal(t, d.Default, same.Default)
}

func TestIdentityLastCallWins(t *testing.T) {
	d := BigInt().GeneratedAlwaysAsIdentity().GeneratedByDefaultAsIdentity().MustBuild()
	assert.Equal(t, IdentityByDefault, d.Identity)
	assert.False(t, d.IsNullable)

	d = SmallInt().GeneratedByDefaultAsIdentity().GeneratedAlwaysAsIdentity().NotNull().MustBuild()
	assert.Equal(t, IdentityAlways, d.Identity)
}

func TestIllegalModifiers(t *testing.T) {
	d, err := New(kind.Serial)
	require.NoError(t, err)
	assert.False(t, d.IsNullable)
	assert.True(t, d.HasDefault())
	err = d.SetDefault(1)
	assert.True(t, errors.Is(err, ErrIllegalModifier))

	d, err = New(kind.Text)
	require.NoError(t, err)
	err = d.SetIdentity(IdentityAlways)
	assert.True(t, errors.Is(err, ErrIllegalModifier))
	assert.Equal(t, IdentityNone, d.Identity)

	_, err = Build("real", Modifiers{Identity: IdentityByDefault})
	assert.True(t, errors.Is(err, ErrIllegalModifier))

	_, err = Build("bigserial", Modifiers{Default: 1, HasDefault: true})
	assert.True(t, errors.Is(err, ErrIllegalModifier))
}

func TestBuilderKeepsFirstError(t *testing.T) {
	_, err := Integer().Default("ten").Default(1).NotNull().Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, literal.ErrInvalidDefault))
	assert.Panics(t, func() { Boolean().Default("maybe").MustBuild() })
}

func TestSetTypeDropsDefault(t *testing.T) {
	d := Integer().Default(10).MustBuild()
	require.NoError(t, d.SetType(kind.BigInt))
	assert.Equal(t, "bigint", d.DataType)
	assert.Empty(t, d.Default)

	d = CharacterVarying(5).Default("abc").MustBuild()
	fp := d.Default
	require.NoError(t, d.SetType(kind.CharacterVarying, 5))
	assert.Equal(t, fp, d.Default)
	require.NoError(t, d.SetType(kind.CharacterVarying, 10))
	assert.Empty(t, d.Default)

	d = Integer().GeneratedAlwaysAsIdentity().MustBuild()
	assert.True(t, errors.Is(d.SetType(kind.Text), ErrIllegalModifier))
	assert.Equal(t, kind.Integer, d.Kind)
}

func TestEnumDefault(t *testing.T) {
	d := Enum("mood", "sad", "ok").Default("ok").MustBuild()
	assert.True(t, d.IsEnum)
	assert.Equal(t, "'ok'::mood", d.DefaultLiteral())

	_, err := Enum("mood", "sad", "ok").Default("meh").Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, literal.ErrInvalidDefault), err.Error())

	d = Enum("mood", "sad", "ok").Default(nil).MustBuild()
	assert.Equal(t, "NULL", d.DefaultLiteral())
	d = Enum("mood", "sad", "ok").Default(literal.Expr("'ok'::mood")).MustBuild()
	assert.Equal(t, "'ok'::mood", d.DefaultLiteral())
}

func TestDefaultOutOfRange(t *testing.T) {
	for _, b := range []*Builder{Numeric(5, 2), Numeric(), Real(), DoublePrecision()} {
		_, err := b.Default("1e10000000").Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, literal.ErrInvalidDefault), err.Error())
	}
}

func TestBigIntDefaultFingerprint(t *testing.T) {
	v, _ := new(big.Int).SetString("12234433444444455", 10)
	d := BigInt().Default(v).MustBuild()
	assert.Equal(t, "731746a587af8fdb9fce577caf7db2443d7005ae1fd4e1b543e3e907d4ded78a:'12234433444444455'::bigint", d.Default)
}

func TestBuild(t *testing.T) {
	d, err := Build("numeric(5,2)", Modifiers{NotNull: true, Default: "1.5", HasDefault: true, RenameFrom: "price"})
	require.NoError(t, err)
	assert.Equal(t, "numeric(5,2)", d.DataType)
	assert.Equal(t, 5, *d.Precision)
	assert.Equal(t, 2, *d.Scale)
	assert.Equal(t, "'1.5'::numeric", d.DefaultLiteral())
	assert.Equal(t, "numeric(5,2) NOT NULL DEFAULT '1.5'::numeric (renamed from \"price\")", d.String())
}

func TestDescriptorJSON(t *testing.T) {
	d := Enum("mood", "sad", "ok").NotNull().Default("ok").MustBuild()
	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got Descriptor
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, d.Equal(&got), string(data))

	n := Numeric(5, 2).MustBuild()
	n.TypeOID = 0
	data, err = json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dataType":"numeric(5,2)","kind":"numeric","precision":5,"scale":2,"isNullable":true,"isEnum":false}`, string(data))
}

func TestSetEncoding(t *testing.T) {
	set := Set{
		"name": CharacterVarying(20).NotNull().MustBuild(),
		"id":   BigInt().GeneratedAlwaysAsIdentity().MustBuild(),
	}
	assert.Equal(t, []string{"id", "name"}, set.Names())

	var buf bytes.Buffer
	require.NoError(t, set.WriteJSON(&buf))
	assert.True(t, strings.Index(buf.String(), `"id"`) < strings.Index(buf.String(), `"name"`))
	var decoded map[string]Descriptor
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, IdentityAlways, decoded["id"].Identity)

	buf.Reset()
	require.NoError(t, set.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "dataType: character varying(20)")
	assert.Contains(t, buf.String(), "identity: ALWAYS")
}

func TestClone(t *testing.T) {
	d := Enum("mood", "sad").MustBuild()
	c := d.Clone()
	c.Members[0] = "happy"
	assert.Equal(t, "sad", d.Members[0])
	assert.False(t, d.Equal(c))
}
