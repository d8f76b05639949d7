package literal

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlint/pg-column/kind"
)

func TestCanonicalize(t *testing.T) {
	bigValue, _ := new(big.Int).SetString("12234433444444455", 10)
	date := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("x", -2*3600))

	tests := []struct {
		name string
		raw  interface{}
		kind kind.Kind
		want string
	}{
		{name: "bool true", raw: true, kind: kind.Boolean, want: "true"},
		{name: "bool yes", raw: "Yes", kind: kind.Boolean, want: "true"},
		{name: "bool on", raw: "on", kind: kind.Boolean, want: "true"},
		{name: "bool one", raw: 1, kind: kind.Boolean, want: "true"},
		{name: "bool off", raw: "off", kind: kind.Boolean, want: "false"},
		{name: "bool zero string", raw: "0", kind: kind.Boolean, want: "false"},
		{name: "integer number", raw: 10, kind: kind.Integer, want: "'10'::integer"},
		{name: "integer string", raw: "10", kind: kind.Integer, want: "'10'::integer"},
		{name: "integer whole float", raw: 10.0, kind: kind.SmallInt, want: "'10'::smallint"},
		{name: "bigint big", raw: bigValue, kind: kind.BigInt, want: "'12234433444444455'::bigint"},
		{name: "bigint padded string", raw: "+007", kind: kind.BigInt, want: "'7'::bigint"},
		{name: "real exponent", raw: "1e3", kind: kind.Real, want: "'1000'::real"},
		{name: "real nan", raw: "nan", kind: kind.Real, want: "'NaN'::real"},
		{name: "double inf", raw: math.Inf(-1), kind: kind.DoublePrecision, want: "'-Infinity'::double precision"},
		{name: "double large", raw: 1e21, kind: kind.DoublePrecision, want: "'1000000000000000000000'::double precision"},
		{name: "numeric trailing zeros", raw: "1.50", kind: kind.Numeric, want: "'1.5'::numeric"},
		{name: "numeric float", raw: 1.5, kind: kind.Numeric, want: "'1.5'::numeric"},
		{name: "numeric zero exponent form", raw: "0e-10000000", kind: kind.Numeric, want: "'0'::numeric"},
		{name: "text quote", raw: "it's", kind: kind.Text, want: "'it''s'::text"},
		{name: "varchar", raw: "abc", kind: kind.CharacterVarying, want: "'abc'::character varying"},
		{name: "char", raw: "a", kind: kind.Character, want: "'a'::bpchar"},
		{name: "bytea", raw: []byte("hi"), kind: kind.Bytea, want: `'\x6869'::bytea`},
		{name: "bytea hex string", raw: `\x6869`, kind: kind.Bytea, want: `'\x6869'::bytea`},
		{name: "date value", raw: date, kind: kind.Date, want: "'2024-03-02'::date"},
		{name: "timestamp value", raw: date, kind: kind.TimestampTZ, want: "'2024-03-02T01:30:00.000Z'::timestamp with time zone"},
		{name: "timestamp string", raw: "2024-01-01 10:00:00", kind: kind.Timestamp, want: "'2024-01-01 10:00:00'::timestamp without time zone"},
		{name: "json value", raw: map[string]int{"a": 1}, kind: kind.JSONB, want: `'{"a":1}'::jsonb`},
		{name: "json string compacted", raw: `{ "a" : 1 }`, kind: kind.JSON, want: `'{"a":1}'::json`},
		{name: "uuid upper", raw: "A0EEBC99-9C0B-4EF8-BB6D-6BB9BD380A11", kind: kind.UUID, want: "'a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11'::uuid"},
		{name: "bit", raw: "101", kind: kind.Bit, want: `'101'::"bit"`},
		{name: "expression", raw: Expr("now()"), kind: kind.TimestampTZ, want: "now()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.raw, For(tt.kind))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		kind kind.Kind
	}{
		{name: "integer fraction", raw: 1.5, kind: kind.Integer},
		{name: "integer text", raw: "ten", kind: kind.Integer},
		{name: "boolean text", raw: "maybe", kind: kind.Boolean},
		{name: "boolean two", raw: 2, kind: kind.Boolean},
		{name: "numeric nan", raw: "NaN", kind: kind.Numeric},
		{name: "numeric huge exponent", raw: "1e10000000", kind: kind.Numeric},
		{name: "numeric tiny exponent", raw: "1e-10000000", kind: kind.Numeric},
		{name: "real huge exponent", raw: "1e10000000", kind: kind.Real},
		{name: "real above limit", raw: 1e38, kind: kind.Real},
		{name: "double huge exponent", raw: json.Number("1e10000000"), kind: kind.DoublePrecision},
		{name: "text number", raw: 10, kind: kind.Text},
		{name: "json invalid", raw: "{", kind: kind.JSON},
		{name: "uuid invalid", raw: "nope", kind: kind.UUID},
		{name: "date number", raw: 10, kind: kind.Date},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Canonicalize(tt.raw, For(tt.kind))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDefault))
		})
	}
}

func TestFingerprint(t *testing.T) {
	bigValue, _ := new(big.Int).SetString("12234433444444455", 10)
	fp, err := FingerprintOf(bigValue, For(kind.BigInt))
	require.NoError(t, err)
	assert.Equal(t, "731746a587af8fdb9fce577caf7db2443d7005ae1fd4e1b543e3e907d4ded78a:'12234433444444455'::bigint", fp)

	hash, lit, ok := SplitFingerprint(fp)
	require.True(t, ok)
	assert.Equal(t, "'12234433444444455'::bigint", lit)
	assert.Equal(t, Hash(lit), hash)

	again, err := FingerprintOf(Expr(lit), For(kind.BigInt))
	require.NoError(t, err)
	assert.Equal(t, fp, again)

	_, _, ok = SplitFingerprint("abc:'1'::integer")
	assert.False(t, ok)
	_, _, ok = SplitFingerprint(Hash("x") + ":y")
	assert.False(t, ok)
}

func TestFingerprintRepresentationNoise(t *testing.T) {
	pairs := []struct {
		kind kind.Kind
		a, b interface{}
	}{
		{kind: kind.Integer, a: 10, b: "10"},
		{kind: kind.BigInt, a: int64(10), b: big.NewInt(10)},
		{kind: kind.Boolean, a: "yes", b: true},
		{kind: kind.Numeric, a: "1.50", b: 1.5},
		{kind: kind.JSONB, a: `{"a": [1, 2]}`, b: map[string]interface{}{"a": []int{1, 2}}},
		{kind: kind.DoublePrecision, a: json.Number("2"), b: 2},
	}
	for _, p := range pairs {
		fa, err := FingerprintOf(p.a, For(p.kind))
		require.NoError(t, err)
		fb, err := FingerprintOf(p.b, For(p.kind))
		require.NoError(t, err)
		assert.Equal(t, fa, fb, "%s: %v vs %v", p.kind, p.a, p.b)
	}
}
