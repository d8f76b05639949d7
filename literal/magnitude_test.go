package literal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlint/pg-column/kind"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		in          string
		whole, frac int
	}{
		{in: "123.45", whole: 3, frac: 2},
		{in: "1e37", whole: 38},
		{in: "1.50", whole: 1, frac: 1},
		{in: "0", whole: 0, frac: 0},
		{in: "0.05", frac: 2},
		{in: "-12000", whole: 5},
		{in: "1e10000000", whole: 10000001},
		{in: "1e-10000000", frac: 10000000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			require.NoError(t, err)
			whole, frac := Digits(d)
			assert.Equal(t, tt.whole, whole)
			assert.Equal(t, tt.frac, frac)
		})
	}
}

func TestFitsFloat(t *testing.T) {
	tests := []struct {
		in   string
		kind kind.Kind
		want bool
	}{
		{in: "0", kind: kind.Real, want: true},
		{in: "1e37", kind: kind.Real, want: true},
		{in: "-1e37", kind: kind.Real, want: true},
		{in: "1.5e37", kind: kind.Real},
		{in: "1e38", kind: kind.Real},
		{in: "1e-37", kind: kind.Real, want: true},
		{in: "1e-38", kind: kind.Real},
		{in: "1e308", kind: kind.DoublePrecision, want: true},
		{in: "1e309", kind: kind.DoublePrecision},
		{in: "1e10000000", kind: kind.DoublePrecision},
		{in: "-1e-10000000", kind: kind.DoublePrecision},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FitsFloat(d, FloatExponent(tt.kind)))
		})
	}
}

func TestFitsNumeric(t *testing.T) {
	assert.True(t, FitsNumeric(decimal.New(1, MaxNumericWhole-1)))
	assert.False(t, FitsNumeric(decimal.New(1, MaxNumericWhole)))
	assert.True(t, FitsNumeric(decimal.New(1, -MaxNumericFrac)))
	assert.False(t, FitsNumeric(decimal.New(1, -MaxNumericFrac-1)))
}

func TestToDecimalZero(t *testing.T) {
	d, err := ToDecimal("0e10000000")
	require.NoError(t, err)
	assert.Equal(t, int32(0), d.Exponent())
	assert.Equal(t, "0", d.String())
}
