package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardRoundingPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.00", "0.00"},
		{"0.01", "0.05"},
		{"0.05", "0.05"},
		{"0.99", "1.00"},
		{"1.00", "1.00"},
		{"1.99", "2.00"},
		{"2.375", "2.40"},
		{"4.1625", "4.20"},
		{"7.125", "7.15"},
		{"13.13", "13.15"},
	}

	policy := StandardRoundingPolicy{}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			got := policy.Apply(in)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestStandardRoundingPolicyNeverRoundsDown(t *testing.T) {
	policy := StandardRoundingPolicy{}
	step := decimal.RequireFromString("0.05")

	// Walk a fine grid of amounts and check the two rounding invariants:
	// the result never drops below the input and always lands on a 0.05
	// multiple.
	for cents := 0; cents <= 2000; cents++ {
		in := decimal.New(int64(cents), -3) // 0.000 .. 2.000 in 0.001 steps
		got := policy.Apply(in)

		require.True(t, got.GreaterThanOrEqual(in),
			"rounding %s down to %s", in, got)
		require.True(t, got.Mod(step).IsZero(),
			"%s is not a 0.05 multiple", got)
	}
}
