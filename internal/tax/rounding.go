package tax

import "github.com/shopspring/decimal"

// RoundingPolicy rounds a raw tax amount to the currency increment the
// business charges in. Policies are pure: same input, same output, no error.
type RoundingPolicy interface {
	Apply(amount decimal.Decimal) decimal.Decimal
}

// roundingStep is the increment taxes are rounded up to.
var roundingStep = decimal.New(5, -2) // 0.05

// StandardRoundingPolicy rounds up to the nearest 0.05, then truncates to 2
// decimal places. The truncation only absorbs representation noise: the
// ceiling already lands on an exact multiple of 0.05, so in exact decimal
// arithmetic it is a no-op.
type StandardRoundingPolicy struct{}

func (StandardRoundingPolicy) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(roundingStep).Ceil().Mul(roundingStep).Truncate(2)
}
