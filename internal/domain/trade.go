package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trade is a single proposed rebalancing action. It is an immutable output
// value: nothing in this package executes or persists it.
type Trade struct {
	Ticker         string
	Action         Action
	Shares         decimal.Decimal
	EstimatedValue decimal.Decimal
}

// NewTrade builds a trade proposal, applying the output quantization:
// shares to 4 fractional digits, value to 2, both rounded half up.
// Intermediate computation stays at full precision; this is the only
// rounding point.
func NewTrade(ticker string, action Action, shares, estimatedValue decimal.Decimal) Trade {
	return Trade{
		Ticker:         ticker,
		Action:         action,
		Shares:         quantizeShares(shares),
		EstimatedValue: quantizeMoney(estimatedValue),
	}
}

// String returns a human-readable representation.
func (t Trade) String() string {
	return fmt.Sprintf("%s %s shares of %s (~%s)",
		t.Action, t.Shares, t.Ticker, t.EstimatedValue.StringFixed(moneyPrecision))
}
