package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// The tolerance band absorbs rounding of input weights, e.g. thirds
// entered as 0.333/0.333/0.334.
var (
	allocationSumMin = decimal.RequireFromString("0.999")
	allocationSumMax = decimal.RequireFromString("1.001")

	weightOne = decimal.NewFromInt(1)
)

// Allocation maps normalized tickers to target weights. A valid table has
// every weight in [0, 1] and the weights summing to 1 within the tolerance
// band.
type Allocation map[string]decimal.Decimal

// NewAllocation normalizes ticker keys (trim, uppercase) and validates the
// table as a whole. The raw map is left untouched and nothing is returned
// on failure, so a caller replacing an existing table keeps the old one
// when the new one is rejected.
func NewAllocation(raw map[string]decimal.Decimal) (Allocation, error) {
	normalized := make(Allocation, len(raw))
	for ticker, weight := range raw {
		key := strings.ToUpper(strings.TrimSpace(ticker))
		if _, ok := normalized[key]; ok {
			return nil, fmt.Errorf("duplicate ticker in allocation: %s", key)
		}
		normalized[key] = weight
	}

	if err := normalized.validate(); err != nil {
		return nil, err
	}

	return normalized, nil
}

func (a Allocation) validate() error {
	sum := decimal.Zero
	for ticker, weight := range a {
		if weight.IsNegative() || weight.GreaterThan(weightOne) {
			return fmt.Errorf("allocation for %s must be between 0 and 1, got %s", ticker, weight)
		}
		sum = sum.Add(weight)
	}

	if sum.LessThan(allocationSumMin) || sum.GreaterThan(allocationSumMax) {
		return fmt.Errorf("allocation must sum to 1.0, got %s", sum)
	}

	return nil
}
