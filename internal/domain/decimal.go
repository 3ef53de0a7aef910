// Package domain defines the core entities of the portfolio rebalancer.
package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// sharePrecision is the number of fractional digits kept on share counts.
	sharePrecision = 4
	// moneyPrecision is the number of fractional digits kept on monetary values.
	moneyPrecision = 2
)

// DecimalFromFloat converts a float to decimal through its shortest textual
// representation, so a literal like 0.1 becomes exactly 0.1 instead of the
// nearest binary fraction.
func DecimalFromFloat(v float64) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot convert %v to decimal: %w", v, err)
	}
	return d, nil
}

// quantizeShares rounds a share count half up to sharePrecision digits.
// Round is half away from zero; share counts are never negative here,
// so this is round half up.
func quantizeShares(d decimal.Decimal) decimal.Decimal {
	return d.Round(sharePrecision)
}

// quantizeMoney rounds a monetary value half up to moneyPrecision digits.
func quantizeMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPrecision)
}

// formatPercent renders a weight fraction as a percentage with one
// fractional digit, e.g. 0.4 -> "40.0%".
func formatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
