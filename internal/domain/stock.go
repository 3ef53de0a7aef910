package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Stock is market data for a single instrument: a ticker and its current
// price. One Stock may back many holdings across portfolios; it is never
// mutated after construction.
type Stock struct {
	Ticker       string
	CurrentPrice decimal.Decimal
}

// NewStock creates a validated stock. The ticker is trimmed and uppercased.
// A zero price is allowed (delisted or not yet priced), a negative one is not.
func NewStock(ticker string, price decimal.Decimal) (*Stock, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, errors.New("ticker cannot be empty")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative for %s, got %s", ticker, price)
	}

	return &Stock{Ticker: ticker, CurrentPrice: price}, nil
}

// String returns a human-readable representation.
func (s *Stock) String() string {
	return fmt.Sprintf("%s @ %s", s.Ticker, s.CurrentPrice.StringFixed(moneyPrecision))
}
