package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding is a portfolio-specific position: how many shares of a stock the
// portfolio owns. The stock reference is shared market data, the share count
// belongs to this portfolio alone.
type Holding struct {
	Stock  *Stock
	Shares decimal.Decimal
}

// NewHolding creates a validated holding. Fractional shares are allowed,
// negative share counts are not. Zero shares are valid and serve to register
// a price for a ticker the portfolio wants to start buying.
func NewHolding(stock *Stock, shares decimal.Decimal) (*Holding, error) {
	if stock == nil {
		return nil, errors.New("holding requires a stock")
	}
	if shares.IsNegative() {
		return nil, fmt.Errorf("shares cannot be negative for %s, got %s", stock.Ticker, shares)
	}

	return &Holding{Stock: stock, Shares: shares}, nil
}

// MarketValue returns the current value of the position at full precision.
func (h *Holding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.Stock.CurrentPrice)
}

// String returns a human-readable representation.
func (h *Holding) String() string {
	return fmt.Sprintf("%s: %s shares = %s", h.Stock.Ticker, h.Shares, h.MarketValue().StringFixed(moneyPrecision))
}
