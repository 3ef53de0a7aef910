package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Portfolio aggregates holdings, a target allocation and a cash balance.
// Every mutator validates before committing, so a failed write leaves the
// prior state intact. The aggregate is not synchronized: a caller sharing
// one Portfolio across goroutines owns the exclusivity discipline.
type Portfolio struct {
	holdings   []*Holding
	indexes    map[string]int // normalized ticker -> index into holdings
	allocation Allocation
	cash       decimal.Decimal
}

// NewPortfolio assembles a validated portfolio. Holdings keep their
// insertion order and must not share a ticker. The allocation map may be
// empty when no target has been configured yet.
func NewPortfolio(holdings []*Holding, allocation map[string]decimal.Decimal, cash decimal.Decimal) (*Portfolio, error) {
	if cash.IsNegative() {
		return nil, fmt.Errorf("cash cannot be negative, got %s", cash)
	}

	p := &Portfolio{
		indexes: make(map[string]int, len(holdings)),
		cash:    cash,
	}

	for _, h := range holdings {
		if err := p.AddHolding(h); err != nil {
			return nil, err
		}
	}

	if len(allocation) > 0 {
		if err := p.SetAllocation(allocation); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// AddHolding appends a holding, rejecting duplicate tickers. Stock already
// uppercases tickers, so the duplicate check is case-insensitive.
func (p *Portfolio) AddHolding(h *Holding) error {
	if h == nil {
		return errors.New("holding cannot be nil")
	}
	if _, ok := p.indexes[h.Stock.Ticker]; ok {
		return fmt.Errorf("duplicate holding for ticker: %s", h.Stock.Ticker)
	}

	p.indexes[h.Stock.Ticker] = len(p.holdings)
	p.holdings = append(p.holdings, h)

	return nil
}

// SetAllocation replaces the target allocation wholesale after full
// validation. On failure the previous allocation stays in place.
func (p *Portfolio) SetAllocation(raw map[string]decimal.Decimal) error {
	allocation, err := NewAllocation(raw)
	if err != nil {
		return err
	}

	p.allocation = allocation

	return nil
}

// Holdings returns the holdings in insertion order. The slice is shared;
// callers must not modify it.
func (p *Portfolio) Holdings() []*Holding {
	return p.holdings
}

// Allocation returns the current target allocation, nil when unset.
func (p *Portfolio) Allocation() Allocation {
	return p.allocation
}

// Cash returns the cash balance.
func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

// TotalValue sums the holdings' market values plus cash at full precision.
// Rounding is deferred to the output trades.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := p.cash
	for _, h := range p.holdings {
		total = total.Add(h.MarketValue())
	}

	return total
}

// CurrentWeights returns each holding's fraction of total portfolio value.
// A zero-value portfolio yields all-zero weights instead of dividing by zero.
func (p *Portfolio) CurrentWeights() map[string]decimal.Decimal {
	weights := make(map[string]decimal.Decimal, len(p.holdings))
	total := p.TotalValue()

	for _, h := range p.holdings {
		if total.IsZero() {
			weights[h.Stock.Ticker] = decimal.Zero
			continue
		}
		weights[h.Stock.Ticker] = h.MarketValue().Div(total)
	}

	return weights
}

// holdingByTicker returns the holding for a normalized ticker, nil when the
// portfolio does not hold it.
func (p *Portfolio) holdingByTicker(ticker string) *Holding {
	idx, ok := p.indexes[ticker]
	if !ok {
		return nil
	}

	return p.holdings[idx]
}

// allocationTickers returns the allocation's tickers sorted lexicographically
// so iteration order is deterministic.
func (p *Portfolio) allocationTickers() []string {
	tickers := make([]string, 0, len(p.allocation))
	for ticker := range p.allocation {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	return tickers
}
