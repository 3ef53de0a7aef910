package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Rebalance precondition errors. Each aborts the call before any trade is
// generated.
var (
	ErrNoAllocation  = errors.New("no target allocation set")
	ErrNoHoldings    = errors.New("no holdings to rebalance")
	ErrZeroPortfolio = errors.New("zero-value portfolio")
)

// Rebalance computes the trades that move the portfolio toward its target
// allocation. threshold is the minimum drift, expressed as a fraction of
// total portfolio value, before a trade is generated; positions already
// within the threshold are left alone. Holdings whose ticker has no
// allocation entry are fully liquidated regardless of threshold.
//
// The portfolio is never modified: the result is a proposal to review, not
// an applied change. Calling Rebalance twice on an unmodified portfolio with
// the same threshold yields element-wise identical results.
func (p *Portfolio) Rebalance(threshold decimal.Decimal) (*RebalanceResult, error) {
	if threshold.IsNegative() {
		return nil, fmt.Errorf("threshold cannot be negative, got %s", threshold)
	}
	if len(p.allocation) == 0 {
		return nil, ErrNoAllocation
	}
	if len(p.holdings) == 0 {
		return nil, ErrNoHoldings
	}

	// Snapshot the total once so every target below is computed against the
	// same denominator.
	total := p.TotalValue()
	if total.IsZero() {
		return nil, ErrZeroPortfolio
	}

	warnings := p.coverageWarnings()

	var trades []Trade

	// Held but not allocated: liquidate the whole position. No threshold
	// gate here, any non-allocated position goes.
	for _, h := range p.holdings {
		if _, allocated := p.allocation[h.Stock.Ticker]; allocated {
			continue
		}
		if !h.Shares.IsPositive() {
			continue
		}
		trades = append(trades, NewTrade(h.Stock.Ticker, ActionSell, h.Shares, h.MarketValue()))
	}

	for _, ticker := range p.allocationTickers() {
		targetValue := total.Mul(p.allocation[ticker])

		holding := p.holdingByTicker(ticker)
		currentValue := decimal.Zero
		if holding != nil {
			currentValue = holding.MarketValue()
		}

		drift := currentValue.Sub(targetValue).Abs().Div(total)
		if drift.LessThanOrEqual(threshold) {
			continue
		}

		if holding == nil {
			// No price available to size a trade; surfaced as a coverage
			// warning above.
			continue
		}
		if holding.Stock.CurrentPrice.IsZero() {
			continue // untradeable
		}

		difference := targetValue.Sub(currentValue)
		action := ActionSell
		if difference.IsPositive() {
			action = ActionBuy
		}

		trades = append(trades, NewTrade(
			ticker,
			action,
			difference.Abs().Div(holding.Stock.CurrentPrice),
			difference.Abs(),
		))
	}

	// Sells first so cash is logically freed before the buys, tickers
	// alphabetical within each side.
	sort.Slice(trades, func(i, j int) bool {
		if trades[i].Action != trades[j].Action {
			return trades[i].Action == ActionSell
		}
		return trades[i].Ticker < trades[j].Ticker
	})

	return &RebalanceResult{Trades: trades, Warnings: warnings}, nil
}

// coverageWarnings reports allocation entries that cannot be traded because
// no holding carries a price for them. Informational only.
func (p *Portfolio) coverageWarnings() []string {
	var warnings []string
	for _, ticker := range p.allocationTickers() {
		weight := p.allocation[ticker]
		if !weight.IsPositive() {
			continue
		}
		if p.holdingByTicker(ticker) != nil {
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"%s is in allocation (%s) but not in holdings: add a zero-share holding with a current price to enable trading",
			ticker, formatPercent(weight)))
	}

	return warnings
}
