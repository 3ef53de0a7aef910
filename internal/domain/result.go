package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RebalanceResult is the structured output of a rebalance: ordered trade
// proposals plus advisory warnings about allocation entries that could not
// be traded.
type RebalanceResult struct {
	Trades   []Trade
	Warnings []string
}

// TotalBuyValue sums the estimated value of the BUY trades.
func (r *RebalanceResult) TotalBuyValue() decimal.Decimal {
	return r.totalByAction(ActionBuy)
}

// TotalSellValue sums the estimated value of the SELL trades.
func (r *RebalanceResult) TotalSellValue() decimal.Decimal {
	return r.totalByAction(ActionSell)
}

func (r *RebalanceResult) totalByAction(action Action) decimal.Decimal {
	total := decimal.Zero
	for _, t := range r.Trades {
		if t.Action == action {
			total = total.Add(t.EstimatedValue)
		}
	}

	return total
}

// NetCashFlow is positive when the sells raise more cash than the buys
// consume.
func (r *RebalanceResult) NetCashFlow() decimal.Decimal {
	return r.TotalSellValue().Sub(r.TotalBuyValue())
}

// IsBalanced reports whether the portfolio needs no trades.
func (r *RebalanceResult) IsBalanced() bool {
	return len(r.Trades) == 0
}

// String returns a human-readable representation.
func (r *RebalanceResult) String() string {
	if r.IsBalanced() {
		return "balanced, no trades needed"
	}

	return fmt.Sprintf("%d trades, buy=%s sell=%s net=%s",
		len(r.Trades),
		r.TotalBuyValue().StringFixed(moneyPrecision),
		r.TotalSellValue().StringFixed(moneyPrecision),
		r.NetCashFlow().StringFixed(moneyPrecision))
}
