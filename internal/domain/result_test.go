package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRebalanceResultEmpty(t *testing.T) {
	result := &RebalanceResult{}

	assert.True(t, result.IsBalanced())
	assert.True(t, result.TotalBuyValue().IsZero())
	assert.True(t, result.TotalSellValue().IsZero())
	assert.True(t, result.NetCashFlow().IsZero())
	assert.Equal(t, "balanced, no trades needed", result.String())
}

func TestRebalanceResultTotals(t *testing.T) {
	result := &RebalanceResult{
		Trades: []Trade{
			NewTrade("A", ActionSell, decimal.NewFromInt(30), decimal.NewFromInt(3000)),
			NewTrade("B", ActionBuy, decimal.NewFromInt(10), decimal.NewFromInt(1000)),
			NewTrade("C", ActionBuy, decimal.NewFromInt(5), decimal.NewFromInt(500)),
		},
	}

	assert.False(t, result.IsBalanced())
	assert.True(t, result.TotalSellValue().Equal(decimal.NewFromInt(3000)))
	assert.True(t, result.TotalBuyValue().Equal(decimal.NewFromInt(1500)))
	assert.True(t, result.NetCashFlow().Equal(decimal.NewFromInt(1500)))
}

func TestTradeQuantization(t *testing.T) {
	trade := NewTrade("A", ActionBuy,
		decimal.RequireFromString("10.123456"),
		decimal.RequireFromString("1234.567"))

	assert.Equal(t, "10.1235", trade.Shares.String())
	assert.Equal(t, "1234.57", trade.EstimatedValue.String())
}

func TestTradeString(t *testing.T) {
	trade := NewTrade("META", ActionBuy, decimal.NewFromInt(5), decimal.NewFromInt(2500))
	assert.Equal(t, "BUY 5 shares of META (~2500.00)", trade.String())
}
