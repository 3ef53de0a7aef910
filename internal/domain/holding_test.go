package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHolding(t *testing.T) {
	stock, err := NewStock("META", decimal.NewFromInt(500))
	require.NoError(t, err)

	t.Run("negative shares rejected", func(t *testing.T) {
		_, err := NewHolding(stock, decimal.NewFromInt(-5))
		assert.Error(t, err)
	})

	t.Run("nil stock rejected", func(t *testing.T) {
		_, err := NewHolding(nil, decimal.NewFromInt(5))
		assert.Error(t, err)
	})

	t.Run("zero shares allowed", func(t *testing.T) {
		h, err := NewHolding(stock, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, h.MarketValue().IsZero())
	})
}

func TestHoldingMarketValue(t *testing.T) {
	tests := []struct {
		name   string
		price  decimal.Decimal
		shares decimal.Decimal
		want   decimal.Decimal
	}{
		{
			name:   "whole shares",
			price:  decimal.NewFromInt(500),
			shares: decimal.NewFromInt(10),
			want:   decimal.NewFromInt(5000),
		},
		{
			name:   "fractional shares",
			price:  decimal.NewFromInt(200),
			shares: decimal.RequireFromString("0.5"),
			want:   decimal.NewFromInt(100),
		},
		{
			name:   "zero price",
			price:  decimal.Zero,
			shares: decimal.NewFromInt(10),
			want:   decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock, err := NewStock("X", tt.price)
			require.NoError(t, err)
			h, err := NewHolding(stock, tt.shares)
			require.NoError(t, err)
			assert.True(t, h.MarketValue().Equal(tt.want), "got %s", h.MarketValue())
		})
	}
}
