package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromFloat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		// 0.1 must come out as the textual decimal, not the nearest binary
		// fraction 0.1000000000000000055511151231257827...
		{name: "one tenth", value: 0.1, want: "0.1"},
		{name: "sum of tenths", value: 0.1 + 0.2, want: "0.30000000000000004"},
		{name: "whole number", value: 585, want: "585"},
		{name: "zero", value: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecimalFromFloat(tt.value)
			require.NoError(t, err)
			assert.True(t, d.Equal(decimal.RequireFromString(tt.want)), "got %s", d)
		})
	}
}

func TestQuantizeRoundsHalfUp(t *testing.T) {
	assert.Equal(t, "0.0001", quantizeShares(decimal.RequireFromString("0.00005")).String())
	assert.Equal(t, "1.2346", quantizeShares(decimal.RequireFromString("1.23455")).String())
	assert.Equal(t, "0.01", quantizeMoney(decimal.RequireFromString("0.005")).String())
	assert.Equal(t, "99.99", quantizeMoney(decimal.RequireFromString("99.994")).String())
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "40.0%", formatPercent(decimal.RequireFromString("0.4")))
	assert.Equal(t, "33.3%", formatPercent(decimal.RequireFromString("0.333")))
	assert.Equal(t, "0.0%", formatPercent(decimal.Zero))
}
