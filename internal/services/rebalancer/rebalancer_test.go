package rebalancer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gutybv/rebalancer/internal/domain"
)

func testPortfolio(t *testing.T) *domain.Portfolio {
	t.Helper()

	meta, err := domain.NewStock("META", decimal.NewFromInt(500))
	require.NoError(t, err)
	aapl, err := domain.NewStock("AAPL", decimal.NewFromInt(200))
	require.NoError(t, err)

	holdingMeta, err := domain.NewHolding(meta, decimal.NewFromInt(10))
	require.NoError(t, err)
	holdingAapl, err := domain.NewHolding(aapl, decimal.NewFromInt(50))
	require.NoError(t, err)

	p, err := domain.NewPortfolio(
		[]*domain.Holding{holdingMeta, holdingAapl},
		map[string]decimal.Decimal{
			"META": decimal.RequireFromString("0.5"),
			"AAPL": decimal.RequireFromString("0.5"),
		},
		decimal.Zero,
	)
	require.NoError(t, err)
	return p
}

func TestServicePlan(t *testing.T) {
	svc := New(zap.NewNop())

	result, err := svc.Plan(testPortfolio(t), decimal.Zero)
	require.NoError(t, err)

	require.Len(t, result.Trades, 2)
	assert.Equal(t, domain.ActionSell, result.Trades[0].Action)
	assert.Equal(t, "AAPL", result.Trades[0].Ticker)
	assert.Equal(t, domain.ActionBuy, result.Trades[1].Action)
	assert.Equal(t, "META", result.Trades[1].Ticker)
}

func TestServicePlanPropagatesPreconditionErrors(t *testing.T) {
	svc := New(zap.NewNop())

	p, err := domain.NewPortfolio(nil, map[string]decimal.Decimal{
		"A": decimal.NewFromInt(1),
	}, decimal.Zero)
	require.NoError(t, err)

	_, err = svc.Plan(p, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoHoldings)
}

func TestServicePlanDoesNotMutate(t *testing.T) {
	svc := New(zap.NewNop())
	p := testPortfolio(t)
	before := p.TotalValue()

	_, err := svc.Plan(p, decimal.Zero)
	require.NoError(t, err)
	_, err = svc.Plan(p, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, p.TotalValue().Equal(before))
}
