// Package rebalancer is the operations-facing layer around the domain
// rebalance computation: it runs a plan, logs every proposal for review and
// hands the result back untouched. Nothing here executes trades or mutates
// the portfolio.
package rebalancer

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Gutybv/rebalancer/internal/domain"
)

// Service computes rebalance plans for operator review.
type Service struct {
	l *zap.Logger
}

// New creates a rebalancer service.
func New(l *zap.Logger) *Service {
	return &Service{l: l}
}

// Plan runs the rebalance computation at the given threshold and logs each
// proposed trade and warning under a per-run correlation id. Precondition
// failures (empty allocation, empty holdings, zero-value portfolio) abort
// with the domain error wrapped for context.
func (s *Service) Plan(p *domain.Portfolio, threshold decimal.Decimal) (*domain.RebalanceResult, error) {
	l := s.l.With(zap.String("plan_id", uuid.NewString()))

	result, err := p.Rebalance(threshold)
	if err != nil {
		return nil, errors.Wrap(err, "rebalance failed")
	}

	for _, w := range result.Warnings {
		l.Warn("allocation coverage gap", zap.String("warning", w))
	}

	for _, t := range result.Trades {
		l.Info("trade proposed",
			zap.String("ticker", t.Ticker),
			zap.Stringer("action", t.Action),
			zap.String("shares", t.Shares.String()),
			zap.String("estimated_value", t.EstimatedValue.StringFixed(2)))
	}

	l.Info("rebalance plan ready",
		zap.String("threshold", threshold.String()),
		zap.Int("trades", len(result.Trades)),
		zap.Bool("balanced", result.IsBalanced()),
		zap.String("total_buy", result.TotalBuyValue().StringFixed(2)),
		zap.String("total_sell", result.TotalSellValue().StringFixed(2)),
		zap.String("net_cash_flow", result.NetCashFlow().StringFixed(2)))

	return result, nil
}
