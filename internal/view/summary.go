// Package view renders portfolio state and trade plans for the terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Gutybv/rebalancer/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(subtle)
)

// Summary renders the current portfolio state: per-holding shares, price,
// value and current weight against the target, plus a cash row.
func Summary(p *domain.Portfolio) string {
	var b strings.Builder

	total := p.TotalValue()
	weights := p.CurrentWeights()
	allocation := p.Allocation()

	b.WriteString(headerStyle.Render("Portfolio Summary"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Total Value: %s  (Cash: %s)\n\n",
		total.StringFixed(2), p.Cash().StringFixed(2)))

	b.WriteString(dimStyle.Render(fmt.Sprintf("%-8s %10s %10s %12s %8s %8s",
		"Ticker", "Shares", "Price", "Value", "Weight", "Target")))
	b.WriteByte('\n')

	for _, h := range p.Holdings() {
		ticker := h.Stock.Ticker
		b.WriteString(fmt.Sprintf("%-8s %10s %10s %12s %8s %8s\n",
			ticker,
			h.Shares.StringFixed(2),
			h.Stock.CurrentPrice.StringFixed(2),
			h.MarketValue().StringFixed(2),
			percent(weights[ticker]),
			percent(allocation[ticker])))
	}

	if p.Cash().IsPositive() {
		cashWeight := decimal.Zero
		if !total.IsZero() {
			cashWeight = p.Cash().Div(total)
		}
		b.WriteString(fmt.Sprintf("%-8s %10s %10s %12s %8s %8s\n",
			"CASH", "", "", p.Cash().StringFixed(2), percent(cashWeight), percent(decimal.Zero)))
	}

	return b.String()
}

// Plan renders the proposed trades, the warnings and the buy/sell/net
// totals.
func Plan(result *domain.RebalanceResult) string {
	var b strings.Builder

	if len(result.Warnings) > 0 {
		b.WriteString(warnStyle.Render("Warnings"))
		b.WriteByte('\n')
		for _, w := range result.Warnings {
			b.WriteString("  ! " + w + "\n")
		}
		b.WriteByte('\n')
	}

	if result.IsBalanced() {
		b.WriteString(headerStyle.Render("Portfolio is balanced within threshold. No trades needed."))
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(headerStyle.Render("Rebalancing Trades"))
	b.WriteByte('\n')
	for _, t := range result.Trades {
		b.WriteString("  -> " + t.String() + "\n")
	}
	b.WriteByte('\n')

	b.WriteString(fmt.Sprintf("  Total buys:  %s\n", result.TotalBuyValue().StringFixed(2)))
	b.WriteString(fmt.Sprintf("  Total sells: %s\n", result.TotalSellValue().StringFixed(2)))
	b.WriteString(fmt.Sprintf("  Net cash:    %s\n", result.NetCashFlow().StringFixed(2)))

	return b.String()
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
