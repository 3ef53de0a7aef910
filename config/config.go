// Package config loads portfolio descriptions from YAML files or flags and
// turns them into validated domain objects.
package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Gutybv/rebalancer/internal/domain"
)

// DefaultThreshold suppresses trades for positions that drifted less than 1%
// of total portfolio value from their target.
var DefaultThreshold = decimal.RequireFromString("0.01")

// Config is a parsed portfolio description. All numeric fields are exact
// decimals; the YAML file carries them as strings so no value ever passes
// through a binary float.
type Config struct {
	Threshold  decimal.Decimal
	Cash       decimal.Decimal
	Holdings   []Holding
	Allocation map[string]decimal.Decimal
}

// Holding is one position line of the portfolio file.
type Holding struct {
	Ticker string
	Price  decimal.Decimal
	Shares decimal.Decimal
}

// ConfigTmp mirrors the YAML layout with string-typed numbers. The setup
// wizard marshals this same struct when generating a file.
type ConfigTmp struct {
	Threshold  string            `yaml:"threshold,omitempty"`
	Cash       string            `yaml:"cash,omitempty"`
	Holdings   []HoldingTmp      `yaml:"holdings"`
	Allocation map[string]string `yaml:"allocation"`
}

// HoldingTmp is the YAML form of a single holding.
type HoldingTmp struct {
	Ticker string `yaml:"ticker"`
	Price  string `yaml:"price"`
	Shares string `yaml:"shares"`
}

// Get reads the portfolio file named by the -config flag, applying the
// optional -threshold override.
func Get() (*Config, error) {
	path := flag.String("config", "portfolio.yaml", "path to yaml portfolio file")
	threshold := flag.String("threshold", "", "drift threshold override, fraction of total value (e.g. 0.05)")
	flag.Parse()

	cfg, err := FromFile(*path)
	if err != nil {
		return nil, err
	}

	if *threshold != "" {
		t, err := decimal.NewFromString(*threshold)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --threshold=%s", *threshold)
		}
		cfg.Threshold = t
	}

	return cfg, nil
}

// FromFile parses a portfolio YAML file.
func FromFile(path string) (*Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	var tmp ConfigTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	return tmp.Parse()
}

// Parse converts the string-typed YAML form into exact decimals. Missing
// threshold and cash default to 1% and zero.
func (t ConfigTmp) Parse() (*Config, error) {
	cfg := &Config{
		Threshold:  DefaultThreshold,
		Cash:       decimal.Zero,
		Allocation: make(map[string]decimal.Decimal, len(t.Allocation)),
	}

	var err error
	if t.Threshold != "" {
		cfg.Threshold, err = decimal.NewFromString(t.Threshold)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid threshold %q", t.Threshold)
		}
	}
	if t.Cash != "" {
		cfg.Cash, err = decimal.NewFromString(t.Cash)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cash %q", t.Cash)
		}
	}

	for _, h := range t.Holdings {
		price, err := decimal.NewFromString(h.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid price %q for %s", h.Price, h.Ticker)
		}
		shares, err := decimal.NewFromString(h.Shares)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid shares %q for %s", h.Shares, h.Ticker)
		}
		cfg.Holdings = append(cfg.Holdings, Holding{Ticker: h.Ticker, Price: price, Shares: shares})
	}

	for ticker, weight := range t.Allocation {
		w, err := decimal.NewFromString(weight)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid weight %q for %s", weight, ticker)
		}
		cfg.Allocation[ticker] = w
	}

	return cfg, nil
}

// Portfolio assembles the validated domain portfolio described by the
// config. Domain invariants (ticker normalization, duplicate checks,
// allocation sum) are enforced here, so a bad file fails before any
// computation runs.
func (c *Config) Portfolio() (*domain.Portfolio, error) {
	holdings := make([]*domain.Holding, 0, len(c.Holdings))
	for _, h := range c.Holdings {
		stock, err := domain.NewStock(h.Ticker, h.Price)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stock")
		}
		holding, err := domain.NewHolding(stock, h.Shares)
		if err != nil {
			return nil, errors.Wrap(err, "invalid holding")
		}
		holdings = append(holdings, holding)
	}

	p, err := domain.NewPortfolio(holdings, c.Allocation, c.Cash)
	if err != nil {
		return nil, errors.Wrap(err, "invalid portfolio")
	}

	return p, nil
}
