// Package setup provides the interactive wizard that builds a portfolio
// YAML file for the rebalancer.
package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Gutybv/rebalancer/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// RunTUI launches the terminal portfolio wizard and writes the resulting
// YAML file. The file is validated through the domain constructors before
// it is saved, so the wizard cannot produce a portfolio the rebalancer
// would reject.
func RunTUI() error {
	var (
		holdings  []config.HoldingTmp
		weights   = make(map[string]string)
		cashStr   = "0"
		threshold = "0.01"
		filename  = "portfolio.yaml"
		confirm   bool
	)

	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("REBALANCER PORTFOLIO WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render(
		"Describe your holdings and target allocation.\n" +
			"Tip: add a zero-share holding for any ticker you want to start buying.\n"))

	// holdings
	fmt.Println(stepStyle.Render("STEP 1: HOLDINGS"))
	for {
		var (
			ticker    string
			priceStr  string
			sharesStr string
			more      bool
		)
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Ticker").
					Description("Instrument symbol (e.g. AAPL)").
					Value(&ticker).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("ticker cannot be empty")
						}
						return nil
					}),
				huh.NewInput().
					Title("Current Price").
					Description("Price per share (e.g. 228.50)").
					Value(&priceStr).
					Validate(validateNonNegativeDecimal),
				huh.NewInput().
					Title("Shares").
					Description("Shares owned, fractional allowed (0 to register the price only)").
					Value(&sharesStr).
					Validate(validateNonNegativeDecimal),
				huh.NewConfirm().
					Title("Add another holding?").
					Value(&more),
			),
		).Run()
		if err != nil {
			return err
		}

		holdings = append(holdings, config.HoldingTmp{Ticker: ticker, Price: priceStr, Shares: sharesStr})
		if !more {
			break
		}
	}

	// allocation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("REBALANCER PORTFOLIO WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: TARGET ALLOCATION"))
	for _, h := range holdings {
		weightStr := "0"
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Target weight for %s", h.Ticker)).
					Description("Fraction of total value in [0, 1]; all weights must sum to 1").
					Value(&weightStr).
					Validate(validateWeight),
			),
		).Run()
		if err != nil {
			return err
		}
		weights[h.Ticker] = weightStr
	}

	// cash and threshold
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("REBALANCER PORTFOLIO WIZARD"))
	fmt.Println(stepStyle.Render("STEP 3: CASH & THRESHOLD"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cash Balance").
				Description("Idle cash to deploy (e.g. 2000)").
				Value(&cashStr).
				Validate(validateNonNegativeDecimal),
			huh.NewInput().
				Title("Drift Threshold").
				Description("Minimum drift before a trade, fraction of total value (e.g. 0.01 = 1%)").
				Value(&threshold).
				Validate(validateNonNegativeDecimal),
			huh.NewInput().
				Title("Output File").
				Value(&filename),
		),
	).Run()
	if err != nil {
		return err
	}

	cfgTmp := config.ConfigTmp{
		Threshold:  threshold,
		Cash:       cashStr,
		Holdings:   holdings,
		Allocation: weights,
	}

	// run the full validation chain before offering to save
	cfg, err := cfgTmp.Parse()
	if err != nil {
		return err
	}
	if _, err := cfg.Portfolio(); err != nil {
		return err
	}

	// confirmation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("REBALANCER PORTFOLIO WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf("Holdings: %d\nCash: %s\nThreshold: %s\nFile: %s\n",
		len(holdings), cashStr, threshold, filename)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save portfolio file?").
				Affirmative("Yes, save").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	data, err := yaml.Marshal(cfgTmp)
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save portfolio file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(
		fmt.Sprintf("\nPortfolio saved to %s\nRun: rebalancer --config %s", filename, filename)))
	return nil
}

func validateNonNegativeDecimal(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateWeight(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}
