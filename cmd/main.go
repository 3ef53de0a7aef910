// Command rebalancer computes the trades needed to move a portfolio toward
// its target allocation and prints them for review. It never executes
// trades.
//
// Usage:
//
//	rebalancer --config portfolio.yaml
//	rebalancer --config portfolio.yaml --threshold 0.05
//	rebalancer setup
//
// The setup subcommand launches an interactive wizard that writes the
// portfolio YAML file.
package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Gutybv/rebalancer/config"
	"github.com/Gutybv/rebalancer/internal/services/rebalancer"
	"github.com/Gutybv/rebalancer/internal/setup"
	"github.com/Gutybv/rebalancer/internal/view"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	portfolio, err := cfg.Portfolio()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	result, err := rebalancer.New(logger).Plan(portfolio, cfg.Threshold)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(view.Summary(portfolio))
	fmt.Println(view.Plan(result))
}
