package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/haliule/bybit-risk-trader/internal/trade"
	"github.com/shopspring/decimal"
)

// cliFlags holds the raw command-line inputs before validation. Numeric
// flags are kept as strings so absence is detectable and the operator's
// exact decimal input survives parsing.
type cliFlags struct {
	Symbol         string
	Side           string
	Price          string
	StopLoss       string
	TakeProfit     string
	RiskPercentage string

	EnvFile string
	Demo    bool
	Testnet bool
}

// registerFlags registers all command-line flags with the default flag set
func registerFlags() *cliFlags {
	f := &cliFlags{}

	flag.StringVar(&f.Symbol, "symbol", "", "Name of the symbol to trade (e.g. BTCUSDT)")
	flag.StringVar(&f.Side, "side", "", "Trade side: Buy or Sell")
	flag.StringVar(&f.Price, "price", "", "Limit order price (omit for a market order)")
	flag.StringVar(&f.StopLoss, "stopLoss", "", "Stop loss price")
	flag.StringVar(&f.TakeProfit, "takeProfit", "", "Take profit price")
	flag.StringVar(&f.RiskPercentage, "riskPercentage", "", "Risk percentage of balance")

	flag.StringVar(&f.EnvFile, "env", ".env", "Environment file path")
	flag.BoolVar(&f.Demo, "demo", false, "Use demo trading environment (paper trading)")
	flag.BoolVar(&f.Testnet, "testnet", false, "Use testnet environment")

	return f
}

// buildRequest validates the flags and assembles a TradeRequest. All
// problems are collected so the operator sees every mistake at once.
func buildRequest(f *cliFlags) (trade.TradeRequest, error) {
	var problems []string

	if f.Symbol == "" {
		problems = append(problems, "-symbol is required")
	}

	side, err := trade.ParseSide(f.Side)
	if err != nil {
		problems = append(problems, err.Error())
	}

	var price *decimal.Decimal
	if f.Price != "" {
		p, err := parsePositiveDecimal("-price", f.Price)
		if err != nil {
			problems = append(problems, err.Error())
		} else {
			price = &p
		}
	}

	stopLoss, err := parsePositiveDecimal("-stopLoss", f.StopLoss)
	if err != nil {
		problems = append(problems, err.Error())
	}

	takeProfit, err := parsePositiveDecimal("-takeProfit", f.TakeProfit)
	if err != nil {
		problems = append(problems, err.Error())
	}

	riskPercentage, err := parsePositiveDecimal("-riskPercentage", f.RiskPercentage)
	if err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return trade.TradeRequest{}, fmt.Errorf("invalid arguments:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return trade.TradeRequest{
		Symbol:         f.Symbol,
		Side:           side,
		Price:          price,
		StopLoss:       stopLoss,
		TakeProfit:     takeProfit,
		RiskPercentage: riskPercentage,
	}, nil
}

func parsePositiveDecimal(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("%s is required", name)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a number, got %q", name, value)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}
