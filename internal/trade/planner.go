package trade

import (
	"context"

	"github.com/haliule/bybit-risk-trader/internal/exchange"
	"github.com/shopspring/decimal"
)

const (
	// Category is the Bybit market category for USDT-margined perpetuals
	Category = "linear"
	// AccountType is the Bybit unified trading account type
	AccountType = "UNIFIED"
	// QuoteCoin is the quote/settlement currency
	QuoteCoin = "USDT"

	// positionSizePrecision rounds the quote notional to whole currency units
	positionSizePrecision = 0
	// quantityPrecision is the default base-asset precision. Real venues
	// expose per-symbol lot sizes; 3 decimals is the fallback used here.
	quantityPrecision = 3
)

var oneHundred = decimal.NewFromInt(100)

// PlanningExchange is the read-only collaborator surface the planner needs
type PlanningExchange interface {
	exchange.MarketDataProvider
	exchange.AccountProvider
}

// Plan derives a sized TradePlan from a request: it resolves the entry
// price, validates stop-loss/take-profit against the side, and sizes the
// position so that hitting the stop loses exactly the configured risk
// percentage of the wallet balance.
//
// Validation failures return *ValidationError before the balance is
// fetched; upstream read failures return *UpstreamError.
func Plan(ctx context.Context, req TradeRequest, exch PlanningExchange) (*TradePlan, error) {
	side, err := ParseSide(string(req.Side))
	if err != nil {
		return nil, &ValidationError{Side: req.Side, Reason: err.Error(),
			StopLoss: req.StopLoss, TakeProfit: req.TakeProfit}
	}

	var entryPrice decimal.Decimal
	if req.IsLimit() {
		entryPrice = *req.Price
	} else {
		entryPrice, err = exch.GetLastPrice(ctx, Category, req.Symbol)
		if err != nil {
			return nil, &UpstreamError{Operation: "fetch last price for " + req.Symbol, Err: err}
		}
	}

	if err := validateStops(side, entryPrice, req.StopLoss, req.TakeProfit); err != nil {
		return nil, err
	}

	balance, err := exch.GetWalletBalance(ctx, AccountType, QuoteCoin)
	if err != nil {
		return nil, &UpstreamError{Operation: "fetch " + QuoteCoin + " wallet balance", Err: err}
	}

	riskAmount := balance.Mul(req.RiskPercentage).Div(oneHundred)

	distanceToStopLoss := entryPrice.Sub(req.StopLoss).Abs().Div(entryPrice)
	if distanceToStopLoss.IsZero() {
		return nil, &ValidationError{
			Side:       side,
			EntryPrice: entryPrice,
			StopLoss:   req.StopLoss,
			TakeProfit: req.TakeProfit,
			Reason:     "stop loss equals entry price, stop distance is zero",
		}
	}

	positionSize := riskAmount.Div(distanceToStopLoss).Round(positionSizePrecision)
	quantity := positionSize.Div(entryPrice).Round(quantityPrecision)

	return &TradePlan{
		Side:           side,
		EntryPrice:     entryPrice,
		StopLoss:       req.StopLoss,
		TakeProfit:     req.TakeProfit,
		RiskPercentage: req.RiskPercentage,
		RiskAmount:     riskAmount,
		PositionSize:   positionSize,
		Quantity:       quantity,
	}, nil
}

// validateStops checks stop-loss and take-profit against the entry price
// for the given side. A buy must stop below entry and target at-or-above
// it; a sell is the mirror image.
func validateStops(side Side, entryPrice, stopLoss, takeProfit decimal.Decimal) error {
	invalid := false
	switch side {
	case SideBuy:
		invalid = stopLoss.GreaterThan(entryPrice) || takeProfit.LessThan(entryPrice)
	case SideSell:
		invalid = stopLoss.LessThan(entryPrice) || takeProfit.GreaterThan(entryPrice)
	}

	if invalid {
		return &ValidationError{
			Side:       side,
			EntryPrice: entryPrice,
			StopLoss:   stopLoss,
			TakeProfit: takeProfit,
			Reason:     "stop loss or take profit on the wrong side of the entry price",
		}
	}
	return nil
}
