package trade

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side represents the direction of a trade
type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

// ParseSide normalizes a side string to its canonical capitalized form.
// Comparison is case-insensitive; anything other than buy/sell is rejected.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return "", fmt.Errorf("invalid side %q: must be Buy or Sell", s)
	}
}

// TradeRequest holds the operator's input for a single run
type TradeRequest struct {
	Symbol         string
	Side           Side
	Price          *decimal.Decimal // nil means market order
	StopLoss       decimal.Decimal
	TakeProfit     decimal.Decimal
	RiskPercentage decimal.Decimal
}

// IsLimit reports whether the request carries an explicit limit price
func (r TradeRequest) IsLimit() bool {
	return r.Price != nil
}

// TradePlan is the fully sized trade derived from a TradeRequest.
// Plans are only produced by the planner; a plan whose stop/target are
// inconsistent with its side is never constructed.
type TradePlan struct {
	Side           Side
	EntryPrice     decimal.Decimal
	StopLoss       decimal.Decimal
	TakeProfit     decimal.Decimal
	RiskPercentage decimal.Decimal
	RiskAmount     decimal.Decimal // quote currency units at risk
	PositionSize   decimal.Decimal // quote-currency notional, whole units
	Quantity       decimal.Decimal // base-asset order quantity, 3 decimals
}

// OutcomeStatus describes how a confirmed-or-declined run ended
type OutcomeStatus string

const (
	StatusSubmitted OutcomeStatus = "Submitted"
	StatusCancelled OutcomeStatus = "Cancelled"
)

// Outcome is the executor's terminal result. Cancellation is a normal
// outcome, not an error.
type Outcome struct {
	Status  OutcomeStatus
	OrderID string
}
