package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderType represents the type of an order
type OrderType string

const (
	OrderTypeMarket OrderType = "Market"
	OrderTypeLimit  OrderType = "Limit"
)

// OrderParams holds the wire-shaped parameters for a single order
// submission. Bybit V5 expects string-typed numerics.
type OrderParams struct {
	Category   string // "linear" for USDT-margined perpetuals
	Symbol     string
	Side       string // "Buy" or "Sell"
	OrderType  OrderType
	Qty        string
	Price      string // required for limit orders, empty otherwise
	StopLoss   string
	TakeProfit string
}

// OrderResult carries the venue's acknowledgement of a submitted order
type OrderResult struct {
	OrderID     string
	OrderLinkID string
}

// MarketDataProvider supplies the last traded price for a symbol
type MarketDataProvider interface {
	GetLastPrice(ctx context.Context, category, symbol string) (decimal.Decimal, error)
}

// AccountProvider supplies the total wallet balance for a coin
type AccountProvider interface {
	GetWalletBalance(ctx context.Context, accountType, coin string) (decimal.Decimal, error)
}

// OrderSubmitter submits a single order to the venue
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, params OrderParams) (*OrderResult, error)
}

// Exchange is the full collaborator surface the trading workflow consumes
type Exchange interface {
	MarketDataProvider
	AccountProvider
	OrderSubmitter
}
