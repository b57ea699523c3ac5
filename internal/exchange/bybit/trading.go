package bybit

import (
	"context"
	"fmt"

	"github.com/haliule/bybit-risk-trader/internal/exchange"
)

// SubmitOrder places a single order through /v5/order/create. The caller
// decides market vs limit; quantity, stop-loss and take-profit travel as
// strings per the wire format.
func (c *Client) SubmitOrder(ctx context.Context, params exchange.OrderParams) (*exchange.OrderResult, error) {
	if params.Symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if params.Side == "" {
		return nil, fmt.Errorf("side is required")
	}
	if params.Qty == "" {
		return nil, fmt.Errorf("qty is required")
	}
	if params.OrderType == exchange.OrderTypeLimit && params.Price == "" {
		return nil, fmt.Errorf("price is required for limit orders")
	}

	apiParams := map[string]interface{}{
		"category":  params.Category,
		"symbol":    params.Symbol,
		"side":      params.Side,
		"orderType": string(params.OrderType),
		"qty":       params.Qty,
	}

	if params.Price != "" {
		apiParams["price"] = params.Price
	}
	if params.StopLoss != "" {
		apiParams["stopLoss"] = params.StopLoss
	}
	if params.TakeProfit != "" {
		apiParams["takeProfit"] = params.TakeProfit
	}

	result, err := c.httpClient.NewUtaBybitServiceWithParams(apiParams).PlaceOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	var order orderResult
	if err := decodeResult(result, &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	return &exchange.OrderResult{
		OrderID:     order.OrderID,
		OrderLinkID: order.OrderLinkID,
	}, nil
}
