package bybit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// GetLastPrice fetches the last traded price for a symbol from the
// /v5/market/tickers endpoint
func (c *Client) GetLastPrice(ctx context.Context, category, symbol string) (decimal.Decimal, error) {
	params := map[string]interface{}{
		"category": category,
		"symbol":   symbol,
	}

	result, err := c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketTickers(ctx)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get tickers: %w", err)
	}

	var tickers tickerResult
	if err := decodeResult(result, &tickers); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse ticker response: %w", err)
	}

	if len(tickers.List) == 0 {
		return decimal.Decimal{}, fmt.Errorf("no ticker data found for %s", symbol)
	}

	return parseDecimal("lastPrice", tickers.List[0].LastPrice)
}
