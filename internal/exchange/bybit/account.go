package bybit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// GetWalletBalance fetches the total wallet balance for a coin from the
// /v5/account/wallet-balance endpoint. For a unified account Bybit
// reports the per-account total alongside per-coin balances; the total is
// what position sizing works from.
func (c *Client) GetWalletBalance(ctx context.Context, accountType, coin string) (decimal.Decimal, error) {
	params := map[string]interface{}{
		"accountType": accountType,
		"coin":        coin,
	}

	result, err := c.httpClient.NewUtaBybitServiceWithParams(params).GetAccountWallet(ctx)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get wallet balance: %w", err)
	}

	var wallet walletResult
	if err := decodeResult(result, &wallet); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse wallet balance response: %w", err)
	}

	if len(wallet.List) == 0 {
		return decimal.Decimal{}, fmt.Errorf("no account data found for type %s", accountType)
	}

	return parseDecimal("totalWalletBalance", wallet.List[0].TotalWalletBalance)
}
