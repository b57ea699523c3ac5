package bybit

import (
	"encoding/json"
	"fmt"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
	"github.com/shopspring/decimal"
)

// tickerResult is the /v5/market/tickers payload, reduced to the fields
// this client consumes
type tickerResult struct {
	Category string `json:"category"`
	List     []struct {
		Symbol    string `json:"symbol"`
		LastPrice string `json:"lastPrice"`
	} `json:"list"`
}

// walletResult is the /v5/account/wallet-balance payload
type walletResult struct {
	List []struct {
		AccountType        string `json:"accountType"`
		TotalEquity        string `json:"totalEquity"`
		TotalWalletBalance string `json:"totalWalletBalance"`
		Coin               []struct {
			Coin          string `json:"coin"`
			WalletBalance string `json:"walletBalance"`
			Equity        string `json:"equity"`
		} `json:"coin"`
	} `json:"list"`
}

// orderResult is the /v5/order/create payload
type orderResult struct {
	OrderID     string `json:"orderId"`
	OrderLinkID string `json:"orderLinkId"`
}

// decodeResult unwraps a Bybit ServerResponse, surfaces non-zero retCodes
// as *APIError, and unmarshals the result payload into target.
func decodeResult(response interface{}, target interface{}) error {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return fmt.Errorf("invalid response type %T", response)
	}

	if err := ParseAPIError(serverResp.RetCode, serverResp.RetMsg); err != nil {
		return err
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := json.Unmarshal(resultBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return nil
}

// parseDecimal converts a string-typed wire numeric into a decimal
func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return d, nil
}
