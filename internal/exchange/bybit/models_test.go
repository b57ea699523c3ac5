package bybit

import (
	"testing"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult_Ticker(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: 0,
		Result: map[string]interface{}{
			"category": "linear",
			"list": []interface{}{
				map[string]interface{}{"symbol": "BTCUSDT", "lastPrice": "65000.5"},
			},
		},
	}

	var tickers tickerResult
	require.NoError(t, decodeResult(resp, &tickers))

	require.Len(t, tickers.List, 1)
	assert.Equal(t, "BTCUSDT", tickers.List[0].Symbol)
	assert.Equal(t, "65000.5", tickers.List[0].LastPrice)
}

func TestDecodeResult_WalletBalance(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: 0,
		Result: map[string]interface{}{
			"list": []interface{}{
				map[string]interface{}{
					"accountType":        "UNIFIED",
					"totalWalletBalance": "10000.25",
				},
			},
		},
	}

	var wallet walletResult
	require.NoError(t, decodeResult(resp, &wallet))

	require.Len(t, wallet.List, 1)
	assert.Equal(t, "10000.25", wallet.List[0].TotalWalletBalance)
}

func TestDecodeResult_APIError(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: ErrCodeInsufficientBalance,
		RetMsg:  "Insufficient available balance",
	}

	var order orderResult
	err := decodeResult(resp, &order)

	require.Error(t, err)
	assert.True(t, IsInsufficientBalanceError(err))
	assert.Contains(t, err.Error(), "110007")
}

func TestDecodeResult_UnexpectedType(t *testing.T) {
	var order orderResult
	err := decodeResult("not a server response", &order)
	require.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	d, err := parseDecimal("lastPrice", "123.456")
	require.NoError(t, err)
	assert.Equal(t, "123.456", d.String())

	_, err = parseDecimal("lastPrice", "")
	require.Error(t, err)

	_, err = parseDecimal("lastPrice", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lastPrice")
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsAuthenticationError(&APIError{Code: ErrCodeInvalidAPIKey}))
	assert.True(t, IsAuthenticationError(&APIError{Code: ErrCodeInvalidSignature}))
	assert.False(t, IsAuthenticationError(&APIError{Code: ErrCodeMarketClosed}))
	assert.True(t, IsSymbolNotFoundError(&APIError{Code: ErrCodeSymbolNotFound}))
	assert.Nil(t, ParseAPIError(0, "OK"))
}
