package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haliule/bybit-risk-trader/internal/trade"
)

func validFlags() *cliFlags {
	return &cliFlags{
		Symbol:         "BTCUSDT",
		Side:           "buy",
		StopLoss:       "60000",
		TakeProfit:     "70000",
		RiskPercentage: "1",
	}
}

func TestBuildRequest_MarketOrder(t *testing.T) {
	req, err := buildRequest(validFlags())
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", req.Symbol)
	assert.Equal(t, trade.SideBuy, req.Side)
	assert.Nil(t, req.Price, "no price flag means market order")
	assert.Equal(t, "60000", req.StopLoss.String())
	assert.Equal(t, "70000", req.TakeProfit.String())
	assert.Equal(t, "1", req.RiskPercentage.String())
}

func TestBuildRequest_LimitOrder(t *testing.T) {
	f := validFlags()
	f.Price = "64500.5"

	req, err := buildRequest(f)
	require.NoError(t, err)

	require.NotNil(t, req.Price)
	assert.Equal(t, "64500.5", req.Price.String())
	assert.True(t, req.IsLimit())
}

func TestBuildRequest_CollectsAllProblems(t *testing.T) {
	_, err := buildRequest(&cliFlags{})

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "-symbol is required")
	assert.Contains(t, msg, "side")
	assert.Contains(t, msg, "-stopLoss is required")
	assert.Contains(t, msg, "-takeProfit is required")
	assert.Contains(t, msg, "-riskPercentage is required")
}

func TestBuildRequest_RejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cliFlags)
	}{
		{"non-numeric stop loss", func(f *cliFlags) { f.StopLoss = "sixty" }},
		{"negative take profit", func(f *cliFlags) { f.TakeProfit = "-70000" }},
		{"zero risk percentage", func(f *cliFlags) { f.RiskPercentage = "0" }},
		{"non-numeric price", func(f *cliFlags) { f.Price = "market" }},
		{"unknown side", func(f *cliFlags) { f.Side = "hold" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFlags()
			tt.mutate(f)

			_, err := buildRequest(f)
			require.Error(t, err)
		})
	}
}
