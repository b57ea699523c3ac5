package bybit

import (
	bybit_api "github.com/bybit-exchange/bybit.go.api"

	"github.com/haliule/bybit-risk-trader/internal/exchange"
)

// Client implements the exchange collaborator surface on top of the
// Bybit V5 REST API
type Client struct {
	httpClient *bybit_api.Client
	testnet    bool
	demo       bool
}

var _ exchange.Exchange = (*Client)(nil)

// Config holds the configuration for the Bybit client
type Config struct {
	APIKey    string
	APISecret string
	Testnet   bool
	Demo      bool // Demo trading environment (paper trading)
}

// NewClient creates a new Bybit client
func NewClient(config Config) *Client {
	var baseURL string
	if config.Demo {
		baseURL = "https://api-demo.bybit.com"
	} else if config.Testnet {
		baseURL = bybit_api.TESTNET
	} else {
		baseURL = bybit_api.MAINNET
	}

	httpClient := bybit_api.NewBybitHttpClient(
		config.APIKey,
		config.APISecret,
		bybit_api.WithBaseURL(baseURL),
	)

	return &Client{
		httpClient: httpClient,
		testnet:    config.Testnet,
		demo:       config.Demo,
	}
}

// Environment returns a string describing the trading environment
func (c *Client) Environment() string {
	if c.demo {
		return "demo"
	} else if c.testnet {
		return "testnet"
	}
	return "mainnet"
}
