package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/haliule/bybit-risk-trader/internal/exchange/bybit"
	"github.com/haliule/bybit-risk-trader/internal/trade"
)

// runTimeout caps the whole run at the collaborator boundary; the core
// logic carries no timeout policy of its own.
const runTimeout = 30 * time.Second

func main() {
	flags := registerFlags()
	flag.Parse()

	request, err := buildRequest(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	if err := loadEnvFile(flags.EnvFile); err != nil {
		log.Printf("Warning: could not load %s (%v), using process environment", flags.EnvFile, err)
	}

	apiKey, apiSecret, err := loadCredentials()
	if err != nil {
		log.Fatalf("Credential validation failed: %v", err)
	}

	client := bybit.NewClient(bybit.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		Testnet:   flags.Testnet,
		Demo:      flags.Demo,
	})

	fmt.Printf("Sizing %s %s on Bybit %s (%s)\n", request.Side, request.Symbol, trade.Category, client.Environment())

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	plan, err := trade.Plan(ctx, request, client)
	if err != nil {
		var vErr *trade.ValidationError
		if errors.As(err, &vErr) {
			log.Fatalf("Trade rejected: %v", vErr)
		}
		log.Fatalf("Planning failed: %v", err)
	}

	confirm := func() (string, error) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return "", err
		}
		return line, nil
	}

	outcome, err := trade.Execute(ctx, plan, request, confirm, client, os.Stdout)
	if err != nil {
		log.Fatalf("Execution failed: %v", err)
	}

	if outcome.Status == trade.StatusCancelled {
		os.Exit(0)
	}
}

// loadEnvFile loads environment variables from a file if it exists
func loadEnvFile(envFile string) error {
	if _, err := os.Stat(envFile); err == nil {
		return godotenv.Load(envFile)
	}
	return fmt.Errorf("env file %s not found", envFile)
}

// loadCredentials reads the Bybit API credentials from the environment
func loadCredentials() (string, string, error) {
	apiKey := os.Getenv("BYBIT_API_KEY")
	apiSecret := os.Getenv("BYBIT_API_SECRET")

	if apiKey == "" || apiSecret == "" {
		return "", "", fmt.Errorf("BYBIT_API_KEY and BYBIT_API_SECRET must be set")
	}

	return apiKey, apiSecret, nil
}
