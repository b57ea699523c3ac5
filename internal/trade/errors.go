package trade

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError signals that stop-loss/take-profit are inconsistent with
// the side and entry price, or that the stop distance is degenerate. The
// run aborts before any write.
type ValidationError struct {
	Side       Side
	EntryPrice decimal.Decimal
	StopLoss   decimal.Decimal
	TakeProfit decimal.Decimal
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trade for side %q: %s (entry=%s stopLoss=%s takeProfit=%s)",
		e.Side, e.Reason, e.EntryPrice, e.StopLoss, e.TakeProfit)
}

// UpstreamError wraps a failed read from the exchange (price or balance)
type UpstreamError struct {
	Operation string
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// SubmissionError wraps an order rejected by the venue after confirmation.
// A single submission attempt is made per confirmed plan; no retry.
type SubmissionError struct {
	Symbol string
	Side   Side
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission for %s %s failed: %v", e.Symbol, e.Side, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
