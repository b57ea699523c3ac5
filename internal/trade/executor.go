package trade

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/haliule/bybit-risk-trader/internal/exchange"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConfirmFunc reads a single line of operator input. It is decoupled from
// any I/O stream so tests can stub it with a fixed answer.
type ConfirmFunc func() (string, error)

// Execute presents the plan, awaits one confirmation, and on acceptance
// submits a single order carrying the computed quantity, stop-loss and
// take-profit. A declined prompt returns Outcome{StatusCancelled} with no
// side effect; a venue rejection returns *SubmissionError without retry.
func Execute(ctx context.Context, plan *TradePlan, req TradeRequest, confirm ConfirmFunc, submitter exchange.OrderSubmitter, out io.Writer) (*Outcome, error) {
	renderPlan(plan, out)

	fmt.Fprint(out, "Do you want to proceed with this trade? (yes/no) [default: yes]: ")
	answer, err := confirm()
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}

	if !isConfirmed(answer) {
		fmt.Fprintln(out, "Trade canceled.")
		return &Outcome{Status: StatusCancelled}, nil
	}

	params := exchange.OrderParams{
		Category:   Category,
		Symbol:     req.Symbol,
		Side:       string(plan.Side),
		OrderType:  exchange.OrderTypeMarket,
		Qty:        plan.Quantity.String(),
		StopLoss:   plan.StopLoss.String(),
		TakeProfit: plan.TakeProfit.String(),
	}
	if req.IsLimit() {
		params.OrderType = exchange.OrderTypeLimit
		params.Price = plan.EntryPrice.String()
	}

	result, err := submitter.SubmitOrder(ctx, params)
	if err != nil {
		return nil, &SubmissionError{Symbol: req.Symbol, Side: plan.Side, Err: err}
	}

	fmt.Fprintf(out, "Order with id %s submitted successfully.\n", result.OrderID)
	return &Outcome{Status: StatusSubmitted, OrderID: result.OrderID}, nil
}

// isConfirmed treats an empty answer as consent; everything else must be
// a case-insensitive "yes".
func isConfirmed(answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return true
	}
	return strings.EqualFold(answer, "yes")
}

// renderPlan prints every field of the plan for operator review
func renderPlan(plan *TradePlan, out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("CALCULATED TRADE DETAILS")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Side", string(plan.Side)},
		{"Entry Price", plan.EntryPrice.String()},
		{"Stop Loss", plan.StopLoss.String()},
		{"Take Profit", plan.TakeProfit.String()},
		{"Risk Percentage", plan.RiskPercentage.String() + "%"},
		{"Risk Amount", plan.RiskAmount.StringFixed(2) + " " + QuoteCoin},
		{"Position Size", plan.PositionSize.String() + " " + QuoteCoin},
		{"Quantity", plan.Quantity.String()},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 16, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, Align: text.AlignLeft},
	})

	t.Render()
}
