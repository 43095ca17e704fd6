package schema

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"broker-bridge/internal/params"
)

func TestValidateMissingRequired(t *testing.T) {
	r := Default()

	errs := r.Validate(params.OpPlaceOrder, map[string]any{
		"symbol": "RELIANCE",
	})
	if len(errs) == 0 {
		t.Fatal("Expected errors for missing required fields")
	}

	joined := strings.Join(errs, "; ")
	for _, want := range []string{"exchange", "quantity", "order_side", "order_type", "product_type"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected missing-field error for %s, got: %s", want, joined)
		}
	}
}

func TestValidateOrderHappyPath(t *testing.T) {
	r := Default()

	p := params.OrderParams{
		Symbol:   "RELIANCE",
		Quantity: 10,
		Side:     params.SideBuy,
		Type:     params.OrderTypeLimit,
		Product:  params.ProductIntraday,
		Price:    decimal.NewFromFloat(2500.50),
	}
	if errs := r.Validate(params.OpPlaceOrder, p.Fields()); len(errs) != 0 {
		t.Errorf("Expected valid order, got errors: %v", errs)
	}
}

func TestOrderRulesQuantity(t *testing.T) {
	p := params.OrderParams{
		Symbol:   "RELIANCE",
		Quantity: 0,
		Side:     params.SideBuy,
		Type:     params.OrderTypeMarket,
		Product:  params.ProductIntraday,
	}
	errs := OrderRules(p.Fields())
	if len(errs) != 1 || !strings.Contains(errs[0], "quantity") {
		t.Errorf("Expected quantity error for zero quantity, got: %v", errs)
	}
}

func TestOrderRulesLimitWithoutPrice(t *testing.T) {
	p := params.OrderParams{
		Symbol:   "RELIANCE",
		Quantity: 10,
		Side:     params.SideBuy,
		Type:     params.OrderTypeLimit,
		Product:  params.ProductIntraday,
	}
	errs := OrderRules(p.Fields())
	if len(errs) != 1 || !strings.Contains(errs[0], "price") {
		t.Errorf("Expected price error for LIMIT without price, got: %v", errs)
	}
}

func TestOrderRulesStopLossWithoutTrigger(t *testing.T) {
	p := params.OrderParams{
		Symbol:   "RELIANCE",
		Quantity: 10,
		Side:     params.SideSell,
		Type:     params.OrderTypeStopLossMarket,
		Product:  params.ProductIntraday,
	}
	errs := OrderRules(p.Fields())
	if len(errs) != 1 || !strings.Contains(errs[0], "trigger") {
		t.Errorf("Expected trigger error for STOP_LOSS_MARKET without trigger, got: %v", errs)
	}

	p.TriggerPrice = decimal.NewFromFloat(2450)
	if errs := OrderRules(p.Fields()); len(errs) != 0 {
		t.Errorf("Expected no errors with trigger set, got: %v", errs)
	}
}

func TestQuoteRules(t *testing.T) {
	if errs := QuoteRules(map[string]any{"symbols": []string{}}); len(errs) == 0 {
		t.Error("Expected error for empty symbol list")
	}

	many := make([]string, MaxQuoteSymbols+1)
	for i := range many {
		many[i] = "SYM"
	}
	if errs := QuoteRules(map[string]any{"symbols": many}); len(errs) == 0 {
		t.Error("Expected error for oversized symbol list")
	}

	if errs := QuoteRules(map[string]any{"symbols": []string{"RELIANCE"}}); len(errs) != 0 {
		t.Errorf("Expected single symbol to pass, got: %v", errs)
	}
}

func TestHistoricalRules(t *testing.T) {
	f := params.HistoricalParams{
		Symbol:   "RELIANCE",
		Interval: "day",
		FromDate: "2026-02-01",
		ToDate:   "2026-01-01",
	}.Fields()
	errs := HistoricalRules(f)
	if len(errs) != 1 || !strings.Contains(errs[0], "from_date") {
		t.Errorf("Expected date-order error, got: %v", errs)
	}
}

func TestValidateUnknownOperationIsClean(t *testing.T) {
	r := Default()
	if errs := r.Validate(params.OpGetProfile, nil); len(errs) != 0 {
		t.Errorf("Expected operations without a schema to validate clean, got: %v", errs)
	}
}

func TestRegistryGet(t *testing.T) {
	r := Default()

	s, ok := r.Get(params.OpPlaceOrder)
	if !ok {
		t.Fatal("Expected place_order schema to be registered")
	}
	if s.Category != params.CategoryOrders {
		t.Errorf("Expected orders category, got %s", s.Category)
	}

	if _, ok := r.Get(params.Operation("nonexistent")); ok {
		t.Error("Expected no schema for unknown operation")
	}
}
