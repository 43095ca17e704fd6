package schema

import (
	"fmt"

	"github.com/shopspring/decimal"

	"broker-bridge/internal/params"
)

// MaxQuoteSymbols caps one quote request; most brokers reject larger batches.
const MaxQuoteSymbols = 50

// OrderRules checks the cross-field invariants of an order request.
func OrderRules(fields map[string]any) []string {
	var errs []string

	if qty, ok := intField(fields, "quantity"); ok && qty <= 0 {
		errs = append(errs, "quantity must be positive")
	}

	orderType, _ := fields["order_type"].(string)
	price, hasPrice := decimalField(fields, "price")
	trigger, hasTrigger := decimalField(fields, "trigger_price")

	ot := params.OrderType(orderType)
	if ot.RequiresPrice() && (!hasPrice || !price.IsPositive()) {
		errs = append(errs, fmt.Sprintf("%s orders require a positive price", orderType))
	}
	if ot.RequiresTrigger() && !hasTrigger {
		errs = append(errs, fmt.Sprintf("%s orders require a trigger price", orderType))
	}
	if hasTrigger && trigger.IsNegative() {
		errs = append(errs, "trigger price cannot be negative")
	}

	return errs
}

// QuoteRules checks the symbol list of a quote request.
func QuoteRules(fields map[string]any) []string {
	var errs []string

	symbols, _ := fields["symbols"].([]string)
	if len(symbols) == 0 {
		errs = append(errs, "at least one symbol is required")
	}
	if len(symbols) > MaxQuoteSymbols {
		errs = append(errs, fmt.Sprintf("too many symbols requested (max %d)", MaxQuoteSymbols))
	}

	return errs
}

// HistoricalRules checks a historical data request.
func HistoricalRules(fields map[string]any) []string {
	var errs []string

	if interval, _ := fields["interval"].(string); interval == "" {
		errs = append(errs, "interval must not be empty")
	}
	from, _ := fields["from_date"].(string)
	to, _ := fields["to_date"].(string)
	if from != "" && to != "" && from > to {
		errs = append(errs, "from_date must not be after to_date")
	}

	return errs
}

// Default builds the registry of standard operation schemas.
func Default() *Registry {
	r := NewRegistry()

	r.Register(Schema{
		Operation: params.OpPlaceOrder,
		Category:  params.CategoryOrders,
		Required:  []string{"symbol", "exchange", "quantity", "order_side", "order_type", "product_type"},
		Optional:  []string{"price", "trigger_price", "validity", "disclosed_quantity", "tag", "is_amo"},
		Rules:     []Rule{OrderRules},
	})
	r.Register(Schema{
		Operation: params.OpModifyOrder,
		Category:  params.CategoryOrders,
		Required:  []string{"order_id"},
		Optional:  []string{"quantity", "price", "trigger_price", "validity"},
	})
	r.Register(Schema{
		Operation: params.OpCancelOrder,
		Category:  params.CategoryOrders,
		Required:  []string{"order_id"},
	})
	r.Register(Schema{
		Operation: params.OpGetQuotes,
		Category:  params.CategoryMarketData,
		Required:  []string{"symbols"},
		Optional:  []string{"exchange"},
		Rules:     []Rule{QuoteRules},
	})
	r.Register(Schema{
		Operation: params.OpGetHistorical,
		Category:  params.CategoryHistorical,
		Required:  []string{"symbol", "exchange", "interval", "from_date"},
		Optional:  []string{"to_date", "limit"},
		Rules:     []Rule{HistoricalRules},
	})
	r.Register(Schema{
		Operation: params.OpGetPositions,
		Category:  params.CategoryPortfolio,
		Optional:  []string{"account_id"},
	})
	r.Register(Schema{
		Operation: params.OpSearchInstruments,
		Category:  params.CategoryMarketData,
		Required:  []string{"search_string"},
	})

	return r
}

func intField(fields map[string]any, name string) (int, bool) {
	switch v := fields[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func decimalField(fields map[string]any, name string) (decimal.Decimal, bool) {
	switch v := fields[name].(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	return decimal.Decimal{}, false
}
