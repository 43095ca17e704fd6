package transform

import (
	"strings"

	"broker-bridge/internal/params"
)

// Groww lowers standard records into Groww's market data payload shape.
// Groww exposes no public order API; the order payload is a best-effort
// shape for forward compatibility, and product type is simply omitted
// because Groww has no mapping for it.
type Groww struct{}

var _ Transformer = Groww{}

func NewGroww() Groww { return Groww{} }

func (Groww) Broker() string { return "groww" }

func (Groww) OrderPayload(p params.OrderParams) map[string]any {
	payload := map[string]any{
		"symbol":    p.Symbol,
		"exchange":  exchangeOrDefault(p.Exchange),
		"qty":       p.Quantity,
		"side":      strings.ToLower(string(p.Side)),
		"orderType": strings.ToLower(string(p.Type)),
	}
	return mergeExtras(payload, p.Extras)
}

func (Groww) QuotePayload(p params.QuoteParams) map[string]any {
	payload := map[string]any{
		"symbols":  append([]string(nil), p.Symbols...),
		"exchange": exchangeOrDefault(p.Exchange),
	}
	return mergeExtras(payload, p.Extras)
}

func (Groww) HistoricalPayload(p params.HistoricalParams) map[string]any {
	payload := map[string]any{
		"symbol":   p.Symbol,
		"exchange": exchangeOrDefault(p.Exchange),
		"interval": p.Interval,
		"from":     p.FromDate,
		"to":       p.ToDate,
	}
	return mergeExtras(payload, p.Extras)
}
