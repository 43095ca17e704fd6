package transform

import (
	"fmt"
	"strings"

	"broker-bridge/internal/params"
)

// Upstox lowers standard records into the Upstox v2 REST payload shape.
// Instruments are addressed as "EXCHANGE_SYMBOL" keys.
type Upstox struct{}

var _ Transformer = Upstox{}

func NewUpstox() Upstox { return Upstox{} }

func (Upstox) Broker() string { return "upstox" }

var upstoxOrderTypes = map[params.OrderType]string{
	params.OrderTypeMarket:         "MARKET",
	params.OrderTypeLimit:          "LIMIT",
	params.OrderTypeStopLoss:       "SL",
	params.OrderTypeStopLossMarket: "SL-M",
}

var upstoxProducts = map[params.Product]string{
	params.ProductIntraday: "I",
	params.ProductDelivery: "D",
	params.ProductMargin:   "M",
}

var upstoxValidities = map[params.Validity]string{
	params.ValidityDay: "DAY",
	params.ValidityIOC: "IOC",
	params.ValidityGTD: "GTD",
}

func (Upstox) OrderPayload(p params.OrderParams) map[string]any {
	validity := p.Validity
	if validity == "" {
		validity = params.ValidityDay
	}
	payload := map[string]any{
		"instrument_token":   upstoxInstrumentKey(p.Exchange, p.Symbol),
		"quantity":           p.Quantity,
		"transaction_type":   string(p.Side),
		"order_type":         upstoxOrderTypes[p.Type],
		"product":            upstoxProducts[p.Product],
		"validity":           upstoxValidities[validity],
		"price":              priceFloat(p.Price),
		"trigger_price":      priceFloat(p.TriggerPrice),
		"disclosed_quantity": p.DisclosedQty,
		"tag":                p.Tag,
		"is_amo":             p.AMO,
	}
	return mergeExtras(payload, p.Extras)
}

func (Upstox) QuotePayload(p params.QuoteParams) map[string]any {
	exchange := exchangeOrDefault(p.Exchange)
	keys := make([]string, 0, len(p.Symbols))
	for _, sym := range p.Symbols {
		keys = append(keys, upstoxInstrumentKey(exchange, sym))
	}
	payload := map[string]any{
		"instrument_key": strings.Join(keys, ","),
	}
	return mergeExtras(payload, p.Extras)
}

func (Upstox) HistoricalPayload(p params.HistoricalParams) map[string]any {
	payload := map[string]any{
		"instrumentKey": upstoxInstrumentKey(exchangeOrDefault(p.Exchange), p.Symbol),
		"interval":      p.Interval,
		"from":          p.FromDate,
		"to":            p.ToDate,
	}
	if p.Limit > 0 {
		payload["limit"] = p.Limit
	}
	return mergeExtras(payload, p.Extras)
}

func upstoxInstrumentKey(exchange, symbol string) string {
	return fmt.Sprintf("%s_%s", exchangeOrDefault(exchange), symbol)
}
