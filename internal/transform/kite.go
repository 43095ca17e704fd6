package transform

import (
	"strings"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"broker-bridge/internal/params"
)

// Kite lowers standard records into the Zerodha Kite Connect payload shape.
// Enum spellings come straight from the gokiteconnect constants so they
// cannot drift from the SDK.
type Kite struct{}

var _ Transformer = Kite{}

func NewKite() Kite { return Kite{} }

func (Kite) Broker() string { return "kite" }

var kiteOrderTypes = map[params.OrderType]string{
	params.OrderTypeMarket:         kiteconnect.OrderTypeMarket,
	params.OrderTypeLimit:          kiteconnect.OrderTypeLimit,
	params.OrderTypeStopLoss:       kiteconnect.OrderTypeSL,
	params.OrderTypeStopLossMarket: kiteconnect.OrderTypeSLM,
}

var kiteProducts = map[params.Product]string{
	params.ProductIntraday: kiteconnect.ProductMIS,
	params.ProductDelivery: kiteconnect.ProductCNC,
	params.ProductMargin:   kiteconnect.ProductNRML,
}

var kiteSides = map[params.Side]string{
	params.SideBuy:  kiteconnect.TransactionTypeBuy,
	params.SideSell: kiteconnect.TransactionTypeSell,
}

// Kite has no GTD; it degrades to DAY like the dashboard does.
var kiteValidities = map[params.Validity]string{
	params.ValidityDay: kiteconnect.ValidityDay,
	params.ValidityIOC: kiteconnect.ValidityIOC,
	params.ValidityGTD: kiteconnect.ValidityDay,
}

func (Kite) OrderPayload(p params.OrderParams) map[string]any {
	validity := p.Validity
	if validity == "" {
		validity = params.ValidityDay
	}
	variety := kiteconnect.VarietyRegular
	if p.AMO {
		variety = kiteconnect.VarietyAMO
	}
	payload := map[string]any{
		"tradingsymbol":      p.Symbol,
		"exchange":           exchangeOrDefault(p.Exchange),
		"quantity":           p.Quantity,
		"transaction_type":   kiteSides[p.Side],
		"order_type":         kiteOrderTypes[p.Type],
		"product":            kiteProducts[p.Product],
		"validity":           kiteValidities[validity],
		"price":              priceFloat(p.Price),
		"trigger_price":      priceFloat(p.TriggerPrice),
		"disclosed_quantity": p.DisclosedQty,
		"tag":                p.Tag,
		"variety":            variety,
	}
	return mergeExtras(payload, p.Extras)
}

func (Kite) QuotePayload(p params.QuoteParams) map[string]any {
	exchange := exchangeOrDefault(p.Exchange)
	keys := make([]string, 0, len(p.Symbols))
	for _, sym := range p.Symbols {
		keys = append(keys, exchange+":"+sym)
	}
	payload := map[string]any{
		"i": strings.Join(keys, ","),
	}
	return mergeExtras(payload, p.Extras)
}

func (Kite) HistoricalPayload(p params.HistoricalParams) map[string]any {
	payload := map[string]any{
		"instrument_token": 0, // resolved via Extras when known
		"interval":         p.Interval,
		"from":             p.FromDate,
		"to":               p.ToDate,
	}
	return mergeExtras(payload, p.Extras)
}
