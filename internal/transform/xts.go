package transform

import (
	"broker-bridge/internal/params"
)

// XTS lowers standard records into the Symphony XTS payload shape. XTS
// addresses instruments by numeric exchangeInstrumentID, which this layer
// cannot derive from a symbol; callers supply it through Extras.
type XTS struct{}

var _ Transformer = XTS{}

func NewXTS() XTS { return XTS{} }

func (XTS) Broker() string { return "xts" }

var xtsOrderTypes = map[params.OrderType]string{
	params.OrderTypeMarket:         "MARKET",
	params.OrderTypeLimit:          "LIMIT",
	params.OrderTypeStopLoss:       "STOPLOSS",
	params.OrderTypeStopLossMarket: "STOPMARKET",
}

var xtsProducts = map[params.Product]string{
	params.ProductIntraday: "MIS",
	params.ProductDelivery: "CNC",
	params.ProductMargin:   "NRML",
}

var xtsValidities = map[params.Validity]string{
	params.ValidityDay: "DAY",
	params.ValidityIOC: "IOC",
	params.ValidityGTD: "GTD",
}

// xtsExchangeSegments maps exchange codes to XTS segment names. Unknown
// exchanges pass through unchanged.
var xtsExchangeSegments = map[string]string{
	"NSE": "NSECM",
	"BSE": "BSECM",
	"NFO": "NSEFO",
	"BFO": "BSEFO",
}

// xtsDefaultMessageCode selects the full market data quote packet.
const xtsDefaultMessageCode = 1512

func (XTS) OrderPayload(p params.OrderParams) map[string]any {
	validity := p.Validity
	if validity == "" {
		validity = params.ValidityDay
	}
	payload := map[string]any{
		"exchangeSegment":      xtsSegment(exchangeOrDefault(p.Exchange)),
		"exchangeInstrumentID": 0, // resolved via Extras when known
		"orderQuantity":        p.Quantity,
		"orderSide":            string(p.Side),
		"orderType":            xtsOrderTypes[p.Type],
		"productType":          xtsProducts[p.Product],
		"timeInForce":          xtsValidities[validity],
		"limitPrice":           priceFloat(p.Price),
		"stopPrice":            priceFloat(p.TriggerPrice),
		"disclosedQuantity":    p.DisclosedQty,
	}
	return mergeExtras(payload, p.Extras)
}

func (XTS) QuotePayload(p params.QuoteParams) map[string]any {
	payload := map[string]any{
		"instruments":    "",
		"xtsMessageCode": xtsDefaultMessageCode,
	}
	return mergeExtras(payload, p.Extras)
}

func (XTS) HistoricalPayload(p params.HistoricalParams) map[string]any {
	payload := map[string]any{
		"exchangeSegment":      xtsSegment(exchangeOrDefault(p.Exchange)),
		"exchangeInstrumentID": 0,
		"startTime":            p.FromDate,
		"endTime":              p.ToDate,
		"compressionType":      p.Interval,
	}
	return mergeExtras(payload, p.Extras)
}

func xtsSegment(exchange string) string {
	if seg, ok := xtsExchangeSegments[exchange]; ok {
		return seg
	}
	return exchange
}
