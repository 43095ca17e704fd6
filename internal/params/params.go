// Package params holds the broker-agnostic request vocabulary: enums for
// order attributes, operation identifiers, and the standard parameter
// records that per-broker transformers lower into wire payloads.
package params

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the standardized order side.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide converts user input into a Side. Unknown values are an error;
// enum correctness is enforced here, at construction time, not during
// schema validation.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(s)) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	}
	return "", fmt.Errorf("invalid order side %q: must be BUY or SELL", s)
}

func (s Side) String() string { return string(s) }

// OrderType is the standardized order type.
type OrderType string

const (
	OrderTypeMarket         OrderType = "MARKET"
	OrderTypeLimit          OrderType = "LIMIT"
	OrderTypeStopLoss       OrderType = "STOP_LOSS"
	OrderTypeStopLossMarket OrderType = "STOP_LOSS_MARKET"
)

func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(strings.ToUpper(s)) {
	case OrderTypeMarket:
		return OrderTypeMarket, nil
	case OrderTypeLimit:
		return OrderTypeLimit, nil
	case OrderTypeStopLoss:
		return OrderTypeStopLoss, nil
	case OrderTypeStopLossMarket:
		return OrderTypeStopLossMarket, nil
	}
	return "", fmt.Errorf("invalid order type %q: must be MARKET, LIMIT, STOP_LOSS or STOP_LOSS_MARKET", s)
}

func (t OrderType) String() string { return string(t) }

// RequiresPrice reports whether this order type carries a limit price.
func (t OrderType) RequiresPrice() bool {
	return t == OrderTypeLimit || t == OrderTypeStopLoss
}

// RequiresTrigger reports whether this order type carries a trigger price.
func (t OrderType) RequiresTrigger() bool {
	return t == OrderTypeStopLoss || t == OrderTypeStopLossMarket
}

// Product is the standardized product type. Brokers call these MIS/CNC/NRML,
// I/D/M and so on; the transformers own those spellings.
type Product string

const (
	ProductIntraday Product = "INTRADAY"
	ProductDelivery Product = "DELIVERY"
	ProductMargin   Product = "MARGIN"
)

func ParseProduct(s string) (Product, error) {
	switch Product(strings.ToUpper(s)) {
	case ProductIntraday:
		return ProductIntraday, nil
	case ProductDelivery:
		return ProductDelivery, nil
	case ProductMargin:
		return ProductMargin, nil
	}
	return "", fmt.Errorf("invalid product type %q: must be INTRADAY, DELIVERY or MARGIN", s)
}

func (p Product) String() string { return string(p) }

// Validity is the standardized order validity.
type Validity string

const (
	ValidityDay Validity = "DAY"
	ValidityIOC Validity = "IOC"
	ValidityGTD Validity = "GTD"
)

func ParseValidity(s string) (Validity, error) {
	switch Validity(strings.ToUpper(s)) {
	case ValidityDay:
		return ValidityDay, nil
	case ValidityIOC:
		return ValidityIOC, nil
	case ValidityGTD:
		return ValidityGTD, nil
	}
	return "", fmt.Errorf("invalid validity %q: must be DAY, IOC or GTD", s)
}

func (v Validity) String() string { return string(v) }

// Operation identifies a logical broker operation independent of any
// broker's endpoint naming.
type Operation string

const (
	OpPlaceOrder        Operation = "place_order"
	OpModifyOrder       Operation = "modify_order"
	OpCancelOrder       Operation = "cancel_order"
	OpGetOrders         Operation = "get_orders"
	OpGetTrades         Operation = "get_trades"
	OpGetPositions      Operation = "get_positions"
	OpGetHoldings       Operation = "get_holdings"
	OpGetQuotes         Operation = "get_quotes"
	OpGetMarketStatus   Operation = "get_market_status"
	OpGetIndices        Operation = "get_indices"
	OpSearchInstruments Operation = "search_instruments"
	OpGetHistorical     Operation = "get_historical_data"
	OpGetProfile        Operation = "get_profile"
	OpGetFunds          Operation = "get_funds"
)

func (o Operation) String() string { return string(o) }

// Category groups operations for registry bookkeeping.
type Category string

const (
	CategoryOrders     Category = "orders"
	CategoryPortfolio  Category = "portfolio"
	CategoryMarketData Category = "market_data"
	CategoryHistorical Category = "historical"
	CategoryUser       Category = "user"
)

// DefaultExchange is assumed when a record leaves Exchange empty.
const DefaultExchange = "NSE"

// OrderParams is the standard order placement record. Records are built per
// call site, are not mutated after construction, and live for one request.
type OrderParams struct {
	Symbol   string
	Exchange string
	Quantity int
	Side     Side
	Type     OrderType
	Product  Product

	// Price is the limit price; the zero value means "not set". Same for
	// TriggerPrice. Kept as decimals end to end, converted to float only
	// at the transform boundary.
	Price        decimal.Decimal
	TriggerPrice decimal.Decimal

	DisclosedQty int
	Validity     Validity
	Tag          string
	AMO          bool

	// Extras carries broker-specific fields outside the standard set,
	// e.g. exchangeInstrumentID for XTS. On a key collision with a mapped
	// standard field, the extra wins.
	Extras map[string]any
}

// Fields lowers the record to the flat map the schema registry validates.
// Defaults (exchange, validity) are applied here; unset optional prices are
// omitted rather than emitted as zero. Extras are merged last so they can
// satisfy broker-specific required fields, and so collisions resolve in
// their favor, same as in the transformed payload.
func (p OrderParams) Fields() map[string]any {
	f := map[string]any{
		"symbol":             p.Symbol,
		"exchange":           exchangeOrDefault(p.Exchange),
		"quantity":           p.Quantity,
		"order_side":         p.Side.String(),
		"order_type":         p.Type.String(),
		"product_type":       p.Product.String(),
		"disclosed_quantity": p.DisclosedQty,
		"validity":           validityOrDefault(p.Validity).String(),
		"is_amo":             p.AMO,
	}
	if !p.Price.IsZero() {
		f["price"] = p.Price
	}
	if !p.TriggerPrice.IsZero() {
		f["trigger_price"] = p.TriggerPrice
	}
	if p.Tag != "" {
		f["tag"] = p.Tag
	}
	for k, v := range p.Extras {
		f[k] = v
	}
	return f
}

// QuoteParams is the standard quote request record.
type QuoteParams struct {
	Symbols  []string
	Exchange string
	Extras   map[string]any
}

func (p QuoteParams) Fields() map[string]any {
	f := map[string]any{
		"symbols":  append([]string(nil), p.Symbols...),
		"exchange": exchangeOrDefault(p.Exchange),
	}
	for k, v := range p.Extras {
		f[k] = v
	}
	return f
}

// HistoricalParams is the standard historical data request record. Dates are
// strings (YYYY-MM-DD or broker-accepted timestamps); this layer forwards
// them untouched.
type HistoricalParams struct {
	Symbol   string
	Exchange string
	Interval string
	FromDate string
	ToDate   string
	Limit    int
	Extras   map[string]any
}

func (p HistoricalParams) Fields() map[string]any {
	f := map[string]any{
		"symbol":    p.Symbol,
		"exchange":  exchangeOrDefault(p.Exchange),
		"interval":  p.Interval,
		"from_date": p.FromDate,
	}
	if p.ToDate != "" {
		f["to_date"] = p.ToDate
	}
	if p.Limit > 0 {
		f["limit"] = p.Limit
	}
	for k, v := range p.Extras {
		f[k] = v
	}
	return f
}

func exchangeOrDefault(ex string) string {
	if ex == "" {
		return DefaultExchange
	}
	return ex
}

func validityOrDefault(v Validity) Validity {
	if v == "" {
		return ValidityDay
	}
	return v
}
