package params

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSide(t *testing.T) {
	side, err := ParseSide("buy")
	if err != nil {
		t.Fatalf("Expected lowercase buy to parse, got error: %v", err)
	}
	if side != SideBuy {
		t.Errorf("Expected BUY, got %s", side)
	}

	if _, err := ParseSide("HOLD"); err == nil {
		t.Error("Expected error for invalid side HOLD")
	}
}

func TestParseOrderType(t *testing.T) {
	ot, err := ParseOrderType("stop_loss")
	if err != nil {
		t.Fatalf("Expected stop_loss to parse, got error: %v", err)
	}
	if ot != OrderTypeStopLoss {
		t.Errorf("Expected STOP_LOSS, got %s", ot)
	}

	if _, err := ParseOrderType("BRACKET"); err == nil {
		t.Error("Expected error for invalid order type BRACKET")
	}
}

func TestParseProduct(t *testing.T) {
	if _, err := ParseProduct("intraday"); err != nil {
		t.Errorf("Expected intraday to parse, got error: %v", err)
	}
	if _, err := ParseProduct("MIS"); err == nil {
		t.Error("Expected error for broker spelling MIS; standard vocabulary is INTRADAY")
	}
}

func TestOrderTypePriceRequirements(t *testing.T) {
	if !OrderTypeLimit.RequiresPrice() {
		t.Error("Expected LIMIT to require a price")
	}
	if OrderTypeMarket.RequiresPrice() {
		t.Error("Expected MARKET not to require a price")
	}
	if !OrderTypeStopLoss.RequiresTrigger() {
		t.Error("Expected STOP_LOSS to require a trigger")
	}
	if !OrderTypeStopLossMarket.RequiresTrigger() {
		t.Error("Expected STOP_LOSS_MARKET to require a trigger")
	}
	if OrderTypeLimit.RequiresTrigger() {
		t.Error("Expected LIMIT not to require a trigger")
	}
}

func TestOrderParamsFieldsDefaults(t *testing.T) {
	p := OrderParams{
		Symbol:   "RELIANCE",
		Quantity: 10,
		Side:     SideBuy,
		Type:     OrderTypeMarket,
		Product:  ProductIntraday,
	}
	f := p.Fields()

	if f["exchange"] != "NSE" {
		t.Errorf("Expected default exchange NSE, got %v", f["exchange"])
	}
	if f["validity"] != "DAY" {
		t.Errorf("Expected default validity DAY, got %v", f["validity"])
	}
	if _, ok := f["price"]; ok {
		t.Error("Expected unset price to be omitted")
	}
	if _, ok := f["trigger_price"]; ok {
		t.Error("Expected unset trigger_price to be omitted")
	}
	if _, ok := f["tag"]; ok {
		t.Error("Expected empty tag to be omitted")
	}
	if f["is_amo"] != false {
		t.Errorf("Expected is_amo false, got %v", f["is_amo"])
	}
}

func TestOrderParamsFieldsPrice(t *testing.T) {
	p := OrderParams{
		Symbol:   "TCS",
		Quantity: 5,
		Side:     SideSell,
		Type:     OrderTypeLimit,
		Product:  ProductDelivery,
		Price:    decimal.NewFromFloat(3500.25),
	}
	f := p.Fields()

	price, ok := f["price"].(decimal.Decimal)
	if !ok {
		t.Fatalf("Expected price to be a decimal, got %T", f["price"])
	}
	if !price.Equal(decimal.NewFromFloat(3500.25)) {
		t.Errorf("Expected price 3500.25, got %s", price)
	}
}

func TestOrderParamsFieldsExtrasWin(t *testing.T) {
	p := OrderParams{
		Symbol:   "INFY",
		Exchange: "NSE",
		Quantity: 1,
		Side:     SideBuy,
		Type:     OrderTypeMarket,
		Product:  ProductIntraday,
		Extras:   map[string]any{"quantity": 99, "custom_flag": true},
	}
	f := p.Fields()

	if f["quantity"] != 99 {
		t.Errorf("Expected extras to win key collisions, got quantity %v", f["quantity"])
	}
	if f["custom_flag"] != true {
		t.Error("Expected custom_flag extra to be carried through")
	}
}

func TestQuoteParamsFieldsCopiesSymbols(t *testing.T) {
	symbols := []string{"RELIANCE", "TCS"}
	f := QuoteParams{Symbols: symbols}.Fields()

	got, ok := f["symbols"].([]string)
	if !ok {
		t.Fatalf("Expected symbols slice, got %T", f["symbols"])
	}
	got[0] = "MUTATED"
	if symbols[0] != "RELIANCE" {
		t.Error("Expected Fields to copy the symbol slice")
	}
	if f["exchange"] != "NSE" {
		t.Errorf("Expected default exchange NSE, got %v", f["exchange"])
	}
}

func TestHistoricalParamsFields(t *testing.T) {
	p := HistoricalParams{
		Symbol:   "RELIANCE",
		Interval: "day",
		FromDate: "2026-01-01",
		ToDate:   "2026-02-01",
		Limit:    100,
	}
	f := p.Fields()

	if f["interval"] != "day" {
		t.Errorf("Expected interval day, got %v", f["interval"])
	}
	if f["to_date"] != "2026-02-01" {
		t.Errorf("Expected to_date carried through, got %v", f["to_date"])
	}
	if f["limit"] != 100 {
		t.Errorf("Expected limit 100, got %v", f["limit"])
	}

	f = HistoricalParams{Symbol: "TCS", Interval: "day", FromDate: "2026-01-01"}.Fields()
	if _, ok := f["to_date"]; ok {
		t.Error("Expected empty to_date to be omitted")
	}
	if _, ok := f["limit"]; ok {
		t.Error("Expected zero limit to be omitted")
	}
}
