package catalog

import (
	"testing"

	"broker-bridge/internal/params"
)

func TestLookup(t *testing.T) {
	r := Default()

	m, ok := r.Lookup("upstox", params.OpPlaceOrder)
	if !ok {
		t.Fatal("Expected upstox place_order mapping")
	}
	if m.Endpoint.Path != "order/place" {
		t.Errorf("Expected path order/place, got %s", m.Endpoint.Path)
	}
	if m.Endpoint.Method != "POST" {
		t.Errorf("Expected POST, got %s", m.Endpoint.Method)
	}
	if !m.Endpoint.RequiresAuth {
		t.Error("Expected order placement to require auth")
	}
	if m.Endpoint.RateGroup != "orders" {
		t.Errorf("Expected rate group orders, got %s", m.Endpoint.RateGroup)
	}
}

func TestLookupUnsupported(t *testing.T) {
	r := Default()

	if _, ok := r.Lookup("groww", params.OpPlaceOrder); ok {
		t.Error("Expected groww to have no order placement endpoint")
	}
	if _, ok := r.Lookup("nonexistent", params.OpGetQuotes); ok {
		t.Error("Expected unknown broker to have no mappings")
	}
}

func TestBrokers(t *testing.T) {
	brokers := Default().Brokers()
	want := []string{"groww", "kite", "upstox", "xts"}
	if len(brokers) != len(want) {
		t.Fatalf("Expected %v, got %v", want, brokers)
	}
	for i := range want {
		if brokers[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, brokers)
		}
	}
}

func TestOperationsSorted(t *testing.T) {
	ops := Default().Operations("upstox")
	if len(ops) == 0 {
		t.Fatal("Expected upstox operations")
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] >= ops[i] {
			t.Fatalf("Expected sorted operations, got %v", ops)
		}
	}
}

func TestEveryBrokerSupportsQuotes(t *testing.T) {
	r := Default()
	for _, broker := range r.Brokers() {
		if _, ok := r.Lookup(broker, params.OpGetQuotes); !ok {
			t.Errorf("Expected broker %s to support get_quotes", broker)
		}
	}
}

func TestBuilderDefaultsRateGroup(t *testing.T) {
	r := NewRegistry()
	NewBuilder("test").
		Operation(params.OpGetProfile,
			Endpoint{Name: "profile", Path: "profile", Method: "GET"},
			nil).
		Build(r)

	m, ok := r.Lookup("test", params.OpGetProfile)
	if !ok {
		t.Fatal("Expected mapping to be registered")
	}
	if m.Endpoint.RateGroup != "default" {
		t.Errorf("Expected default rate group, got %s", m.Endpoint.RateGroup)
	}
}
