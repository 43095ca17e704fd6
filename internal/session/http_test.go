package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"broker-bridge/internal/catalog"
)

func TestHTTPPostSendsJSONBody(t *testing.T) {
	var gotBody map[string]any
	var gotPath, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &gotBody)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	s := NewHTTP(Params{Broker: "upstox", BaseURL: srv.URL})
	raw, err := s.Execute(context.Background(),
		catalog.Endpoint{Name: "place_order", Path: "order/place", Method: "POST"},
		map[string]any{"quantity": 10, "transaction_type": "BUY"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotPath != "/order/place" {
		t.Errorf("Expected path /order/place, got %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %s", gotContentType)
	}
	if gotBody["transaction_type"] != "BUY" {
		t.Errorf("Expected transaction_type in body, got %v", gotBody)
	}
	if !strings.Contains(string(raw), "ok") {
		t.Errorf("Expected response body passthrough, got %s", raw)
	}
}

func TestHTTPGetEncodesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := NewHTTP(Params{Broker: "upstox", BaseURL: srv.URL})
	_, err := s.Execute(context.Background(),
		catalog.Endpoint{Name: "quote", Path: "market-quote/quotes", Method: "GET"},
		map[string]any{"instrument_key": "NSE_RELIANCE"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(gotQuery, "instrument_key=NSE_RELIANCE") {
		t.Errorf("Expected query parameter, got %s", gotQuery)
	}
}

func TestHTTPPathSubstitution(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := NewHTTP(Params{Broker: "upstox", BaseURL: srv.URL})
	_, err := s.Execute(context.Background(),
		catalog.Endpoint{Name: "historical", Path: "historical-candle/{instrumentKey}/{interval}/{to}", Method: "GET"},
		map[string]any{"instrumentKey": "NSE_RELIANCE", "interval": "day", "to": "2026-02-01", "from": "2026-01-01"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotPath != "/historical-candle/NSE_RELIANCE/day/2026-02-01" {
		t.Errorf("Expected substituted path, got %s", gotPath)
	}
	if strings.Contains(gotQuery, "instrumentKey") {
		t.Error("Expected consumed path params to be absent from query")
	}
	if !strings.Contains(gotQuery, "from=2026-01-01") {
		t.Errorf("Expected remaining param in query, got %s", gotQuery)
	}
}

func TestHTTPMissingPathParam(t *testing.T) {
	s := NewHTTP(Params{Broker: "kite", BaseURL: "http://localhost"})
	_, err := s.Execute(context.Background(),
		catalog.Endpoint{Name: "order.modify", Path: "orders/{variety}/{order_id}", Method: "PUT"},
		map[string]any{"variety": "regular"})
	if err == nil {
		t.Fatal("Expected error for missing path parameter")
	}
	if !strings.Contains(err.Error(), "order_id") {
		t.Errorf("Expected error to name the missing parameter, got: %v", err)
	}
}

func TestHTTPAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := NewHTTP(Params{Broker: "upstox", BaseURL: srv.URL, Auth: BearerToken("secret")})

	s.Execute(context.Background(),
		catalog.Endpoint{Name: "profile", Path: "user/profile", Method: "GET", RequiresAuth: true},
		nil)
	if gotAuth != "Bearer secret" {
		t.Errorf("Expected bearer token on auth endpoint, got %q", gotAuth)
	}

	gotAuth = ""
	s.Execute(context.Background(),
		catalog.Endpoint{Name: "public", Path: "public", Method: "GET"},
		nil)
	if gotAuth != "" {
		t.Errorf("Expected no auth header on public endpoint, got %q", gotAuth)
	}
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	s := NewHTTP(Params{Broker: "upstox", BaseURL: srv.URL})
	_, err := s.Execute(context.Background(),
		catalog.Endpoint{Name: "profile", Path: "user/profile", Method: "GET"},
		nil)
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("Expected status code in error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid token") {
		t.Errorf("Expected response body excerpt in error, got: %v", err)
	}
}

func TestMockRecordsCalls(t *testing.T) {
	m := NewMock("upstox")
	m.Responses["quote"] = json.RawMessage(`{"ltp":2500}`)

	raw, err := m.Execute(context.Background(),
		catalog.Endpoint{Name: "quote", Path: "market-quote/quotes", Method: "GET"},
		map[string]any{"instrument_key": "NSE_RELIANCE"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(raw) != `{"ltp":2500}` {
		t.Errorf("Expected canned response, got %s", raw)
	}
	if len(m.Calls) != 1 {
		t.Fatalf("Expected 1 recorded call, got %d", len(m.Calls))
	}
	if m.Calls[0].Payload["instrument_key"] != "NSE_RELIANCE" {
		t.Errorf("Expected recorded payload, got %v", m.Calls[0].Payload)
	}

	raw, _ = m.Execute(context.Background(),
		catalog.Endpoint{Name: "other", Path: "other", Method: "GET"}, nil)
	if !strings.Contains(string(raw), "simulated") {
		t.Errorf("Expected simulated fallback, got %s", raw)
	}
}
