package catalog

import (
	"broker-bridge/internal/params"
)

var orderRequired = []string{"symbol", "exchange", "quantity", "order_side", "order_type", "product_type"}

// Default builds the registry with every built-in broker catalog.
func Default() *Registry {
	r := NewRegistry()
	RegisterUpstox(r)
	RegisterXTS(r)
	RegisterGroww(r)
	RegisterKite(r)
	return r
}

// RegisterUpstox registers the Upstox v2 endpoint catalog
// (base URL https://api.upstox.com/v2/).
func RegisterUpstox(r *Registry) {
	NewBuilder("upstox").
		Operation(params.OpPlaceOrder,
			Endpoint{Name: "place_order", Path: "order/place", Method: "POST", RequiresAuth: true, RateGroup: "orders"},
			orderRequired,
			"price", "trigger_price", "validity", "disclosed_quantity", "tag", "is_amo").
		Operation(params.OpModifyOrder,
			Endpoint{Name: "modify_order", Path: "order/modify", Method: "PUT", RequiresAuth: true, RateGroup: "orders"},
			[]string{"order_id"},
			"quantity", "price", "trigger_price", "validity").
		Operation(params.OpCancelOrder,
			Endpoint{Name: "cancel_order", Path: "order/cancel", Method: "DELETE", RequiresAuth: true, RateGroup: "orders"},
			[]string{"order_id"}).
		Operation(params.OpGetOrders,
			Endpoint{Name: "orders", Path: "order/retrieve-all", Method: "GET", RequiresAuth: true, CacheTTL: 5},
			nil).
		Operation(params.OpGetPositions,
			Endpoint{Name: "positions", Path: "portfolio/short-term-positions", Method: "GET", RequiresAuth: true, CacheTTL: 10},
			nil).
		Operation(params.OpGetHoldings,
			Endpoint{Name: "holdings", Path: "portfolio/long-term-holdings", Method: "GET", RequiresAuth: true, CacheTTL: 30},
			nil).
		Operation(params.OpGetQuotes,
			Endpoint{Name: "quote", Path: "market-quote/quotes", Method: "GET", RequiresAuth: true, RateGroup: "quotes", CacheTTL: 1},
			[]string{"symbols"},
			"exchange").
		Operation(params.OpGetMarketStatus,
			Endpoint{Name: "market_status", Path: "market-quote/market-status/{segment}", Method: "GET", RequiresAuth: true, CacheTTL: 60},
			nil,
			"segment").
		Operation(params.OpGetHistorical,
			Endpoint{Name: "historical_candles", Path: "historical-candle/{instrumentKey}/{interval}/{to}", Method: "GET", RequiresAuth: true, CacheTTL: 300},
			[]string{"symbol", "exchange", "interval"},
			"from_date", "to_date", "limit").
		Operation(params.OpGetProfile,
			Endpoint{Name: "profile", Path: "user/profile", Method: "GET", RequiresAuth: true, CacheTTL: 3600},
			nil).
		Operation(params.OpGetFunds,
			Endpoint{Name: "funds", Path: "user/get-funds-and-margin", Method: "GET", RequiresAuth: true, CacheTTL: 10},
			nil).
		Build(r)
}

// RegisterXTS registers the Symphony XTS endpoint catalog. Interactive and
// market data APIs live under one host (base URL
// https://developers.symphonyfintech.in/), so paths carry their prefix.
func RegisterXTS(r *Registry) {
	NewBuilder("xts").
		Operation(params.OpPlaceOrder,
			Endpoint{Name: "order.place", Path: "interactive/orders", Method: "POST", RequiresAuth: true, RateGroup: "orders"},
			orderRequired,
			"price", "trigger_price", "validity", "disclosed_quantity", "exchangeInstrumentID").
		Operation(params.OpModifyOrder,
			Endpoint{Name: "order.modify", Path: "interactive/orders", Method: "PUT", RequiresAuth: true, RateGroup: "orders"},
			[]string{"order_id"}).
		Operation(params.OpCancelOrder,
			Endpoint{Name: "order.cancel", Path: "interactive/orders", Method: "DELETE", RequiresAuth: true, RateGroup: "orders"},
			[]string{"order_id"}).
		Operation(params.OpGetOrders,
			Endpoint{Name: "orders", Path: "interactive/orders", Method: "GET", RequiresAuth: true, CacheTTL: 5},
			nil).
		Operation(params.OpGetTrades,
			Endpoint{Name: "trades", Path: "interactive/orders/trades", Method: "GET", RequiresAuth: true, CacheTTL: 5},
			nil).
		Operation(params.OpGetPositions,
			Endpoint{Name: "portfolio.positions", Path: "interactive/portfolio/positions", Method: "GET", RequiresAuth: true, CacheTTL: 10},
			nil).
		Operation(params.OpGetHoldings,
			Endpoint{Name: "portfolio.holdings", Path: "interactive/portfolio/holdings", Method: "GET", RequiresAuth: true, CacheTTL: 30},
			nil).
		Operation(params.OpGetQuotes,
			Endpoint{Name: "market.instruments.quotes", Path: "apimarketdata/instruments/quotes", Method: "GET", RequiresAuth: true, RateGroup: "quotes", CacheTTL: 1},
			[]string{"symbols"},
			"instruments", "xtsMessageCode").
		Operation(params.OpSearchInstruments,
			Endpoint{Name: "market.search.instrumentsbystring", Path: "apimarketdata/search/instruments", Method: "GET", RequiresAuth: true, CacheTTL: 300},
			[]string{"search_string"}).
		Operation(params.OpGetProfile,
			Endpoint{Name: "user.profile", Path: "interactive/user/profile", Method: "GET", RequiresAuth: true, CacheTTL: 3600},
			nil).
		Operation(params.OpGetFunds,
			Endpoint{Name: "user.balance", Path: "interactive/user/balance", Method: "GET", RequiresAuth: true, CacheTTL: 60},
			nil).
		Build(r)
}

// RegisterGroww registers the Groww endpoint catalog (base URL
// https://groww.in/). Groww is market data only; it has no public order API.
func RegisterGroww(r *Registry) {
	NewBuilder("groww").
		Operation(params.OpGetQuotes,
			Endpoint{Name: "live_aggregated", Path: "v1/api/stocks_data/v1/tr_live_delayed/segment/CASH/latest_aggregated", Method: "POST", RateGroup: "quotes", CacheTTL: 5},
			[]string{"symbols"},
			"exchange").
		Operation(params.OpGetIndices,
			Endpoint{Name: "nifty_data", Path: "v1/api/stocks_data/v1/accord_points/exchange/NSE/segment/CASH/latest_indices_ohlc/{index_name}", Method: "GET", CacheTTL: 60},
			nil,
			"index_name").
		Build(r)
}

// RegisterKite registers the Zerodha Kite Connect endpoint catalog
// (base URL https://api.kite.trade/).
func RegisterKite(r *Registry) {
	NewBuilder("kite").
		Operation(params.OpPlaceOrder,
			Endpoint{Name: "order.place", Path: "orders/{variety}", Method: "POST", RequiresAuth: true, RateGroup: "orders"},
			orderRequired,
			"price", "trigger_price", "validity", "disclosed_quantity", "tag").
		Operation(params.OpModifyOrder,
			Endpoint{Name: "order.modify", Path: "orders/{variety}/{order_id}", Method: "PUT", RequiresAuth: true, RateGroup: "orders"},
			[]string{"order_id"}).
		Operation(params.OpCancelOrder,
			Endpoint{Name: "order.cancel", Path: "orders/{variety}/{order_id}", Method: "DELETE", RequiresAuth: true, RateGroup: "orders"},
			[]string{"order_id"}).
		Operation(params.OpGetOrders,
			Endpoint{Name: "orders", Path: "orders", Method: "GET", RequiresAuth: true, CacheTTL: 5},
			nil).
		Operation(params.OpGetQuotes,
			Endpoint{Name: "quote", Path: "quote", Method: "GET", RequiresAuth: true, RateGroup: "quotes", CacheTTL: 1},
			[]string{"symbols"},
			"exchange").
		Operation(params.OpGetHistorical,
			Endpoint{Name: "historical", Path: "instruments/historical/{instrument_token}/{interval}", Method: "GET", RequiresAuth: true, CacheTTL: 300},
			[]string{"symbol", "exchange", "interval"},
			"from_date", "to_date").
		Operation(params.OpGetPositions,
			Endpoint{Name: "positions", Path: "portfolio/positions", Method: "GET", RequiresAuth: true, CacheTTL: 10},
			nil).
		Operation(params.OpGetHoldings,
			Endpoint{Name: "holdings", Path: "portfolio/holdings", Method: "GET", RequiresAuth: true, CacheTTL: 30},
			nil).
		Operation(params.OpGetProfile,
			Endpoint{Name: "profile", Path: "user/profile", Method: "GET", RequiresAuth: true, CacheTTL: 3600},
			nil).
		Operation(params.OpGetFunds,
			Endpoint{Name: "margins", Path: "user/margins", Method: "GET", RequiresAuth: true, CacheTTL: 10},
			nil).
		Build(r)
}
