// Package transform converts standard parameter records into broker-specific
// wire payloads. Transformers are pure: static field-rename and enum-value
// tables, no I/O, deterministic output. One transformer per broker, resolved
// through a Factory.
package transform

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"broker-bridge/internal/params"
)

// Transformer lowers standard records into one broker's payload shape.
// Standard fields the broker has no mapping for are omitted from the output;
// Extras are merged last and win any key collision.
type Transformer interface {
	Broker() string
	OrderPayload(p params.OrderParams) map[string]any
	QuotePayload(p params.QuoteParams) map[string]any
	HistoricalPayload(p params.HistoricalParams) map[string]any
}

// ErrUnknownBroker is returned by Factory.Get for an unregistered name.
// Unregistered brokers fail loudly at lookup time; they never degrade into
// an empty payload.
type ErrUnknownBroker struct {
	Broker    string
	Available []string
}

func (e ErrUnknownBroker) Error() string {
	return fmt.Sprintf("no transformer registered for broker %q (available: %v)", e.Broker, e.Available)
}

// Factory maps broker names to transformers. Populated at startup, read-only
// afterward; Register is not safe for concurrent use.
type Factory struct {
	transformers map[string]Transformer
}

func NewFactory() *Factory {
	return &Factory{transformers: make(map[string]Transformer)}
}

func (f *Factory) Register(t Transformer) {
	f.transformers[t.Broker()] = t
}

func (f *Factory) Get(broker string) (Transformer, error) {
	t, ok := f.transformers[broker]
	if !ok {
		return nil, ErrUnknownBroker{Broker: broker, Available: f.Brokers()}
	}
	return t, nil
}

// Brokers returns the registered broker names, sorted.
func (f *Factory) Brokers() []string {
	names := make([]string, 0, len(f.transformers))
	for name := range f.transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFactory registers every built-in broker transformer.
func DefaultFactory() *Factory {
	f := NewFactory()
	f.Register(NewUpstox())
	f.Register(NewXTS())
	f.Register(NewGroww())
	f.Register(NewKite())
	return f
}

// mergeExtras copies extras over the computed payload. Extras take
// precedence over identically named computed fields.
func mergeExtras(payload map[string]any, extras map[string]any) map[string]any {
	for k, v := range extras {
		payload[k] = v
	}
	return payload
}

// priceFloat renders an optional decimal for the wire: brokers expect a
// plain number and treat 0 as "not set".
func priceFloat(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}
	return d.InexactFloat64()
}

func exchangeOrDefault(ex string) string {
	if ex == "" {
		return params.DefaultExchange
	}
	return ex
}
