// Package executor ties the pieces together: resolve the broker's
// transformer, look up the endpoint mapping, validate, transform, dispatch
// through the session, and wrap whatever happens in the standard envelope.
// Each call is stateless request/response; there are no retries and no
// fallback between brokers.
package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"broker-bridge/internal/catalog"
	"broker-bridge/internal/interfaces"
	"broker-bridge/internal/params"
	"broker-bridge/internal/schema"
	"broker-bridge/internal/session"
	"broker-bridge/internal/transform"
	"broker-bridge/internal/types"
)

// Executor executes standardized operations. All three registries are
// injected at construction and treated as read-only afterward.
type Executor struct {
	schemas      *schema.Registry
	catalog      *catalog.Registry
	transformers *transform.Factory
}

var _ interfaces.Executor = (*Executor)(nil)

func New(schemas *schema.Registry, cat *catalog.Registry, transformers *transform.Factory) *Executor {
	return &Executor{
		schemas:      schemas,
		catalog:      cat,
		transformers: transformers,
	}
}

// Default builds an executor over the built-in schemas, catalogs and
// transformers.
func Default() *Executor {
	return New(schema.Default(), catalog.Default(), transform.DefaultFactory())
}

// payloadFunc builds the broker payload once the transformer is resolved.
// Operations without a standard record pass their fields through unchanged.
type payloadFunc func(t transform.Transformer) map[string]any

// Execute runs an operation from a raw field map. Fields pass through to
// the broker without renaming; use the typed entry points for operations
// with a standard record.
//
// The returned error is non-nil only for an unregistered broker, which is
// a programmer error. Every runtime failure (validation, unsupported
// operation, transport) resolves to a success=false envelope instead.
func (e *Executor) Execute(ctx context.Context, sess session.Session, op params.Operation, fields map[string]any) (types.Response, error) {
	return e.run(ctx, sess, op, fields, func(transform.Transformer) map[string]any {
		payload := make(map[string]any, len(fields))
		for k, v := range fields {
			payload[k] = v
		}
		return payload
	})
}

// PlaceOrder validates and dispatches a standard order.
func (e *Executor) PlaceOrder(ctx context.Context, sess session.Session, p params.OrderParams) (types.Response, error) {
	return e.run(ctx, sess, params.OpPlaceOrder, p.Fields(), func(t transform.Transformer) map[string]any {
		return t.OrderPayload(p)
	})
}

// Quotes validates and dispatches a standard quote request.
func (e *Executor) Quotes(ctx context.Context, sess session.Session, p params.QuoteParams) (types.Response, error) {
	return e.run(ctx, sess, params.OpGetQuotes, p.Fields(), func(t transform.Transformer) map[string]any {
		return t.QuotePayload(p)
	})
}

// Historical validates and dispatches a standard historical data request.
func (e *Executor) Historical(ctx context.Context, sess session.Session, p params.HistoricalParams) (types.Response, error) {
	return e.run(ctx, sess, params.OpGetHistorical, p.Fields(), func(t transform.Transformer) map[string]any {
		return t.HistoricalPayload(p)
	})
}

func (e *Executor) run(ctx context.Context, sess session.Session, op params.Operation, fields map[string]any, build payloadFunc) (types.Response, error) {
	broker := sess.Broker()
	start := time.Now()

	fail := func(code, msg string) types.Response {
		return types.Response{
			Success:   false,
			Error:     msg,
			ErrorCode: code,
			Broker:    broker,
			Operation: op.String(),
			LatencyMS: latencyMS(start),
		}
	}

	t, err := e.transformers.Get(broker)
	if err != nil {
		return types.Response{}, err
	}

	mapping, ok := e.catalog.Lookup(broker, op)
	if !ok {
		return fail(types.ErrCodeUnsupported,
			fmt.Sprintf("operation %s not supported by broker %s", op, broker)), nil
	}

	if errs := e.schemas.Validate(op, fields); len(errs) > 0 {
		return fail(types.ErrCodeValidation,
			"parameter validation failed: "+strings.Join(errs, "; ")), nil
	}

	payload := build(t)

	raw, err := sess.Execute(ctx, mapping.Endpoint, payload)
	if err != nil {
		return fail(types.ErrCodeTransport, err.Error()), nil
	}

	return types.Response{
		Success:   true,
		Data:      raw,
		Broker:    broker,
		Operation: op.String(),
		LatencyMS: latencyMS(start),
	}, nil
}

func latencyMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
