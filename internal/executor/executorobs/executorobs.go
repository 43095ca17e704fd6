// Package executorobs decorates an executor with tracing, structured logs
// and Prometheus metrics. The wrapped executor stays observability-free;
// this layer is the only place dispatch telemetry is emitted.
package executorobs

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"broker-bridge/internal/interfaces"
	"broker-bridge/internal/logger"
	"broker-bridge/internal/metrics"
	"broker-bridge/internal/params"
	"broker-bridge/internal/session"
	"broker-bridge/internal/trace"
	"broker-bridge/internal/types"
)

// ObservableExecutor wraps an Executor with spans, logs and metrics.
type ObservableExecutor struct {
	inner   interfaces.Executor
	metrics *metrics.Metrics
}

var _ interfaces.Executor = (*ObservableExecutor)(nil)

// Wrap decorates an executor. A nil metrics set disables counters but
// keeps spans and logs.
func Wrap(inner interfaces.Executor, m *metrics.Metrics) *ObservableExecutor {
	return &ObservableExecutor{inner: inner, metrics: m}
}

func (o *ObservableExecutor) Execute(ctx context.Context, sess session.Session, op params.Operation, fields map[string]any) (types.Response, error) {
	ctx, span := trace.StartSpan(ctx, "executor.execute",
		oteltrace.WithAttributes(
			attribute.String("broker", sess.Broker()),
			attribute.String("operation", op.String()),
		))
	defer span.End()

	resp, err := o.inner.Execute(ctx, sess, op, fields)
	o.observe(ctx, span, sess.Broker(), op.String(), resp, err)
	return resp, err
}

func (o *ObservableExecutor) PlaceOrder(ctx context.Context, sess session.Session, p params.OrderParams) (types.Response, error) {
	ctx, span := trace.StartSpan(ctx, "executor.place_order",
		oteltrace.WithAttributes(
			attribute.String("broker", sess.Broker()),
			attribute.String("symbol", p.Symbol),
			attribute.String("side", p.Side.String()),
			attribute.Int("quantity", p.Quantity),
		))
	defer span.End()

	resp, err := o.inner.PlaceOrder(ctx, sess, p)
	o.observe(ctx, span, sess.Broker(), params.OpPlaceOrder.String(), resp, err)
	return resp, err
}

func (o *ObservableExecutor) Quotes(ctx context.Context, sess session.Session, p params.QuoteParams) (types.Response, error) {
	ctx, span := trace.StartSpan(ctx, "executor.quotes",
		oteltrace.WithAttributes(
			attribute.String("broker", sess.Broker()),
			attribute.Int("symbol_count", len(p.Symbols)),
		))
	defer span.End()

	resp, err := o.inner.Quotes(ctx, sess, p)
	o.observe(ctx, span, sess.Broker(), params.OpGetQuotes.String(), resp, err)
	return resp, err
}

func (o *ObservableExecutor) Historical(ctx context.Context, sess session.Session, p params.HistoricalParams) (types.Response, error) {
	ctx, span := trace.StartSpan(ctx, "executor.historical",
		oteltrace.WithAttributes(
			attribute.String("broker", sess.Broker()),
			attribute.String("symbol", p.Symbol),
			attribute.String("interval", p.Interval),
		))
	defer span.End()

	resp, err := o.inner.Historical(ctx, sess, p)
	o.observe(ctx, span, sess.Broker(), params.OpGetHistorical.String(), resp, err)
	return resp, err
}

func (o *ObservableExecutor) observe(ctx context.Context, span oteltrace.Span, broker, operation string, resp types.Response, err error) {
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Broker resolution failed", err,
			"broker", broker, "operation", operation)
		if o.metrics != nil {
			o.metrics.OperationsTotal.WithLabelValues(broker, operation, "error").Inc()
		}
		return
	}

	span.SetAttributes(
		attribute.Bool("success", resp.Success),
		attribute.Float64("latency_ms", resp.LatencyMS),
	)

	outcome := "success"
	if !resp.Success {
		outcome = resp.ErrorCode
	}

	if o.metrics != nil {
		o.metrics.OperationsTotal.WithLabelValues(broker, operation, outcome).Inc()
		o.metrics.DispatchDur.WithLabelValues(broker, operation).Observe(resp.LatencyMS / 1000.0)
		switch resp.ErrorCode {
		case types.ErrCodeValidation:
			o.metrics.ValidationFailures.WithLabelValues(broker, operation).Inc()
		case types.ErrCodeTransport:
			o.metrics.TransportFailures.WithLabelValues(broker, operation).Inc()
		}
	}

	logger.Dispatch(ctx, broker, operation, resp.Success, resp.LatencyMS)
	if !resp.Success {
		logger.InfoSkip(ctx, 1, "Broker operation failed",
			"broker", broker,
			"operation", operation,
			"error_code", resp.ErrorCode,
			"error", resp.Error)
	}
}
