package interfaces

import (
	"context"

	"broker-bridge/internal/params"
	"broker-bridge/internal/session"
	"broker-bridge/internal/types"
)

// Executor runs standardized operations against a broker session and
// resolves every outcome to the uniform response envelope.
type Executor interface {
	Execute(ctx context.Context, sess session.Session, op params.Operation, fields map[string]any) (types.Response, error)
	PlaceOrder(ctx context.Context, sess session.Session, p params.OrderParams) (types.Response, error)
	Quotes(ctx context.Context, sess session.Session, p params.QuoteParams) (types.Response, error)
	Historical(ctx context.Context, sess session.Session, p params.HistoricalParams) (types.Response, error)
}
