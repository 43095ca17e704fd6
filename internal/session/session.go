// Package session is the boundary to the actual broker APIs. A Session owns
// its HTTP client lifecycle, auth headers and any throttling; the executor
// only ever reaches it through Execute. This layer makes exactly one attempt
// per call: no retries, no backoff, no fallback.
package session

import (
	"context"
	"encoding/json"

	"broker-bridge/internal/catalog"
)

// Session dispatches one resolved endpoint call and returns the broker's
// raw JSON body.
type Session interface {
	Broker() string
	Execute(ctx context.Context, ep catalog.Endpoint, payload map[string]any) (json.RawMessage, error)
}
