package session

import (
	"context"
	"encoding/json"

	"broker-bridge/internal/catalog"
)

// Call records one dispatched endpoint invocation.
type Call struct {
	Endpoint catalog.Endpoint
	Payload  map[string]any
}

// Mock is an in-memory Session for tests and dry runs. Responses are keyed
// by endpoint name; endpoints without a canned response get a minimal
// simulated acknowledgement.
type Mock struct {
	BrokerName string
	Responses  map[string]json.RawMessage
	Err        error
	Calls      []Call
}

var _ Session = (*Mock)(nil)

func NewMock(broker string) *Mock {
	return &Mock{
		BrokerName: broker,
		Responses:  make(map[string]json.RawMessage),
	}
}

func (m *Mock) Broker() string { return m.BrokerName }

func (m *Mock) Execute(ctx context.Context, ep catalog.Endpoint, payload map[string]any) (json.RawMessage, error) {
	m.Calls = append(m.Calls, Call{Endpoint: ep, Payload: payload})
	if m.Err != nil {
		return nil, m.Err
	}
	if resp, ok := m.Responses[ep.Name]; ok {
		return resp, nil
	}
	return json.RawMessage(`{"status":"simulated","endpoint":"` + ep.Name + `"}`), nil
}
