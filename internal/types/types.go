// Package types holds the shared DTOs crossing package boundaries.
package types

import "encoding/json"

// Error codes carried in the response envelope.
const (
	ErrCodeValidation  = "validation"
	ErrCodeUnsupported = "unsupported_operation"
	ErrCodeTransport   = "transport"
)

// Response is the uniform envelope every operation resolves to, success or
// not. Data is the broker's raw JSON, untouched.
type Response struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
	Broker    string          `json:"broker"`
	Operation string          `json:"operation"`
	LatencyMS float64         `json:"latency_ms"`
}
