package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"broker-bridge/internal/catalog"
)

const defaultTimeout = 10 * time.Second

// AuthFunc mutates an outgoing request with whatever the broker's auth
// scheme needs (Bearer token, api-key header). Token acquisition itself is
// the caller's problem.
type AuthFunc func(*http.Request)

// BearerToken returns an AuthFunc setting a standard Bearer Authorization
// header.
func BearerToken(token string) AuthFunc {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Params configures an HTTP session for one broker.
type Params struct {
	Broker  string
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
	Auth    AuthFunc
}

// HTTP is the real-network Session: joins the base URL with the endpoint
// path, substitutes {param} placeholders from the payload, sends the rest
// as query parameters (GET/DELETE) or a JSON body (everything else).
type HTTP struct {
	p      Params
	client *http.Client
}

var _ Session = (*HTTP)(nil)

func NewHTTP(p Params) *HTTP {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &HTTP{
		p:      p,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTP) Broker() string { return s.p.Broker }

func (s *HTTP) Execute(ctx context.Context, ep catalog.Endpoint, payload map[string]any) (json.RawMessage, error) {
	remaining := make(map[string]any, len(payload))
	for k, v := range payload {
		remaining[k] = v
	}

	path, err := substitutePath(ep.Path, remaining)
	if err != nil {
		return nil, err
	}
	target := joinURL(s.p.BaseURL, path)

	var body io.Reader
	switch ep.Method {
	case http.MethodGet, http.MethodDelete:
		if q := encodeQuery(remaining); q != "" {
			target += "?" + q
		}
	default:
		b, err := json.Marshal(remaining)
		if err != nil {
			return nil, fmt.Errorf("encode payload for %s: %w", ep.Name, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range s.p.Headers {
		req.Header.Set(k, v)
	}
	if ep.RequiresAuth && s.p.Auth != nil {
		s.p.Auth(req)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s returned status %d: %s", s.p.Broker, ep.Name, resp.StatusCode, truncate(data, 200))
	}
	return data, nil
}

// substitutePath fills {param} placeholders from the payload, consuming the
// keys it uses so they are not repeated in query or body. A placeholder
// with no matching payload key is an error: the catalog and the transformer
// disagree about this endpoint.
func substitutePath(path string, payload map[string]any) (string, error) {
	for {
		start := strings.Index(path, "{")
		if start < 0 {
			return path, nil
		}
		end := strings.Index(path[start:], "}")
		if end < 0 {
			return "", fmt.Errorf("unbalanced path template %q", path)
		}
		name := path[start+1 : start+end]
		v, ok := payload[name]
		if !ok {
			return "", fmt.Errorf("path parameter %q not present in payload", name)
		}
		delete(payload, name)
		path = path[:start] + url.PathEscape(stringify(v)) + path[start+end+1:]
	}
}

func encodeQuery(payload map[string]any) string {
	q := url.Values{}
	for k, v := range payload {
		q.Set(k, stringify(v))
	}
	return q.Encode()
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
