package firebird

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultHTTPTimeout = 10 * time.Second

// Request is a JSON POST handed to a Transport.
type Request struct {
	URL    string
	Header http.Header
	Body   []byte
}

// Response is the raw outcome of a Transport call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends a JSON body to a URL and reports status and body.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a plain function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPTransport is the net/http backed Transport used by default.
type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport creates a transport with the given client timeout.
// A non-positive timeout falls back to 10 seconds.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPTransport{httpClient: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient wraps a caller supplied client.
func NewHTTPTransportWithClient(c *http.Client) *HTTPTransport {
	if c == nil {
		return NewHTTPTransport(0)
	}
	return &HTTPTransport{httpClient: c}
}

func (t *HTTPTransport) Send(ctx context.Context, r *Request) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	buf := r.Body
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
