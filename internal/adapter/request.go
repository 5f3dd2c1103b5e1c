package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// maxAttempts is the number of times a single request may be sent. The
// second attempt is the resend after a successful refresh.
const maxAttempts = 2

// Request describes one API call. It is passed by value and never modified
// by the client, so the same Request can be resent after a refresh.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string

	// Path is appended to the configured base address, e.g. "/orders".
	Path string

	// Query holds the URL query parameters. May be nil.
	Query url.Values

	// Headers holds additional request headers. May be nil.
	Headers map[string]string

	// Body is JSON-encoded when non-nil.
	Body any

	// AlreadyRetried marks a request that has already been resent once.
	// A 401 on such a request is returned without a refresh.
	AlreadyRetried bool
}

// Get builds a GET request for path with optional query parameters.
func Get(path string, query url.Values) Request {
	return Request{Method: http.MethodGet, Path: path, Query: query}
}

// Post builds a POST request for path with a JSON body.
func Post(path string, body any) Request {
	return Request{Method: http.MethodPost, Path: path, Body: body}
}

// Patch builds a PATCH request for path with a JSON body.
func Patch(path string, body any) Request {
	return Request{Method: http.MethodPatch, Path: path, Body: body}
}

// WithHeader returns a copy of r with the header key set to value.
func (r Request) WithHeader(key, value string) Request {
	headers := make(map[string]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	headers[key] = value
	r.Headers = headers
	return r
}

// Response is the outcome of a request that reached the server.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
