package service

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
)

// jsonResponse builds an adapter response with v encoded as the body.
func jsonResponse(t *testing.T, status int, v any) *adapter.Response {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return &adapter.Response{StatusCode: status, Header: http.Header{}, Body: body}
}

// httpErr mimics the error the adapter returns for a non-2xx response.
func httpErr(status int, message string) error {
	return &adapter.HTTPError{StatusCode: status, Message: message}
}

type fixedKeys string

func (k fixedKeys) Generate() string { return string(k) }
