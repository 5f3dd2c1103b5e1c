package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTP status sentinels. An [*HTTPError] unwraps to the sentinel of its status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrRefreshFailed is returned by Refresh when no new access token could
	// be obtained.
	ErrRefreshFailed = errors.New("token refresh failed")

	// ErrDecodingResponse is returned when a response body is not the
	// expected JSON.
	ErrDecodingResponse = errors.New("error decoding response body")

	// ErrInvalidAddress is returned by NewAPIClient for an unusable base
	// address.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// HTTPError is a non-2xx response from the Orders API.
type HTTPError struct {
	StatusCode int
	// Message is the server's error message, or the status text when the
	// body carries none.
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel for the status code.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// [*HTTPError].
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
