// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the ordersctl client
// and the Orders API.
//
// The primary abstraction is [APIClient]. Its authenticated entry point,
// [APIClient.Do], attaches the current bearer credential to every request and
// recovers from a 401 exactly once: it calls the refresh endpoint, stores the
// new credential and resends the original request. When the refresh fails the
// credential is cleared and the original 401 is returned.
//
// Error values defined in errors.go are mapped from HTTP status codes through
// [*HTTPError] so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient issues requests against the Orders API.
type APIClient interface {
	// Do sends req with the current bearer credential. A 401 on the first
	// attempt triggers one refresh and one resend; every other failure is
	// returned unchanged. A non-2xx response is returned together with an
	// [*HTTPError].
	Do(ctx context.Context, req Request) (*Response, error)

	// DoUnauthenticated sends req without a credential and without the
	// refresh-and-retry logic. Used by login, registration and health checks.
	DoUnauthenticated(ctx context.Context, req Request) (*Response, error)

	// Refresh exchanges the refresh token for a new access token and stores
	// it in the session. It never carries the bearer header.
	Refresh(ctx context.Context) error

	// SetCredential replaces the active credential. The empty token removes
	// the Authorization header from all subsequent requests. Memory is always
	// updated; a persistence failure is returned.
	SetCredential(ctx context.Context, token string) error

	// Logout notifies the server on a best-effort basis and then clears the
	// credential unconditionally. Only the clear can fail.
	Logout(ctx context.Context) error
}

// Session is the credential holder read and updated by the client.
// It is implemented by *session.Session.
type Session interface {
	AccessToken() string
	RefreshToken() string
	SetCredential(ctx context.Context, token string) error
	SetTokens(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
