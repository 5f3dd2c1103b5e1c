// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the durable client-side storage of the ordersctl
// client: a small SQLite key-value table that mirrors the session
// credentials so they survive process restarts.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Fixed record names of the persisted credentials.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// CredentialRepository is a durable key-value store for credential strings.
type CredentialRepository interface {
	// Get returns the value stored under name, or [ErrCredentialNotFound]
	// when no record exists.
	Get(ctx context.Context, name string) (string, error)

	// Put creates or replaces the record stored under name.
	Put(ctx context.Context, name, value string) error

	// Delete removes the record stored under name. Deleting a missing record
	// is not an error.
	Delete(ctx context.Context, name string) error
}
