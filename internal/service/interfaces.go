// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the use cases of the ordersctl client on top of
// the authenticated API client: account management, order management, SKU
// statistics and health checks.
//
// Services translate adapter errors into the business errors declared in
// errors.go, so callers never need to inspect HTTP status codes.
package service

import (
	"context"

	"github.com/MKhiriev/go-orders-admin/models"
)

// AuthService manages the account and the session credentials.
type AuthService interface {
	// Register creates a new account. It does not sign the user in.
	// Returns [ErrEmailAlreadyExists] for a taken email.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates with email and password and stores the issued
	// access and refresh tokens in the session.
	// Returns [ErrInvalidCredentials] when the server rejects the pair.
	Login(ctx context.Context, creds models.Credentials) error

	// Logout revokes the refresh token on a best-effort basis and clears the
	// session unconditionally.
	Logout(ctx context.Context) error

	// Status decodes the claims of the current access token without
	// contacting the server. Returns [ErrNotAuthenticated] without a token.
	Status(ctx context.Context) (models.TokenClaims, error)
}

// OrdersService manages the orders of the signed-in user.
type OrdersService interface {
	// List returns one page of the user's orders, newest first.
	List(ctx context.Context, params ListOrdersParams) (models.OrderList, error)

	// Get returns a single order with its items.
	// Returns [ErrOrderNotFound] for unknown or foreign orders.
	Get(ctx context.Context, id string) (models.Order, error)

	// Create places a new order. A random Idempotency-Key is generated unless
	// req.IdempotencyKey is set.
	Create(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)

	// UpdateStatus moves an order from created to paid or canceled.
	// Returns [ErrInvalidStatusTransition] when the server refuses.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)

	// AdminList lists orders across all users. Requires the admin role;
	// other users get [ErrAccessDenied].
	AdminList(ctx context.Context, params AdminListParams) (models.OrderList, error)
}

// StatsService reads the aggregated sales statistics.
type StatsService interface {
	// SkuStats returns per-SKU sold quantities per time window, newest
	// window first.
	SkuStats(ctx context.Context, params SkuStatsParams) ([]models.SkuStat, error)
}

// HealthService checks that the Orders API is up.
type HealthService interface {
	// Health calls the unauthenticated liveness endpoint.
	Health(ctx context.Context) (models.Health, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
