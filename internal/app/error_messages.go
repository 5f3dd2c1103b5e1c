// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ordersctl client.
//
// All Msg* constants are the error messages the Orders API places in the
// "detail" field of its error responses. The service layer matches on them
// to tell apart failures that share a status code (e.g. the two kinds of 409
// on order endpoints).
package app

const (
	// MsgInvalidCredentials is returned by POST /auth/login when the email
	// and password do not match an account.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailAlreadyExists is returned by POST /auth/register for an email
	// that already has an account.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgRefreshTokenMissing is returned by POST /auth/refresh when the
	// refresh_token cookie is absent.
	MsgRefreshTokenMissing = "Refresh token missing"

	// MsgInvalidRefreshToken is returned by POST /auth/refresh for an unknown,
	// revoked or expired refresh token.
	MsgInvalidRefreshToken = "Invalid refresh token"

	// MsgInvalidAuthentication is returned by protected routes when the bearer
	// token is missing, expired or cannot be verified.
	MsgInvalidAuthentication = "Invalid authentication credentials"

	// MsgForbidden is returned by admin-only routes for non-admin users.
	MsgForbidden = "Forbidden"

	// MsgOrderNotFound is returned when the order does not exist or belongs to
	// another user.
	MsgOrderNotFound = "Order not found"

	// MsgIdempotencyConflict is returned by POST /orders when the
	// Idempotency-Key was already used for a different request.
	MsgIdempotencyConflict = "Idempotency conflict"

	// MsgInvalidStatusTransition is returned by PATCH /orders/{id}/status
	// when the order is not in a state that allows the requested status.
	MsgInvalidStatusTransition = "Invalid status transition"
)
