// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account returned by the Orders API after registration.
type User struct {
	// ID is the server-assigned account identifier (UUID string).
	ID string `json:"id"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Role is the authorization role of the account ("user" or "admin").
	// Admin-only endpoints reject every other role with 403.
	Role string `json:"role"`
}

// Credentials is the login/registration payload.
// Password is sent once and never persisted by the client.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
