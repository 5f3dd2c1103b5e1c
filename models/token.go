// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenResponse is the body returned by the login and refresh endpoints.
//
// AccessToken is the bearer credential attached to authenticated requests.
// RefreshToken is additionally delivered as the httpOnly "refresh_token"
// cookie; the client keeps a copy so the session survives restarts.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	AccessExpiresIn  int    `json:"access_expires_in"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
}

// TokenClaims is the client-side view of an access token. The client never
// holds the signing key, so these values are informational only and are
// never used for authorization decisions.
type TokenClaims struct {
	// Subject is the "sub" claim (the user ID).
	Subject string

	// Role is the custom "role" claim, empty when absent.
	Role string

	// ExpiresAt is the "exp" claim, zero when absent.
	ExpiresAt time.Time

	// IssuedAt is the "iat" claim, zero when absent.
	IssuedAt time.Time
}

// Expired reports whether the token has an expiry that lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
