package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-orders-admin/models"
)

// ParseTokenClaims decodes the claims of an access token WITHOUT verifying
// its signature. The client never holds the signing key; the result is only
// used to show who is signed in and when the token expires.
//
// Recognised claims:
//   - sub  -> Subject
//   - role -> Role (custom claim, optional)
//   - exp  -> ExpiresAt (optional)
//   - iat  -> IssuedAt (optional)
func ParseTokenClaims(tokenString string) (models.TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.TokenClaims{}, errors.New("invalid token claims")
	}

	var result models.TokenClaims

	if result.Subject, err = claims.GetSubject(); err != nil {
		return models.TokenClaims{}, fmt.Errorf("error getting subject from token: %w", err)
	}
	if role, ok := claims["role"].(string); ok {
		result.Role = role
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error getting expiration from token: %w", err)
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	iat, err := claims.GetIssuedAt()
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error getting issued-at from token: %w", err)
	}
	if iat != nil {
		result.IssuedAt = iat.Time
	}

	return result, nil
}
