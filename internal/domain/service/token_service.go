// Package service declares the domain-level service contracts consumed by the
// use cases. Concrete implementations live under internal/infra.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims carries the identity fields the application consumes from a
// session token issued by the external identity provider.
type SessionClaims struct {
	UserID uuid.UUID // Subject of the token.
	Email  string    // Optional email claim.
	Name   string    // Optional display-name claim.
	jwt.RegisteredClaims
}

// TokenService validates session tokens. Token issuance belongs to the
// identity provider; this service only checks signatures and extracts the
// session identity.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns the
	// session identity it carries.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
