package middleware

import (
	"strings"

	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware for handlers to use.
const (
	ContextKeyUserID      = "userID"
	ContextKeyDisplayName = "displayName"
)

// AuthMiddleware provides middleware for session token authentication.
// Every resource route sits behind it; an unauthenticated request never
// reaches a manager.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the session identity on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrSessionRequired.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrSessionRequired.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrSessionRequired.WithDetails("Invalid or expired token")
		}

		// Set the session identity on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyDisplayName, claims.Name)

		return next(c)
	}
}
