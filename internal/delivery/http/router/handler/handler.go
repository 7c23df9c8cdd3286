// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"agridash/internal/delivery/http/middleware"
	"agridash/internal/delivery/http/response"
	domainerrors "agridash/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// sessionUserID reads the authenticated owner id set by the auth middleware.
// The error lands in the centralized error handler as a 401.
func sessionUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionRequired.WithDetails("Invalid user ID in token")
	}

	return userID, nil
}

// sessionDisplayName reads the display name carried by the session token.
// Missing claims degrade to an empty name.
func sessionDisplayName(c echo.Context) string {
	name, _ := c.Get(middleware.ContextKeyDisplayName).(string)

	return name
}
