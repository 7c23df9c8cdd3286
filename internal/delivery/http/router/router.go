// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agridash/internal/delivery/http/middleware"
	"agridash/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FarmHandler       *handler.FarmHandler
	ProfileHandler    *handler.ProfileHandler
	PreferenceHandler *handler.PreferenceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	farmHandler       *handler.FarmHandler
	profileHandler    *handler.ProfileHandler
	preferenceHandler *handler.PreferenceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		farmHandler:       params.FarmHandler,
		profileHandler:    params.ProfileHandler,
		preferenceHandler: params.PreferenceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every resource route requires a signed-in session
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.GET("/farms", r.farmHandler.ListFarms)
		api.POST("/farms", r.farmHandler.CreateFarm)
		api.PUT("/farms/:id", r.farmHandler.UpdateFarm)
		api.DELETE("/farms/:id", r.farmHandler.DeleteFarm)

		api.GET("/profile", r.profileHandler.GetProfile)
		api.PUT("/profile", r.profileHandler.SaveProfile)

		api.GET("/preferences", r.preferenceHandler.GetPreferences)
		api.PATCH("/preferences/:field", r.preferenceHandler.TogglePreference)
	}
}
