package handler

import (
	"log/slog"
	"net/http"

	"agridash/internal/delivery/http/response"
	"agridash/internal/domain/entity"
	"agridash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler holds dependencies for notification preference handlers.
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler.
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// TogglePreferenceRequest represents the request body for toggling a preference.
type TogglePreferenceRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// GetPreferences handles fetching the caller's notification preferences,
// materializing the default row on first access.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	prefs, err := h.preferenceUC.Load(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// TogglePreference handles flipping a single notification channel.
func (h *PreferenceHandler) TogglePreference(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	field, ok := entity.ParsePreferenceField(c.Param("field"))
	if !ok {
		return response.BadRequest(c, "UNKNOWN_PREFERENCE_FIELD", "Unknown notification preference")
	}

	var req TogglePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	prefs, err := h.preferenceUC.Toggle(c.Request().Context(), owner, field, *req.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated")
}
