package handler

import (
	"log/slog"
	"net/http"

	"agridash/internal/delivery/http/response"
	"agridash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// profileView is the response shape for profile reads: the stored record when
// one exists, plus the prefilled form state for first-time users.
type profileView struct {
	Profile any                  `json:"profile"`
	Form    *usecase.ProfileForm `json:"form"`
}

// GetProfile handles fetching the caller's profile. A first-time caller gets
// a null profile and a form prefilled from the session display name.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	displayName := sessionDisplayName(c)

	profile, err := h.profileUC.Load(ctx, owner, displayName)
	if err != nil {
		return errors.WithStack(err)
	}

	form, err := h.profileUC.OpenForm(ctx, owner, displayName)
	if err != nil {
		return errors.WithStack(err)
	}

	view := profileView{Form: form}
	if profile != nil {
		view.Profile = profile
	}

	return response.Success(c, http.StatusOK, view, "Profile retrieved successfully")
}

// SaveProfile handles the profile form flow: open the form, submit the
// entered values, and return the refreshed record.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var input usecase.ProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	ctx := c.Request().Context()
	displayName := sessionDisplayName(c)

	if _, err := h.profileUC.OpenForm(ctx, owner, displayName); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUC.Submit(ctx, owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}
