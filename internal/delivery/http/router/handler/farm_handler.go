package handler

import (
	"log/slog"
	"net/http"

	"agridash/internal/delivery/http/response"
	"agridash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FarmHandlerParams holds dependencies for FarmHandler, injected by Fx.
type FarmHandlerParams struct {
	fx.In

	FarmUC usecase.FarmUsecase
	Logger *slog.Logger
}

// FarmHandler holds dependencies for farm-related handlers.
type FarmHandler struct {
	farmUC usecase.FarmUsecase
	logger *slog.Logger
}

// NewFarmHandler is the constructor for FarmHandler.
func NewFarmHandler(params FarmHandlerParams) *FarmHandler {
	return &FarmHandler{
		farmUC: params.FarmUC,
		logger: params.Logger,
	}
}

// ListFarms handles fetching the caller's farm list.
func (h *FarmHandler) ListFarms(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	farms, err := h.farmUC.Load(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farms, "Farms retrieved successfully")
}

// CreateFarm handles the create dialog flow: open a blank form, submit the
// entered values, and return the refreshed list.
func (h *FarmHandler) CreateFarm(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var input usecase.FarmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}

	ctx := c.Request().Context()
	if _, err := h.farmUC.OpenForm(ctx, owner, nil); err != nil {
		return errors.WithStack(err)
	}

	farms, err := h.farmUC.Submit(ctx, owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, farms, "Farm created")
}

// UpdateFarm handles the edit dialog flow for an existing farm.
func (h *FarmHandler) UpdateFarm(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_FARM_ID", "Invalid farm ID format")
	}

	var input usecase.FarmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}

	ctx := c.Request().Context()
	if _, err := h.farmUC.OpenForm(ctx, owner, &farmID); err != nil {
		return errors.WithStack(err)
	}

	farms, err := h.farmUC.Submit(ctx, owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farms, "Farm updated")
}

// DeleteFarm handles farm deletion.
func (h *FarmHandler) DeleteFarm(c echo.Context) error {
	owner, err := sessionUserID(c)
	if err != nil {
		return err
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_FARM_ID", "Invalid farm ID format")
	}

	farms, err := h.farmUC.Remove(c.Request().Context(), owner, farmID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farms, "Farm deleted")
}
