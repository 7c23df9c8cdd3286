package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agridash/internal/delivery/http/middleware"
	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/infra/notify"
	mockRepo "agridash/internal/mocks/repository"
	"agridash/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFarmHandler_CreateFarm_Integration(t *testing.T) {
	owner := uuid.New()

	farmRepo := mockRepo.NewMockFarmRepository(t)
	farmUC := impl.NewFarmService(farmRepo, notify.NewSlogNotifier(slog.Default()))

	handler := &FarmHandler{
		farmUC: farmUC,
		logger: slog.Default(),
	}

	farmRepo.EXPECT().
		ListByOwner(mock.Anything, owner).
		Return([]*entity.Farm{}, nil).
		Once()

	farmRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Farm")).
		Return(nil).
		Once()

	created := &entity.Farm{ID: uuid.New(), OwnerID: owner, Name: "Green Valley"}
	farmRepo.EXPECT().
		ListByOwner(mock.Anything, owner).
		Return([]*entity.Farm{created}, nil).
		Once()

	e := echo.New()
	body := `{"name":"Green Valley","location":"Fresno, CA","size_acres":"42.5","crop_types":"Wheat, Corn"}`
	req := httptest.NewRequest(http.MethodPost, "/api/farms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, owner)

	err := handler.CreateFarm(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "Farm created")
	assert.Contains(t, responseBody, "Green Valley")
}

func TestFarmHandler_ListFarms_MissingSession(t *testing.T) {
	handler := &FarmHandler{logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/farms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListFarms(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)
}

func TestFarmHandler_DeleteFarm_InvalidID(t *testing.T) {
	handler := &FarmHandler{logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/farms/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := handler.DeleteFarm(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_FARM_ID")
}
