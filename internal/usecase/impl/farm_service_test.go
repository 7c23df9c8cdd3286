package impl

import (
	"context"
	"testing"

	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	mockRepo "agridash/internal/mocks/repository"
	"agridash/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// farmServiceFixtures holds all test dependencies for farm manager tests.
type farmServiceFixtures struct {
	service  usecase.FarmUsecase
	farmRepo *mockRepo.MockFarmRepository
	notifier *recordingNotifier
}

func createTestFarmService(t *testing.T) farmServiceFixtures {
	farmRepo := mockRepo.NewMockFarmRepository(t)
	notifier := &recordingNotifier{}
	service := NewFarmService(farmRepo, notifier)

	return farmServiceFixtures{
		service:  service,
		farmRepo: farmRepo,
		notifier: notifier,
	}
}

func testFarm(owner uuid.UUID, name string) *entity.Farm {
	return &entity.Farm{
		ID:      uuid.New(),
		OwnerID: owner,
		Name:    name,
	}
}

func TestFarmService_Load_Success(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	owner := uuid.New()
	stored := []*entity.Farm{testFarm(owner, "North Field"), testFarm(owner, "South Field")}

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return(stored, nil)

	farms, err := fx.service.Load(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, stored, farms)
	assert.Zero(t, fx.notifier.count())
}

func TestFarmService_Submit_Create(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return([]*entity.Farm{}, nil).
		Once()

	form, err := fx.service.OpenForm(ctx, owner, nil)
	require.NoError(t, err)
	assert.Nil(t, form.FarmID)
	assert.Empty(t, form.Name)

	var created *entity.Farm
	fx.farmRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Farm")).
		Run(func(_ context.Context, farm *entity.Farm) {
			created = farm
		}).
		Return(nil).
		Once()

	refreshed := []*entity.Farm{testFarm(owner, "Green Valley")}
	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return(refreshed, nil).
		Once()

	farms, err := fx.service.Submit(ctx, owner, usecase.FarmInput{
		Name:      "  Green Valley  ",
		Location:  "Fresno, CA",
		SizeAcres: "42.5",
		CropTypes: "Wheat, Corn, , Soybeans",
	})
	require.NoError(t, err)
	assert.Equal(t, refreshed, farms)

	require.NotNil(t, created)
	assert.Equal(t, owner, created.OwnerID)
	assert.Equal(t, "Green Valley", created.Name)
	assert.Equal(t, ptr("Fresno, CA"), created.Location)
	assert.Equal(t, ptr(42.5), created.SizeAcres)
	assert.Equal(t, []string{"Wheat", "Corn", "Soybeans"}, created.CropTypes)

	require.Equal(t, 1, fx.notifier.count())
	notice := fx.notifier.last()
	assert.Equal(t, "Farm created", notice.Title)
	assert.Equal(t, "Your farm has been successfully created.", notice.Description)
	assert.False(t, notice.Destructive)
}

func TestFarmService_Submit_Create_EmptyOptionalsStayNil(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return([]*entity.Farm{}, nil)

	_, err := fx.service.OpenForm(ctx, owner, nil)
	require.NoError(t, err)

	var created *entity.Farm
	fx.farmRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Farm")).
		Run(func(_ context.Context, farm *entity.Farm) {
			created = farm
		}).
		Return(nil)

	_, err = fx.service.Submit(ctx, owner, usecase.FarmInput{
		Name:      "Bare Farm",
		Location:  "   ",
		SizeAcres: "",
		CropTypes: " , ,",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Nil(t, created.Location)
	assert.Nil(t, created.SizeAcres)
	assert.Nil(t, created.CropTypes)
}

func TestFarmService_Submit_Edit(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Farm{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      "Old Orchard",
		Location:  ptr("Yakima, WA"),
		SizeAcres: ptr(12.0),
		CropTypes: []string{"Apples", "Pears"},
	}

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return([]*entity.Farm{existing}, nil).
		Once()

	form, err := fx.service.OpenForm(ctx, owner, &existing.ID)
	require.NoError(t, err)
	require.NotNil(t, form.FarmID)
	assert.Equal(t, existing.ID, *form.FarmID)
	assert.Equal(t, "Old Orchard", form.Name)
	assert.Equal(t, "Yakima, WA", form.Location)
	assert.Equal(t, "12", form.SizeAcres)
	assert.Equal(t, "Apples, Pears", form.CropTypes)

	var updated *entity.Farm
	fx.farmRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Farm")).
		Run(func(_ context.Context, farm *entity.Farm) {
			updated = farm
		}).
		Return(nil).
		Once()

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return([]*entity.Farm{existing}, nil).
		Once()

	_, err = fx.service.Submit(ctx, owner, usecase.FarmInput{Name: "New Orchard"})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "New Orchard", updated.Name)
	assert.Nil(t, updated.Location)

	require.Equal(t, 1, fx.notifier.count())
	assert.Equal(t, "Farm updated", fx.notifier.last().Title)
}

func TestFarmService_Remove(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	owner := uuid.New()
	farmID := uuid.New()

	fx.farmRepo.EXPECT().
		Delete(ctx, farmID, owner).
		Return(nil)

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return([]*entity.Farm{}, nil)

	farms, err := fx.service.Remove(ctx, owner, farmID)
	require.NoError(t, err)
	assert.Empty(t, farms)

	require.Equal(t, 1, fx.notifier.count())
	notice := fx.notifier.last()
	assert.Equal(t, "Farm deleted", notice.Title)
	assert.Equal(t, "Your farm has been successfully deleted.", notice.Description)
}

func TestFarmService_CloseForm_DiscardsEnteredValues(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return([]*entity.Farm{}, nil)

	_, err := fx.service.OpenForm(ctx, owner, nil)
	require.NoError(t, err)

	fx.service.CloseForm(owner)

	_, err = fx.service.Submit(ctx, owner, usecase.FarmInput{Name: "Ghost Farm"})
	assert.ErrorIs(t, err, domainerrors.ErrFormNotOpen)
	assert.Zero(t, fx.notifier.count())
}

func TestFarmService_StateIsScopedPerOwner(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, ownerA).
		Return([]*entity.Farm{testFarm(ownerA, "A Farm")}, nil)

	fx.farmRepo.EXPECT().
		ListByOwner(ctx, ownerB).
		Return([]*entity.Farm{}, nil)

	_, err := fx.service.OpenForm(ctx, ownerA, nil)
	require.NoError(t, err)

	// Owner B never opened a form; owner A's open form must not leak over.
	_, err = fx.service.OpenForm(ctx, ownerB, nil)
	require.NoError(t, err)
	fx.service.CloseForm(ownerB)

	_, err = fx.service.Submit(ctx, ownerB, usecase.FarmInput{Name: "B Farm"})
	assert.ErrorIs(t, err, domainerrors.ErrFormNotOpen)
}
