package impl

import (
	"context"
	"testing"

	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/repository"
	mockRepo "agridash/internal/mocks/repository"
	"agridash/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile manager tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	notifier    *recordingNotifier
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	notifier := &recordingNotifier{}
	service := NewProfileService(profileRepo, notifier)

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

func TestProfileService_Load_ExistingProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()
	stored := &entity.Profile{
		ID:       uuid.New(),
		OwnerID:  owner,
		FullName: ptr("Ada Greenfield"),
		Phone:    ptr("555-0134"),
	}

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(stored, nil)

	profile, err := fx.service.Load(ctx, owner, "Ada Greenfield")
	require.NoError(t, err)
	assert.Equal(t, stored, profile)
	assert.Zero(t, fx.notifier.count())
}

func TestProfileService_Load_MissingProfileIsNotAnError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.Load(ctx, owner, "Ada Greenfield")
	require.NoError(t, err)
	assert.Nil(t, profile)
	assert.Zero(t, fx.notifier.count())
}

func TestProfileService_OpenForm_PrefillsFromSessionWhenMissing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, repository.ErrProfileNotFound)

	form, err := fx.service.OpenForm(ctx, owner, "Ada Greenfield")
	require.NoError(t, err)
	assert.False(t, form.Exists)
	assert.Equal(t, "Ada Greenfield", form.FullName)
	assert.Empty(t, form.Phone)
	assert.Empty(t, form.Location)
}

func TestProfileService_OpenForm_PrefillsFromStoredProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()
	stored := &entity.Profile{
		ID:       uuid.New(),
		OwnerID:  owner,
		FullName: ptr("Ada Greenfield"),
		Phone:    ptr("555-0134"),
		Location: ptr("Boise, ID"),
	}

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(stored, nil)

	form, err := fx.service.OpenForm(ctx, owner, "ignored session name")
	require.NoError(t, err)
	assert.True(t, form.Exists)
	assert.Equal(t, "Ada Greenfield", form.FullName)
	assert.Equal(t, "555-0134", form.Phone)
	assert.Equal(t, "Boise, ID", form.Location)
}

func TestProfileService_Submit_UpsertsAndReloads(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, repository.ErrProfileNotFound).
		Once()

	_, err := fx.service.OpenForm(ctx, owner, "Ada Greenfield")
	require.NoError(t, err)

	var saved *entity.Profile
	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			saved = profile
		}).
		Return(nil).
		Once()

	stored := &entity.Profile{
		ID:       uuid.New(),
		OwnerID:  owner,
		FullName: ptr("Ada Greenfield"),
	}
	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(stored, nil).
		Once()

	profile, err := fx.service.Submit(ctx, owner, usecase.ProfileInput{
		FullName: "  Ada Greenfield ",
		Phone:    "",
		Location: "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, profile)

	require.NotNil(t, saved)
	assert.Equal(t, owner, saved.OwnerID)
	assert.Equal(t, ptr("Ada Greenfield"), saved.FullName)
	assert.Nil(t, saved.Phone)
	assert.Nil(t, saved.Location)

	require.Equal(t, 1, fx.notifier.count())
	notice := fx.notifier.last()
	assert.Equal(t, "Profile updated", notice.Title)
	assert.Equal(t, "Your profile has been successfully updated.", notice.Description)
	assert.False(t, notice.Destructive)
}

func TestProfileService_Submit_WithoutOpenForm(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()

	_, err := fx.service.Submit(ctx, owner, usecase.ProfileInput{FullName: "Ada"})
	assert.ErrorIs(t, err, domainerrors.ErrFormNotOpen)
	assert.Zero(t, fx.notifier.count())
}
