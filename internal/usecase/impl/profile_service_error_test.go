package impl

import (
	"context"
	"testing"

	"agridash/internal/domain/entity"
	"agridash/internal/domain/repository"
	"agridash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Load_Failure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.Load(ctx, owner, "Ada Greenfield")
	require.Error(t, err)

	require.Equal(t, 1, fx.notifier.count())
	notice := fx.notifier.last()
	assert.Equal(t, "Error loading profile", notice.Title)
	assert.Equal(t, "connection refused", notice.Description)
	assert.True(t, notice.Destructive)
}

func TestProfileService_Submit_StoreFailure_KeepsFormOpen(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := uuid.New()

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, repository.ErrProfileNotFound).
		Once()

	_, err := fx.service.OpenForm(ctx, owner, "Ada Greenfield")
	require.NoError(t, err)

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(errors.New("upsert failed")).
		Once()

	_, err = fx.service.Submit(ctx, owner, usecase.ProfileInput{FullName: "Ada Greenfield"})
	require.Error(t, err)

	require.Equal(t, 1, fx.notifier.count())
	notice := fx.notifier.last()
	assert.Equal(t, "Error saving profile", notice.Title)
	assert.True(t, notice.Destructive)

	// The form survived; a retry reaches the store again.
	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil).
		Once()

	fx.profileRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(&entity.Profile{OwnerID: owner, FullName: ptr("Ada Greenfield")}, nil).
		Once()

	_, err = fx.service.Submit(ctx, owner, usecase.ProfileInput{FullName: "Ada Greenfield"})
	require.NoError(t, err)
	assert.Equal(t, "Profile updated", fx.notifier.last().Title)
}
