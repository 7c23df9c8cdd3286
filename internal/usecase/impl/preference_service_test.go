package impl

import (
	"context"
	"testing"

	"agridash/config"
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

// preferenceServiceFixtures holds all test dependencies for preference manager tests.
type preferenceServiceFixtures struct {
	service        usecase.PreferenceUsecase
	preferenceRepo *mockRepo.MockPreferenceRepository
	notifier       *recordingNotifier
}

func createTestPreferenceService(t *testing.T, revertOnFailure bool) preferenceServiceFixtures {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	notifier := &recordingNotifier{}
	cfg := &config.Config{
		Preferences: &config.PreferencesConfig{RevertOnFailure: revertOnFailure},
	}
	service := NewPreferenceService(preferenceRepo, notifier, cfg)

	return preferenceServiceFixtures{
		service:        service,
		preferenceRepo: preferenceRepo,
		notifier:       notifier,
	}
}

func storedPreferences(owner uuid.UUID) *entity.NotificationPreferences {
	prefs := entity.DefaultNotificationPreferences(owner)
	prefs.ID = uuid.New()

	return prefs
}

func TestPreferenceService_Load_ExistingRow(t *testing.T) {
	fx := createTestPreferenceService(t, false)

	ctx := context.Background()
	owner := uuid.New()
	stored := storedPreferences(owner)

	fx.preferenceRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(stored, nil)

	prefs, err := fx.service.Load(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, prefs.ID)
	assert.True(t, prefs.EmailNotifications)
	assert.False(t, prefs.SMSNotifications)
	assert.Zero(t, fx.notifier.count())
}

func TestPreferenceService_Load_CreatesDefaultsOnFirstAccess(t *testing.T) {
	fx := createTestPreferenceService(t, false)

	ctx := context.Background()
	owner := uuid.New()

	fx.preferenceRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, repository.ErrPreferencesNotFound)

	var created *entity.NotificationPreferences
	fx.preferenceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationPreferences")).
		Run(func(_ context.Context, prefs *entity.NotificationPreferences) {
			created = prefs
		}).
		Return(nil)

	prefs, err := fx.service.Load(ctx, owner)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, owner, created.OwnerID)
	assert.True(t, created.EmailNotifications)
	assert.False(t, created.SMSNotifications)
	assert.True(t, created.WeatherAlerts)
	assert.True(t, created.IrrigationAlerts)
	assert.True(t, created.CropHealthAlerts)

	assert.Equal(t, owner, prefs.OwnerID)
	assert.Zero(t, fx.notifier.count())
}

func TestPreferenceService_Load_CreateLosesRaceReadsWinner(t *testing.T) {
	fx := createTestPreferenceService(t, false)

	ctx := context.Background()
	owner := uuid.New()
	winner := storedPreferences(owner)
	winner.SMSNotifications = true

	fx.preferenceRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(nil, repository.ErrPreferencesNotFound).
		Once()

	fx.preferenceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationPreferences")).
		Return(repository.ErrPreferencesExist).
		Once()

	fx.preferenceRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(winner, nil).
		Once()

	prefs, err := fx.service.Load(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, prefs.ID)
	assert.True(t, prefs.SMSNotifications)
}

func TestPreferenceService_Toggle_PersistsSingleField(t *testing.T) {
	fx := createTestPreferenceService(t, false)

	ctx := context.Background()
	owner := uuid.New()

	fx.preferenceRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(storedPreferences(owner), nil)

	fx.preferenceRepo.EXPECT().
		UpdateField(ctx, owner, entity.PrefSMSNotifications, true).
		Return(nil)

	prefs, err := fx.service.Toggle(ctx, owner, entity.PrefSMSNotifications, true)
	require.NoError(t, err)
	assert.True(t, prefs.SMSNotifications)
	assert.True(t, prefs.EmailNotifications)

	require.Equal(t, 1, fx.notifier.count())
	notice := fx.notifier.last()
	assert.Equal(t, "Preferences updated", notice.Title)
	assert.Equal(t, "Your notification preferences have been saved.", notice.Description)
	assert.False(t, notice.Destructive)
}

func TestPreferenceService_Toggle_LoadsWhenCold(t *testing.T) {
	fx := createTestPreferenceService(t, false)

	ctx := context.Background()
	owner := uuid.New()

	fx.preferenceRepo.EXPECT().
		FindByOwner(ctx, owner).
		Return(storedPreferences(owner), nil)

	fx.preferenceRepo.EXPECT().
		UpdateField(ctx, owner, entity.PrefWeatherAlerts, false).
		Return(nil)

	prefs, err := fx.service.Toggle(ctx, owner, entity.PrefWeatherAlerts, false)
	require.NoError(t, err)
	assert.False(t, prefs.WeatherAlerts)
}

func TestPreferenceService_Toggle_UnknownField(t *testing.T) {
	fx := createTestPreferenceService(t, false)

	ctx := context.Background()
	owner := uuid.New()

	_, err := fx.service.Toggle(ctx, owner, entity.PreferenceField("push_notifications"), true)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPreferenceField)
	assert.Zero(t, fx.notifier.count())
}
