package impl

import (
	"context"

	"agridash/config"
	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/repository"
	"agridash/internal/domain/service"
	"agridash/internal/errors"
	"agridash/internal/usecase"

	"github.com/google/uuid"
)

// preferenceState is the per-owner manager state for notification preferences.
type preferenceState struct {
	core  managerCore
	prefs *entity.NotificationPreferences
}

type preferenceService struct {
	preferenceRepo  repository.PreferenceRepository
	notifier        service.Notifier
	revertOnFailure bool
	states          *registry[preferenceState]
}

// NewPreferenceService creates a new notification preference manager instance.
func NewPreferenceService(preferenceRepo repository.PreferenceRepository, notifier service.Notifier, cfg *config.Config) usecase.PreferenceUsecase {
	revertOnFailure := false
	if cfg != nil && cfg.Preferences != nil {
		revertOnFailure = cfg.Preferences.RevertOnFailure
	}

	return &preferenceService{
		preferenceRepo:  preferenceRepo,
		notifier:        notifier,
		revertOnFailure: revertOnFailure,
		states:          newRegistry[preferenceState](),
	}
}

// Load returns the owner's preferences, inserting the default row on first
// access. Loads are serialized per owner, and a create that loses the race to
// another writer falls back to reading the winner's row.
func (s *preferenceService) Load(ctx context.Context, owner uuid.UUID) (*entity.NotificationPreferences, error) {
	state := s.states.get(owner)
	state.core.loadMu.Lock()
	defer state.core.loadMu.Unlock()

	state.core.setPhase(phaseLoading)

	prefs, err := s.preferenceRepo.FindByOwner(ctx, owner)
	if errors.Is(err, repository.ErrPreferencesNotFound) {
		prefs, err = s.createDefaults(ctx, owner)
	}
	if err != nil {
		state.core.setPhase(phaseLoadError)
		notifyFailure(ctx, s.notifier, "Error loading preferences", err)

		return nil, errors.Wrap(err, "failed to load preferences")
	}

	state.core.mu.Lock()
	state.prefs = prefs
	state.core.phase = phaseReady
	state.core.mu.Unlock()

	return snapshotPrefs(prefs), nil
}

// Toggle flips one preference field. The in-memory value changes before the
// store write; on write failure it stays flipped or reverts depending on
// configuration, and a destructive notice is emitted either way.
func (s *preferenceService) Toggle(ctx context.Context, owner uuid.UUID, field entity.PreferenceField, value bool) (*entity.NotificationPreferences, error) {
	if _, ok := entity.ParsePreferenceField(string(field)); !ok {
		return nil, domainerrors.ErrUnknownPreferenceField.WithDetails(string(field))
	}

	state := s.states.get(owner)

	if state.core.currentPhase() != phaseReady {
		if _, err := s.Load(ctx, owner); err != nil {
			return nil, err
		}
	}

	if err := state.core.beginSave(); err != nil {
		return nil, err
	}
	defer state.core.endSave()

	state.core.mu.Lock()
	prefs := state.prefs
	previous := prefs.Get(field)
	prefs.Set(field, value)
	state.core.mu.Unlock()

	if err := s.preferenceRepo.UpdateField(ctx, owner, field, value); err != nil {
		if s.revertOnFailure {
			state.core.mu.Lock()
			prefs.Set(field, previous)
			state.core.mu.Unlock()
		}
		notifyFailure(ctx, s.notifier, "Error updating preferences", err)
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, domainerrors.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to update preferences")
	}

	notifySuccess(ctx, s.notifier, "Preferences updated", "Your notification preferences have been saved.")

	state.core.mu.Lock()
	snapshot := snapshotPrefs(prefs)
	state.core.mu.Unlock()

	return snapshot, nil
}

// createDefaults inserts the default row for a first-time owner. When another
// writer inserted first, the existing row wins and is read back.
func (s *preferenceService) createDefaults(ctx context.Context, owner uuid.UUID) (*entity.NotificationPreferences, error) {
	prefs := entity.DefaultNotificationPreferences(owner)

	err := s.preferenceRepo.Create(ctx, prefs)
	if errors.Is(err, repository.ErrPreferencesExist) {
		return s.preferenceRepo.FindByOwner(ctx, owner)
	}
	if err != nil {
		return nil, err
	}

	return prefs, nil
}

// snapshotPrefs copies the row so callers never alias the manager's state.
func snapshotPrefs(prefs *entity.NotificationPreferences) *entity.NotificationPreferences {
	copied := *prefs

	return &copied
}
