package impl

import (
	"context"
	"strings"

	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/repository"
	"agridash/internal/domain/service"
	"agridash/internal/errors"
	"agridash/internal/usecase"

	"github.com/google/uuid"
)

// profileState is the per-owner manager state for the profile singleton.
// profile stays nil until the first save when no row exists yet.
type profileState struct {
	core        managerCore
	profile     *entity.Profile
	displayName string
	form        *usecase.ProfileForm
}

type profileService struct {
	profileRepo repository.ProfileRepository
	notifier    service.Notifier
	states      *registry[profileState]
}

// NewProfileService creates a new profile manager instance.
func NewProfileService(profileRepo repository.ProfileRepository, notifier service.Notifier) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		notifier:    notifier,
		states:      newRegistry[profileState](),
	}
}

// Load fetches the owner's profile. A missing row is a valid initial state:
// the manager remembers the session display name for form prefill and reports
// no error.
func (s *profileService) Load(ctx context.Context, owner uuid.UUID, displayName string) (*entity.Profile, error) {
	state := s.states.get(owner)
	state.core.loadMu.Lock()
	defer state.core.loadMu.Unlock()

	state.core.setPhase(phaseLoading)

	profile, err := s.profileRepo.FindByOwner(ctx, owner)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		state.core.setPhase(phaseLoadError)
		notifyFailure(ctx, s.notifier, "Error loading profile", err)

		return nil, errors.Wrap(err, "failed to load profile")
	}

	state.core.mu.Lock()
	state.profile = profile
	state.displayName = displayName
	state.core.phase = phaseReady
	state.core.mu.Unlock()

	return profile, nil
}

// OpenForm opens the edit form, prefilled from the stored profile or, when
// none exists, from the session display name. No write happens until submit.
func (s *profileService) OpenForm(ctx context.Context, owner uuid.UUID, displayName string) (*usecase.ProfileForm, error) {
	state := s.states.get(owner)

	if state.core.currentPhase() != phaseReady {
		if _, err := s.Load(ctx, owner, displayName); err != nil {
			return nil, err
		}
	}

	state.core.mu.Lock()
	defer state.core.mu.Unlock()

	form := &usecase.ProfileForm{}
	if profile := state.profile; profile != nil {
		form.Exists = true
		if profile.FullName != nil {
			form.FullName = *profile.FullName
		}
		if profile.Phone != nil {
			form.Phone = *profile.Phone
		}
		if profile.Location != nil {
			form.Location = *profile.Location
		}
	} else {
		form.FullName = displayName
	}

	state.form = form
	copied := *form

	return &copied, nil
}

// CloseForm discards the open form.
func (s *profileService) CloseForm(owner uuid.UUID) {
	state := s.states.get(owner)
	state.core.mu.Lock()
	state.form = nil
	state.core.mu.Unlock()
}

// Submit upserts the entered values. Whether the save inserts or updates is
// decided by the store on the owner key; the caller cannot tell the two
// apart. On success the record is refetched; on failure the form stays open.
func (s *profileService) Submit(ctx context.Context, owner uuid.UUID, input usecase.ProfileInput) (*entity.Profile, error) {
	state := s.states.get(owner)

	if err := state.core.beginSave(); err != nil {
		return nil, err
	}
	defer state.core.endSave()

	state.core.mu.Lock()
	form := state.form
	if form != nil {
		form.FullName = input.FullName
		form.Phone = input.Phone
		form.Location = input.Location
	}
	displayName := state.displayName
	state.core.mu.Unlock()

	if form == nil {
		return nil, domainerrors.ErrFormNotOpen
	}

	profile := &entity.Profile{OwnerID: owner}
	if fullName := strings.TrimSpace(input.FullName); fullName != "" {
		profile.FullName = &fullName
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		profile.Phone = &phone
	}
	if location := strings.TrimSpace(input.Location); location != "" {
		profile.Location = &location
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		notifyFailure(ctx, s.notifier, "Error saving profile", err)

		return nil, errors.Wrap(err, "failed to save profile")
	}

	notifySuccess(ctx, s.notifier, "Profile updated", "Your profile has been successfully updated.")

	s.CloseForm(owner)

	return s.Load(ctx, owner, displayName)
}
