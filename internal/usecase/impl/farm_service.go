package impl

import (
	"context"
	"strconv"
	"strings"

	"agridash/internal/domain/entity"
	domainerrors "agridash/internal/domain/errors"
	"agridash/internal/domain/repository"
	"agridash/internal/domain/service"
	"agridash/internal/errors"
	"agridash/internal/usecase"

	"github.com/google/uuid"
)

// farmState is the per-owner manager state for the farm list.
type farmState struct {
	core  managerCore
	farms []*entity.Farm
	form  *usecase.FarmForm
}

type farmService struct {
	farmRepo repository.FarmRepository
	notifier service.Notifier
	states   *registry[farmState]
}

// NewFarmService creates a new farm manager instance.
func NewFarmService(farmRepo repository.FarmRepository, notifier service.Notifier) usecase.FarmUsecase {
	return &farmService{
		farmRepo: farmRepo,
		notifier: notifier,
		states:   newRegistry[farmState](),
	}
}

// Load fetches the owner's farms, newest first. A failed load keeps the
// previously loaded list and flips the phase to load-error.
func (s *farmService) Load(ctx context.Context, owner uuid.UUID) ([]*entity.Farm, error) {
	state := s.states.get(owner)
	state.core.loadMu.Lock()
	defer state.core.loadMu.Unlock()

	state.core.setPhase(phaseLoading)

	farms, err := s.farmRepo.ListByOwner(ctx, owner)
	if err != nil {
		state.core.setPhase(phaseLoadError)
		notifyFailure(ctx, s.notifier, "Error loading farms", err)

		return nil, errors.Wrap(err, "failed to load farms")
	}

	state.core.mu.Lock()
	state.farms = farms
	state.core.phase = phaseReady
	state.core.mu.Unlock()

	return farms, nil
}

// OpenForm opens the dialog: blank in create mode, prefilled from the
// identified farm in edit mode. Editing requires the list to be loaded, so a
// cold manager loads once before resolving the farm.
func (s *farmService) OpenForm(ctx context.Context, owner uuid.UUID, farmID *uuid.UUID) (*usecase.FarmForm, error) {
	state := s.states.get(owner)

	if state.core.currentPhase() != phaseReady {
		if _, err := s.Load(ctx, owner); err != nil {
			return nil, err
		}
	}

	form := &usecase.FarmForm{}
	if farmID != nil {
		farm := s.findFarm(state, *farmID)
		if farm == nil {
			return nil, domainerrors.ErrFarmNotFound
		}

		id := *farmID
		form.FarmID = &id
		form.Name = farm.Name
		if farm.Location != nil {
			form.Location = *farm.Location
		}
		if farm.SizeAcres != nil {
			form.SizeAcres = strconv.FormatFloat(*farm.SizeAcres, 'f', -1, 64)
		}
		form.CropTypes = entity.JoinCropTypes(farm.CropTypes)
	}

	state.core.mu.Lock()
	state.form = form
	state.core.mu.Unlock()

	copied := *form

	return &copied, nil
}

// CloseForm discards the open form and any entered values.
func (s *farmService) CloseForm(owner uuid.UUID) {
	state := s.states.get(owner)
	state.core.mu.Lock()
	state.form = nil
	state.core.mu.Unlock()
}

// Submit persists the entered values through the open form. While a save is
// in flight further mutations are rejected without touching the store. On
// failure the form stays open with the entered values intact; on success the
// form closes and the list is refetched.
func (s *farmService) Submit(ctx context.Context, owner uuid.UUID, input usecase.FarmInput) ([]*entity.Farm, error) {
	state := s.states.get(owner)

	if err := state.core.beginSave(); err != nil {
		return nil, err
	}
	defer state.core.endSave()

	state.core.mu.Lock()
	form := state.form
	if form != nil {
		form.Name = input.Name
		form.Location = input.Location
		form.SizeAcres = input.SizeAcres
		form.CropTypes = input.CropTypes
	}
	state.core.mu.Unlock()

	if form == nil {
		return nil, domainerrors.ErrFormNotOpen
	}

	farm, err := buildFarm(owner, input)
	if err != nil {
		return nil, err
	}

	editing := form.FarmID != nil
	if editing {
		farm.ID = *form.FarmID
		err = s.farmRepo.Update(ctx, farm)
	} else {
		err = s.farmRepo.Create(ctx, farm)
	}
	if err != nil {
		if editing {
			notifyFailure(ctx, s.notifier, "Error updating farm", err)
		} else {
			notifyFailure(ctx, s.notifier, "Error creating farm", err)
		}
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to save farm")
	}

	if editing {
		notifySuccess(ctx, s.notifier, "Farm updated", "Your farm has been successfully updated.")
	} else {
		notifySuccess(ctx, s.notifier, "Farm created", "Your farm has been successfully created.")
	}

	s.CloseForm(owner)

	return s.Load(ctx, owner)
}

// Remove deletes a farm by id and refetches the list. There is no undo.
func (s *farmService) Remove(ctx context.Context, owner, farmID uuid.UUID) ([]*entity.Farm, error) {
	state := s.states.get(owner)

	if err := state.core.beginSave(); err != nil {
		return nil, err
	}
	defer state.core.endSave()

	if err := s.farmRepo.Delete(ctx, farmID, owner); err != nil {
		notifyFailure(ctx, s.notifier, "Error deleting farm", err)
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to delete farm")
	}

	notifySuccess(ctx, s.notifier, "Farm deleted", "Your farm has been successfully deleted.")

	return s.Load(ctx, owner)
}

// findFarm resolves a farm id within the owner's loaded list.
func (s *farmService) findFarm(state *farmState, farmID uuid.UUID) *entity.Farm {
	state.core.mu.Lock()
	defer state.core.mu.Unlock()

	for _, farm := range state.farms {
		if farm.ID == farmID {
			return farm
		}
	}

	return nil
}

// buildFarm converts the raw form values into an entity: trimmed name,
// empty optionals dropped to nil, crop types split on commas.
func buildFarm(owner uuid.UUID, input usecase.FarmInput) (*entity.Farm, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("farm name is required")
	}

	farm := &entity.Farm{
		OwnerID:   owner,
		Name:      name,
		CropTypes: entity.ParseCropTypes(input.CropTypes),
	}

	if location := strings.TrimSpace(input.Location); location != "" {
		farm.Location = &location
	}

	if raw := strings.TrimSpace(input.SizeAcres); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil || size <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("farm size must be a positive number")
		}
		farm.SizeAcres = &size
	}

	return farm, nil
}
