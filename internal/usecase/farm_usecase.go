// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agridash/internal/domain/entity"

	"github.com/google/uuid"
)

// FarmUsecase manages the farm list of the current user: load, form handling,
// create/edit submission, and deletion. All operations require a signed-in
// owner and refetch the list from the store after every mutation.
type FarmUsecase interface {
	// Load fetches all farms belonging to the owner, newest first. On failure
	// the previously loaded list is left untouched.
	Load(ctx context.Context, owner uuid.UUID) ([]*entity.Farm, error)

	// OpenForm opens the create form (farmID nil) or the edit form populated
	// from the identified farm. Purely local; no store call beyond an initial
	// load when the list has not been fetched yet.
	OpenForm(ctx context.Context, owner uuid.UUID, farmID *uuid.UUID) (*FarmForm, error)

	// CloseForm discards the open form and any entered values.
	CloseForm(owner uuid.UUID)

	// Submit validates the input and persists it through the open form:
	// an insert in create mode, an update in edit mode. On success the form
	// closes and the refreshed list is returned; on failure the form stays
	// open with the entered values intact.
	Submit(ctx context.Context, owner uuid.UUID, input FarmInput) ([]*entity.Farm, error)

	// Remove deletes a farm by id. There is no undo; on failure the list is
	// left as-is.
	Remove(ctx context.Context, owner uuid.UUID, farmID uuid.UUID) ([]*entity.Farm, error)
}

// FarmInput carries the raw form field values of the farm dialog. Everything
// arrives as entered text; parsing and trimming happen on submit.
type FarmInput struct {
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location"`
	SizeAcres string `json:"size_acres"`
	CropTypes string `json:"crop_types"` // Comma-separated, e.g. "Wheat, Corn, Soybeans".
}

// FarmForm is the state of the farm dialog: its mode and the editable fields.
type FarmForm struct {
	FarmID    *uuid.UUID `json:"farm_id,omitempty"` // Set in edit mode.
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	SizeAcres string     `json:"size_acres"`
	CropTypes string     `json:"crop_types"`
}
